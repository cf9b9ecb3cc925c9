package handler

import (
	"net/http"
	"strconv"

	"github.com/sholaoke/churchbase/internal/cache"
	"github.com/sholaoke/churchbase/internal/config"
	"github.com/sholaoke/churchbase/internal/errHandler"
	"github.com/sholaoke/churchbase/internal/file"
	"github.com/sholaoke/churchbase/internal/helper"
	"github.com/sholaoke/churchbase/internal/repository"
	"github.com/sholaoke/churchbase/internal/smtp"
)

type RouteHandler struct {
	DB         repository.Database
	Config     *config.Config
	ErrHandler *errHandler.ErrorHandler
	Helper     *helper.HelperRepository
	Mailer     smtp.MailerInterface
	Cache      *cache.Cache
	Uploader   *file.FileUploader
}

func NewRouteHandler(handler *RouteHandler) *RouteHandler {
	return &RouteHandler{
		DB:         handler.DB,
		Config:     handler.Config,
		ErrHandler: handler.ErrHandler,
		Helper:     handler.Helper,
		Mailer:     handler.Mailer,
		Cache:      handler.Cache,
		Uploader:   handler.Uploader,
	}
}

// idFromPath reads the {id} path value. ok is false when it is missing or not
// a positive integer.
func idFromPath(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		return 0, false
	}

	return id, true
}

// retrieveListFilter parses the shared list query params. Values are clamped
// and allowlisted again in the repository; this layer only shapes them.
func retrieveListFilter(r *http.Request) repository.ListFilter {
	query := r.URL.Query()

	filter := repository.ListFilter{
		Page:      repository.DefaultPage,
		Limit:     repository.DefaultLimit,
		Search:    query.Get("search"),
		SortBy:    query.Get("sortBy"),
		SortOrder: query.Get("sortOrder"),
	}

	if page, err := strconv.Atoi(query.Get("page")); err == nil && page >= 1 {
		filter.Page = page
	}

	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit >= 1 {
		filter.Limit = limit
	}

	if isActive := query.Get("isActive"); isActive != "" {
		if parsed, err := strconv.ParseBool(isActive); err == nil {
			filter.IsActive = &parsed
		}
	}

	return filter
}
