package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sholaoke/churchbase/internal/models"
	"github.com/sholaoke/churchbase/internal/qr"
	"github.com/sholaoke/churchbase/internal/repository"
	"github.com/sholaoke/churchbase/internal/request"
	"github.com/sholaoke/churchbase/internal/response"
	"github.com/sholaoke/churchbase/internal/validator"
)

// entityLabel is the human form of a person kind, used in messages and
// not-found envelopes.
func entityLabel(kind string) string {
	switch kind {
	case models.PersonKindMinister:
		return "Minister"
	default:
		return "Member"
	}
}

// HandlePersonCreate returns the create handler for one person kind. Members
// and ministers share the full pipeline; only the kind column and the
// duplicate-email rule differ, and the latter is enforced by the database.
func (h *RouteHandler) HandlePersonCreate(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input personInput

		err := request.DecodeJSON(w, r, &input)
		if err != nil {
			h.ErrHandler.BadRequest(w, r, err)
			return
		}

		var v validator.Validator
		input.validate(&v)
		if v.HasErrors() {
			h.ErrHandler.FailedValidation(w, r, v.FieldErrors)
			return
		}

		person, deps := input.toModels(kind)

		created, err := h.DB.Person().CreateWithDependents(r.Context(), person, deps)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicate):
				h.ErrHandler.Conflict(w, r, fmt.Sprintf("A %s with this email already exists", strings.ToLower(entityLabel(kind))))
			case errors.Is(err, repository.ErrInvalidReference):
				h.ErrHandler.BadRequest(w, r, errors.New("referenced church, ministry rank or skill does not exist"))
			default:
				h.ErrHandler.ServerError(w, r, err)
			}
			return
		}

		message := fmt.Sprintf("%s created successfully", entityLabel(kind))
		err = response.JSONCreatedResponse(w, created, message)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
		}
	}
}

func (h *RouteHandler) HandlePersonList(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := retrieveListFilter(r)

		people, total, err := h.DB.Person().List(r.Context(), kind, filter)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}

		pagination := response.NewPagination(filter.Page, filter.Limit, total)
		err = response.JSONPaginatedResponse(w, people, pagination, fmt.Sprintf("%ss retrieved successfully", entityLabel(kind)))
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
		}
	}
}

func (h *RouteHandler) HandlePersonGet(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idFromPath(r)
		if !ok {
			h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
			return
		}

		person, found, err := h.DB.Person().GetOne(r.Context(), kind, id)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}
		if !found {
			h.ErrHandler.NotFoundEntity(w, r, entityLabel(kind), id)
			return
		}

		err = response.JSONOkResponse(w, person, fmt.Sprintf("%s retrieved successfully", entityLabel(kind)), nil)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
		}
	}
}

// HandlePersonGetComplete serves the profile view: the parent row and all
// nine dependent collections from one consistent read.
func (h *RouteHandler) HandlePersonGetComplete(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idFromPath(r)
		if !ok {
			h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
			return
		}

		person, deps, found, err := h.DB.Person().GetComplete(r.Context(), kind, id)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}
		if !found {
			h.ErrHandler.NotFoundEntity(w, r, entityLabel(kind), id)
			return
		}

		data := struct {
			*models.Person
			*models.PersonDependents
		}{person, deps}

		err = response.JSONOkResponse(w, data, fmt.Sprintf("%s profile retrieved successfully", entityLabel(kind)), nil)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
		}
	}
}

// HandlePersonUpdate replaces the parent fields. Dependent collections are
// managed through their own endpoints and are left untouched here.
func (h *RouteHandler) HandlePersonUpdate(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idFromPath(r)
		if !ok {
			h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
			return
		}

		var input personInput
		err := request.DecodeJSON(w, r, &input)
		if err != nil {
			h.ErrHandler.BadRequest(w, r, err)
			return
		}

		var v validator.Validator
		input.validate(&v)
		if v.HasErrors() {
			h.ErrHandler.FailedValidation(w, r, v.FieldErrors)
			return
		}

		_, found, err := h.DB.Person().GetOne(r.Context(), kind, id)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}
		if !found {
			h.ErrHandler.NotFoundEntity(w, r, entityLabel(kind), id)
			return
		}

		person, _ := input.toModels(kind)
		person.ID = id

		updated, err := h.DB.Person().Update(r.Context(), person)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicate):
				h.ErrHandler.Conflict(w, r, fmt.Sprintf("A %s with this email already exists", strings.ToLower(entityLabel(kind))))
			case errors.Is(err, repository.ErrInvalidReference):
				h.ErrHandler.BadRequest(w, r, errors.New("referenced church or ministry rank does not exist"))
			default:
				h.ErrHandler.ServerError(w, r, err)
			}
			return
		}

		err = response.JSONOkResponse(w, updated, fmt.Sprintf("%s updated successfully", entityLabel(kind)), nil)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
		}
	}
}

// HandlePersonDelete removes the parent and every dependent row. The response
// echoes who was deleted so the admin list can confirm without a refetch.
func (h *RouteHandler) HandlePersonDelete(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idFromPath(r)
		if !ok {
			h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
			return
		}

		person, found, err := h.DB.Person().GetOne(r.Context(), kind, id)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}
		if !found {
			h.ErrHandler.NotFoundEntity(w, r, entityLabel(kind), id)
			return
		}

		err = h.DB.Person().Delete(r.Context(), kind, id)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}

		data := map[string]any{
			"id":   person.ID,
			"name": person.FullName(),
		}
		err = response.JSONOkResponse(w, data, fmt.Sprintf("%s deleted successfully", entityLabel(kind)), nil)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
		}
	}
}

// HandlePersonQRCode renders a PNG QR code pointing at the person's public
// profile URL, for printing on identity cards.
func (h *RouteHandler) HandlePersonQRCode(kind string) http.HandlerFunc {
	segment := "members"
	if kind == models.PersonKindMinister {
		segment = "ministers"
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idFromPath(r)
		if !ok {
			h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
			return
		}

		_, found, err := h.DB.Person().GetOne(r.Context(), kind, id)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}
		if !found {
			h.ErrHandler.NotFoundEntity(w, r, entityLabel(kind), id)
			return
		}

		png, err := qr.PNG(fmt.Sprintf("%s/%s/%d", h.Config.BaseURL, segment, id), 0)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	}
}
