package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sholaoke/churchbase/internal/models"
	"github.com/sholaoke/churchbase/internal/repository"
	"github.com/sholaoke/churchbase/internal/request"
	"github.com/sholaoke/churchbase/internal/response"
	"github.com/sholaoke/churchbase/internal/validator"
)

type churchInput struct {
	Name            string `json:"name"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Province        string `json:"province"`
	Latitude        string `json:"latitude"`
	Longitude       string `json:"longitude"`
	PastorName      string `json:"pastorName"`
	ContactEmail    string `json:"contactEmail"`
	ContactPhone    string `json:"contactPhone"`
	DateEstablished string `json:"dateEstablished"`
	IsActive        *bool  `json:"isActive"`
}

func (input *churchInput) validate(v *validator.Validator) {
	v.CheckField(validator.NotBlank(input.Name), "name", "Church name is required")
	v.CheckField(validator.MaxRunes(input.Name, maxNameLength+100), "name", "Church name is too long")
	v.CheckField(validator.NotBlank(input.Address), "address", "Address is required")
	v.CheckField(validator.MaxRunes(input.Address, maxAddressLength), "address", "Address is too long")
	if input.ContactEmail != "" {
		v.CheckField(validator.IsEmail(input.ContactEmail), "contactEmail", "Must be a valid email address")
	}
	if input.DateEstablished != "" {
		_, err := time.Parse("2006-01-02", input.DateEstablished)
		v.CheckField(err == nil, "dateEstablished", "Date established must be in YYYY-MM-DD format")
	}
}

func (input *churchInput) toModel() *models.Church {
	church := &models.Church{
		Name:            input.Name,
		Address:         input.Address,
		City:            optString(input.City),
		Province:        optString(input.Province),
		Latitude:        optString(input.Latitude),
		Longitude:       optString(input.Longitude),
		PastorName:      optString(input.PastorName),
		ContactEmail:    optString(input.ContactEmail),
		ContactPhone:    optString(input.ContactPhone),
		DateEstablished: optString(input.DateEstablished),
		IsActive:        true,
	}
	if input.IsActive != nil {
		church.IsActive = *input.IsActive
	}
	return church
}

func (h *RouteHandler) HandleChurchCreate(w http.ResponseWriter, r *http.Request) {
	var input churchInput

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

	church, err := h.DB.Church().Insert(r.Context(), input.toModel())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			h.ErrHandler.Conflict(w, r, "A church with this name already exists")
			return
		}
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = response.JSONCreatedResponse(w, church, "Church created successfully")
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *RouteHandler) HandleChurchList(w http.ResponseWriter, r *http.Request) {
	filter := retrieveListFilter(r)

	churches, total, err := h.DB.Church().List(r.Context(), filter)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	pagination := response.NewPagination(filter.Page, filter.Limit, total)
	err = response.JSONPaginatedResponse(w, churches, pagination, "Churches retrieved successfully")
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *RouteHandler) HandleChurchGet(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
		return
	}

	church, found, err := h.DB.Church().GetOne(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	if !found {
		h.ErrHandler.NotFoundEntity(w, r, "Church", id)
		return
	}

	err = response.JSONOkResponse(w, church, "Church retrieved successfully", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *RouteHandler) HandleChurchUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
		return
	}

	var input churchInput
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

	_, found, err := h.DB.Church().GetOne(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	if !found {
		h.ErrHandler.NotFoundEntity(w, r, "Church", id)
		return
	}

	church := input.toModel()
	church.ID = id

	updated, err := h.DB.Church().Update(r.Context(), church)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			h.ErrHandler.Conflict(w, r, "A church with this name already exists")
			return
		}
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = response.JSONOkResponse(w, updated, "Church updated successfully", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

// HandleChurchDelete refuses to remove a church that members, ministers or
// events still reference, and names what blocks it.
func (h *RouteHandler) HandleChurchDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
		return
	}

	_, found, err := h.DB.Church().GetOne(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	if !found {
		h.ErrHandler.NotFoundEntity(w, r, "Church", id)
		return
	}

	counts, err := h.DB.Church().DependentCounts(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	if len(counts) > 0 {
		h.ErrHandler.Conflict(w, r, blockingMessage("church", counts))
		return
	}

	err = h.DB.Church().Delete(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = response.JSONOkResponse(w, map[string]any{"id": id}, "Church deleted successfully", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

// blockingMessage spells out which dependent rows prevent a delete, e.g.
// "Cannot delete this church: 3 members and 1 event still reference it".
func blockingMessage(entity string, counts []repository.DependentCount) string {
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		label := c.Kind
		if c.Count != 1 {
			label += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", c.Count, label))
	}

	var joined string
	switch len(parts) {
	case 1:
		joined = parts[0]
	case 2:
		joined = parts[0] + " and " + parts[1]
	default:
		joined = strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}

	return fmt.Sprintf("Cannot delete this %s: %s still reference it", entity, joined)
}
