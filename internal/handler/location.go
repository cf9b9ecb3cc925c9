package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sholaoke/churchbase/internal/models"
	"github.com/sholaoke/churchbase/internal/request"
	"github.com/sholaoke/churchbase/internal/response"
	"github.com/sholaoke/churchbase/internal/validator"
)

type locationInput struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Landmark  string `json:"landmark"`
}

func (input *locationInput) validate(v *validator.Validator) {
	v.CheckField(validator.NotBlank(input.Name), "name", "Location name is required")
	v.CheckField(validator.MaxRunes(input.Name, maxNameLength+100), "name", "Location name is too long")
	v.CheckField(validator.NotBlank(input.Address), "address", "Address is required")
	v.CheckField(validator.MaxRunes(input.Address, maxAddressLength), "address", "Address is too long")
}

func (input *locationInput) toModel() *models.Location {
	return &models.Location{
		Name:      input.Name,
		Address:   input.Address,
		Latitude:  optString(input.Latitude),
		Longitude: optString(input.Longitude),
		Landmark:  optString(input.Landmark),
	}
}

func (h *RouteHandler) HandleLocationCreate(w http.ResponseWriter, r *http.Request) {
	var input locationInput

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

	location, err := h.DB.Location().Insert(r.Context(), input.toModel())
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = response.JSONCreatedResponse(w, location, "Location created successfully")
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *RouteHandler) HandleLocationList(w http.ResponseWriter, r *http.Request) {
	filter := retrieveListFilter(r)

	locations, total, err := h.DB.Location().List(r.Context(), filter)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	pagination := response.NewPagination(filter.Page, filter.Limit, total)
	err = response.JSONPaginatedResponse(w, locations, pagination, "Locations retrieved successfully")
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *RouteHandler) HandleLocationGet(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
		return
	}

	location, found, err := h.DB.Location().GetOne(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	if !found {
		h.ErrHandler.NotFoundEntity(w, r, "Location", id)
		return
	}

	err = response.JSONOkResponse(w, location, "Location retrieved successfully", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *RouteHandler) HandleLocationUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
		return
	}

	var input locationInput
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

	_, found, err := h.DB.Location().GetOne(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	if !found {
		h.ErrHandler.NotFoundEntity(w, r, "Location", id)
		return
	}

	location := input.toModel()
	location.ID = id

	updated, err := h.DB.Location().Update(r.Context(), location)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = response.JSONOkResponse(w, updated, "Location updated successfully", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

// HandleLocationDelete blocks removal while events still point at the
// location.
func (h *RouteHandler) HandleLocationDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
		return
	}

	_, found, err := h.DB.Location().GetOne(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	if !found {
		h.ErrHandler.NotFoundEntity(w, r, "Location", id)
		return
	}

	used, err := h.DB.Location().UsageCount(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	if used > 0 {
		label := "events"
		if used == 1 {
			label = "event"
		}
		h.ErrHandler.Conflict(w, r, fmt.Sprintf("Cannot delete this location: %d %s still reference it", used, label))
		return
	}

	err = h.DB.Location().Delete(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = response.JSONOkResponse(w, map[string]any{"id": id}, "Location deleted successfully", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
