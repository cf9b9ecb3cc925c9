package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/sholaoke/churchbase/internal/models"
	"github.com/sholaoke/churchbase/internal/repository"
	"github.com/sholaoke/churchbase/internal/request"
	"github.com/sholaoke/churchbase/internal/response"
	"github.com/sholaoke/churchbase/internal/validator"
)

type eventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"eventDate"`
	EventTime   string `json:"eventTime"`
	ChurchID    int    `json:"churchId"`
	LocationID  int    `json:"locationId"`
	BannerURL   string `json:"bannerUrl"`
	IsActive    *bool  `json:"isActive"`
}

func (input *eventInput) validate(v *validator.Validator) {
	v.CheckField(validator.NotBlank(input.Title), "title", "Title is required")
	v.CheckField(validator.MaxRunes(input.Title, maxNameLength+100), "title", "Title is too long")
	v.CheckField(validator.MaxRunes(input.Description, maxTextLength), "description", "Description is too long")

	v.CheckField(validator.NotBlank(input.EventDate), "eventDate", "Event date is required")
	if input.EventDate != "" {
		_, err := time.Parse("2006-01-02", input.EventDate)
		v.CheckField(err == nil, "eventDate", "Event date must be in YYYY-MM-DD format")
	}
	if input.EventTime != "" {
		_, err := time.Parse("15:04", input.EventTime)
		v.CheckField(err == nil, "eventTime", "Event time must be in HH:MM format")
	}
}

func (input *eventInput) toModel() *models.Event {
	event := &models.Event{
		Title:       input.Title,
		Description: optString(input.Description),
		EventDate:   input.EventDate,
		EventTime:   optString(input.EventTime),
		ChurchID:    optInt(input.ChurchID),
		LocationID:  optInt(input.LocationID),
		BannerURL:   optString(input.BannerURL),
		IsActive:    true,
	}
	if input.IsActive != nil {
		event.IsActive = *input.IsActive
	}
	return event
}

func (h *RouteHandler) HandleEventCreate(w http.ResponseWriter, r *http.Request) {
	var input eventInput

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

	event, err := h.DB.Event().Insert(r.Context(), input.toModel())
	if err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			h.ErrHandler.BadRequest(w, r, errors.New("referenced church or location does not exist"))
			return
		}
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = response.JSONCreatedResponse(w, event, "Event created successfully")
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *RouteHandler) HandleEventList(w http.ResponseWriter, r *http.Request) {
	filter := retrieveListFilter(r)

	events, total, err := h.DB.Event().List(r.Context(), filter)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	pagination := response.NewPagination(filter.Page, filter.Limit, total)
	err = response.JSONPaginatedResponse(w, events, pagination, "Events retrieved successfully")
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *RouteHandler) HandleEventGet(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
		return
	}

	event, found, err := h.DB.Event().GetOne(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	if !found {
		h.ErrHandler.NotFoundEntity(w, r, "Event", id)
		return
	}

	err = response.JSONOkResponse(w, event, "Event retrieved successfully", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *RouteHandler) HandleEventUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
		return
	}

	var input eventInput
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

	_, found, err := h.DB.Event().GetOne(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	if !found {
		h.ErrHandler.NotFoundEntity(w, r, "Event", id)
		return
	}

	event := input.toModel()
	event.ID = id

	updated, err := h.DB.Event().Update(r.Context(), event)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			h.ErrHandler.BadRequest(w, r, errors.New("referenced church or location does not exist"))
			return
		}
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = response.JSONOkResponse(w, updated, "Event updated successfully", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *RouteHandler) HandleEventDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
		return
	}

	_, found, err := h.DB.Event().GetOne(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	if !found {
		h.ErrHandler.NotFoundEntity(w, r, "Event", id)
		return
	}

	err = h.DB.Event().Delete(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = response.JSONOkResponse(w, map[string]any{"id": id}, "Event deleted successfully", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
