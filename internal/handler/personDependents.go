package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sholaoke/churchbase/internal/repository"
	"github.com/sholaoke/churchbase/internal/request"
	"github.com/sholaoke/churchbase/internal/response"
	"github.com/sholaoke/churchbase/internal/validator"
)

// collectionFromPath reads and checks the {collection} path segment.
func collectionFromPath(r *http.Request) (repository.DependentKind, bool) {
	segment := r.PathValue("collection")
	if !repository.IsDependentKind(segment) {
		return "", false
	}
	return repository.DependentKind(segment), true
}

func (h *RouteHandler) HandlePersonCollectionGet(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idFromPath(r)
		if !ok {
			h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
			return
		}

		collection, ok := collectionFromPath(r)
		if !ok {
			h.ErrHandler.NotFound(w, r)
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

		rows, err := h.DB.Person().GetCollection(r.Context(), id, collection)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}

		err = response.JSONOkResponse(w, rows, "Records retrieved successfully", nil)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
		}
	}
}

// collectionInput is the PUT body for every dependent collection; only the
// array matching the collection in the URL is read, the rest are ignored.
type collectionInput struct {
	Children          []childInput            `json:"children"`
	EmergencyContacts []emergencyContactInput `json:"emergencyContacts"`
	Education         []educationInput        `json:"educationRecords"`
	Experiences       []experienceInput       `json:"ministryExperiences"`
	SkillIDs          []int                   `json:"ministrySkillIds"`
	MinistryRecords   []ministryRecordInput   `json:"ministryRecords"`
	Awards            []awardInput            `json:"awards"`
	Employment        []employmentInput       `json:"employmentRecords"`
	Seminars          []seminarInput          `json:"seminars"`
}

// HandlePersonCollectionReplace swaps out every row of one dependent
// collection for the supplied set, atomically.
func (h *RouteHandler) HandlePersonCollectionReplace(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idFromPath(r)
		if !ok {
			h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
			return
		}

		collection, ok := collectionFromPath(r)
		if !ok {
			h.ErrHandler.NotFound(w, r)
			return
		}

		var input collectionInput
		err := request.DecodeJSON(w, r, &input)
		if err != nil {
			h.ErrHandler.BadRequest(w, r, err)
			return
		}

		// Reuse the create-path validation by running only the supplied
		// arrays through it.
		personIn := personInput{
			Children:          input.Children,
			EmergencyContacts: input.EmergencyContacts,
			Education:         input.Education,
			Experiences:       input.Experiences,
			SkillIDs:          input.SkillIDs,
			MinistryRecords:   input.MinistryRecords,
			Awards:            input.Awards,
			Employment:        input.Employment,
			Seminars:          input.Seminars,
		}
		var v validator.Validator
		personIn.validateDependents(&v)
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

		_, deps := personIn.toModels(kind)

		err = h.DB.Person().ReplaceCollection(r.Context(), id, collection, deps)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrInvalidReference):
				h.ErrHandler.BadRequest(w, r, errors.New("referenced skill does not exist"))
			case errors.Is(err, repository.ErrDuplicate):
				h.ErrHandler.Conflict(w, r, "Duplicate entries in the supplied records")
			default:
				h.ErrHandler.ServerError(w, r, err)
			}
			return
		}

		rows, err := h.DB.Person().GetCollection(r.Context(), id, collection)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}

		message := fmt.Sprintf("%s records updated successfully", entityLabel(kind))
		err = response.JSONOkResponse(w, rows, message, nil)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
		}
	}
}
