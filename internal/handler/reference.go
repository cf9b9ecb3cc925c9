package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sholaoke/churchbase/internal/models"
	"github.com/sholaoke/churchbase/internal/repository"
	"github.com/sholaoke/churchbase/internal/request"
	"github.com/sholaoke/churchbase/internal/response"
	"github.com/sholaoke/churchbase/internal/validator"
)

type referenceInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (input *referenceInput) validate(v *validator.Validator, label string) {
	v.CheckField(validator.NotBlank(input.Name), "name", fmt.Sprintf("%s name is required", label))
	v.CheckField(validator.MaxRunes(input.Name, maxNameLength), "name", fmt.Sprintf("%s name is too long", label))
	v.CheckField(validator.MaxRunes(input.Description, maxTextLength), "description", "Description is too long")
}

// referenceResource adapts one reference table's repository behind a common
// handler set. Ranks and skills have identical lifecycles; only the labels,
// messages and backing repository differ.
type referenceResource struct {
	label           string
	entity          string
	usageLabel      string
	conflictMessage string
	insert          func(ctx context.Context, name string, description *string) (any, error)
	getOne          func(ctx context.Context, id int) (any, bool, error)
	list            func(ctx context.Context, filter repository.ListFilter) (any, int, error)
	update          func(ctx context.Context, id int, name string, description *string) (any, error)
	delete          func(ctx context.Context, id int) error
	usageCount      func(ctx context.Context, id int) (int, error)
}

func (h *RouteHandler) rankResource() referenceResource {
	repo := h.DB.MinistryRank()
	return referenceResource{
		label:           "Ministry rank",
		entity:          "Ministry rank",
		usageLabel:      "minister",
		conflictMessage: "A ministry rank with this name already exists.",
		insert: func(ctx context.Context, name string, description *string) (any, error) {
			row, err := repo.Insert(ctx, &models.MinistryRank{Name: name, Description: description})
			return row, err
		},
		getOne: func(ctx context.Context, id int) (any, bool, error) {
			row, found, err := repo.GetOne(ctx, id)
			return row, found, err
		},
		list: func(ctx context.Context, filter repository.ListFilter) (any, int, error) {
			rows, total, err := repo.List(ctx, filter)
			return rows, total, err
		},
		update: func(ctx context.Context, id int, name string, description *string) (any, error) {
			row, err := repo.Update(ctx, &models.MinistryRank{ID: id, Name: name, Description: description})
			return row, err
		},
		delete:     repo.Delete,
		usageCount: repo.UsageCount,
	}
}

func (h *RouteHandler) skillResource() referenceResource {
	repo := h.DB.MinistrySkill()
	return referenceResource{
		label:           "Ministry skill",
		entity:          "Ministry skill",
		usageLabel:      "person record",
		conflictMessage: "A ministry skill with this name already exists.",
		insert: func(ctx context.Context, name string, description *string) (any, error) {
			row, err := repo.Insert(ctx, &models.MinistrySkill{Name: name, Description: description})
			return row, err
		},
		getOne: func(ctx context.Context, id int) (any, bool, error) {
			row, found, err := repo.GetOne(ctx, id)
			return row, found, err
		},
		list: func(ctx context.Context, filter repository.ListFilter) (any, int, error) {
			rows, total, err := repo.List(ctx, filter)
			return rows, total, err
		},
		update: func(ctx context.Context, id int, name string, description *string) (any, error) {
			row, err := repo.Update(ctx, &models.MinistrySkill{ID: id, Name: name, Description: description})
			return row, err
		},
		delete:     repo.Delete,
		usageCount: repo.UsageCount,
	}
}

func (h *RouteHandler) handleReferenceCreate(resource func() referenceResource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := resource()

		var input referenceInput
		err := request.DecodeJSON(w, r, &input)
		if err != nil {
			h.ErrHandler.BadRequest(w, r, err)
			return
		}

		var v validator.Validator
		input.validate(&v, res.label)
		if v.HasErrors() {
			h.ErrHandler.FailedValidation(w, r, v.FieldErrors)
			return
		}

		created, err := res.insert(r.Context(), input.Name, optString(input.Description))
		if err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				h.ErrHandler.Conflict(w, r, res.conflictMessage)
				return
			}
			h.ErrHandler.ServerError(w, r, err)
			return
		}

		err = response.JSONCreatedResponse(w, created, fmt.Sprintf("%s created successfully", res.label))
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
		}
	}
}

func (h *RouteHandler) handleReferenceList(resource func() referenceResource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := resource()
		filter := retrieveListFilter(r)

		rows, total, err := res.list(r.Context(), filter)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}

		pagination := response.NewPagination(filter.Page, filter.Limit, total)
		err = response.JSONPaginatedResponse(w, rows, pagination, fmt.Sprintf("%ss retrieved successfully", res.label))
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
		}
	}
}

func (h *RouteHandler) handleReferenceGet(resource func() referenceResource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := resource()

		id, ok := idFromPath(r)
		if !ok {
			h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
			return
		}

		row, found, err := res.getOne(r.Context(), id)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}
		if !found {
			h.ErrHandler.NotFoundEntity(w, r, res.entity, id)
			return
		}

		err = response.JSONOkResponse(w, row, fmt.Sprintf("%s retrieved successfully", res.label), nil)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
		}
	}
}

func (h *RouteHandler) handleReferenceUpdate(resource func() referenceResource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := resource()

		id, ok := idFromPath(r)
		if !ok {
			h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
			return
		}

		var input referenceInput
		err := request.DecodeJSON(w, r, &input)
		if err != nil {
			h.ErrHandler.BadRequest(w, r, err)
			return
		}

		var v validator.Validator
		input.validate(&v, res.label)
		if v.HasErrors() {
			h.ErrHandler.FailedValidation(w, r, v.FieldErrors)
			return
		}

		_, found, err := res.getOne(r.Context(), id)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}
		if !found {
			h.ErrHandler.NotFoundEntity(w, r, res.entity, id)
			return
		}

		updated, err := res.update(r.Context(), id, input.Name, optString(input.Description))
		if err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				h.ErrHandler.Conflict(w, r, res.conflictMessage)
				return
			}
			h.ErrHandler.ServerError(w, r, err)
			return
		}

		err = response.JSONOkResponse(w, updated, fmt.Sprintf("%s updated successfully", res.label), nil)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
		}
	}
}

func (h *RouteHandler) handleReferenceDelete(resource func() referenceResource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := resource()

		id, ok := idFromPath(r)
		if !ok {
			h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
			return
		}

		_, found, err := res.getOne(r.Context(), id)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}
		if !found {
			h.ErrHandler.NotFoundEntity(w, r, res.entity, id)
			return
		}

		used, err := res.usageCount(r.Context(), id)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}
		if used > 0 {
			label := res.usageLabel
			if used != 1 {
				label += "s"
			}
			h.ErrHandler.Conflict(w, r, fmt.Sprintf("Cannot delete this %s: %d %s still reference it",
				lower(res.label), used, label))
			return
		}

		err = res.delete(r.Context(), id)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}

		err = response.JSONOkResponse(w, map[string]any{"id": id}, fmt.Sprintf("%s deleted successfully", res.label), nil)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
		}
	}
}

func lower(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

// Named route targets so the mux reads the same as the other entities.

func (h *RouteHandler) HandleRankCreate() http.HandlerFunc {
	return h.handleReferenceCreate(h.rankResource)
}
func (h *RouteHandler) HandleRankList() http.HandlerFunc {
	return h.handleReferenceList(h.rankResource)
}
func (h *RouteHandler) HandleRankGet() http.HandlerFunc { return h.handleReferenceGet(h.rankResource) }
func (h *RouteHandler) HandleRankUpdate() http.HandlerFunc {
	return h.handleReferenceUpdate(h.rankResource)
}
func (h *RouteHandler) HandleRankDelete() http.HandlerFunc {
	return h.handleReferenceDelete(h.rankResource)
}
func (h *RouteHandler) HandleSkillCreate() http.HandlerFunc {
	return h.handleReferenceCreate(h.skillResource)
}
func (h *RouteHandler) HandleSkillList() http.HandlerFunc {
	return h.handleReferenceList(h.skillResource)
}
func (h *RouteHandler) HandleSkillGet() http.HandlerFunc {
	return h.handleReferenceGet(h.skillResource)
}
func (h *RouteHandler) HandleSkillUpdate() http.HandlerFunc {
	return h.handleReferenceUpdate(h.skillResource)
}
func (h *RouteHandler) HandleSkillDelete() http.HandlerFunc {
	return h.handleReferenceDelete(h.skillResource)
}
