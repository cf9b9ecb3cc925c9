package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sholaoke/churchbase/internal/export"
	"github.com/sholaoke/churchbase/internal/models"
)

// HandlePersonExport streams the full roster for one person kind as a
// spreadsheet. The isActive query param narrows to active or inactive rows.
func (h *RouteHandler) HandlePersonExport(kind string) http.HandlerFunc {
	entity := "members"
	if kind == models.PersonKindMinister {
		entity = "ministers"
	}

	return func(w http.ResponseWriter, r *http.Request) {
		filter := retrieveListFilter(r)

		people, err := h.DB.Person().ListAll(r.Context(), kind, filter.IsActive)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}

		sheet := export.Sheet{
			Name: entityLabel(kind) + "s",
			Headers: []string{
				"ID", "Name", "Gender", "Civil Status", "Date of Birth",
				"Email", "Mobile", "Present Address", "Occupation",
				"Ministry Status", "Active", "Registered",
			},
		}

		for _, person := range people {
			sheet.Rows = append(sheet.Rows, []any{
				person.ID,
				person.FullName(),
				person.Gender,
				person.CivilStatus,
				strOrEmpty(person.DateOfBirth),
				strOrEmpty(person.Email),
				strOrEmpty(person.Mobile),
				strOrEmpty(person.PresentAddress),
				strOrEmpty(person.Occupation),
				strOrEmpty(person.MinistryStatus),
				person.IsActive,
				person.CreatedAt.Format("2006-01-02"),
			})
		}

		writeWorkbook(w, r, h, sheet, entity)
	}
}

func (h *RouteHandler) HandleChurchExport(w http.ResponseWriter, r *http.Request) {
	filter := retrieveListFilter(r)

	churches, err := h.DB.Church().ListAll(r.Context(), filter.IsActive)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	sheet := export.Sheet{
		Name: "Churches",
		Headers: []string{
			"ID", "Name", "Address", "City", "Province", "Pastor",
			"Contact Email", "Contact Phone", "Established", "Active", "Registered",
		},
	}

	for _, church := range churches {
		sheet.Rows = append(sheet.Rows, []any{
			church.ID,
			church.Name,
			church.Address,
			strOrEmpty(church.City),
			strOrEmpty(church.Province),
			strOrEmpty(church.PastorName),
			strOrEmpty(church.ContactEmail),
			strOrEmpty(church.ContactPhone),
			strOrEmpty(church.DateEstablished),
			church.IsActive,
			church.CreatedAt.Format("2006-01-02"),
		})
	}

	writeWorkbook(w, r, h, sheet, "churches")
}

func writeWorkbook(w http.ResponseWriter, r *http.Request, h *RouteHandler, sheet export.Sheet, entity string) {
	workbook, err := export.Workbook(sheet)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	filename := export.Filename(entity, time.Now())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(workbook)
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
