package response

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope shape every route returns. Existing admin clients
// depend on these exact keys, so they must not change.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      string      `json:"error,omitempty"`
	Details    any         `json:"details,omitempty"`
}

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewPagination derives page metadata from a total row count.
func NewPagination(page, limit, total int) *Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
}

func JSONOkResponse(w http.ResponseWriter, data any, message string, headers http.Header) error {
	if message == "" {
		message = "Request successful"
	}

	response := &Response{
		Success: true,
		Message: message,
		Data:    data,
	}

	return JSONWithHeaders(w, http.StatusOK, response, headers)
}

func JSONCreatedResponse(w http.ResponseWriter, data any, message string) error {
	if message == "" {
		message = "Request successful"
	}

	response := &Response{
		Success: true,
		Message: message,
		Data:    data,
	}

	return JSONWithHeaders(w, http.StatusCreated, response, nil)
}

func JSONPaginatedResponse(w http.ResponseWriter, data any, pagination *Pagination, message string) error {
	if message == "" {
		message = "Request successful"
	}

	response := &Response{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	}

	return JSONWithHeaders(w, http.StatusOK, response, nil)
}

func JSONErrorResponse(w http.ResponseWriter, code, message string, details any, status int, headers http.Header) error {
	if message == "" {
		message = "Request failed"
	}
	if status == 0 {
		status = http.StatusInternalServerError
	}

	response := &Response{
		Success: false,
		Error:   code,
		Message: message,
		Details: details,
	}

	return JSONWithHeaders(w, status, response, headers)
}

func JSONWithHeaders(w http.ResponseWriter, status int, response *Response, headers http.Header) error {
	js, err := json.MarshalIndent(response, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	w.Write(js)

	return nil
}
