package handler

import (
	"net/http"

	"github.com/sholaoke/churchbase/internal/response"
	"github.com/sholaoke/churchbase/internal/version"
)

func (h *RouteHandler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	data := map[string]string{
		"status":  "available",
		"version": version.Get(),
	}

	err := response.JSONOkResponse(w, data, "Service is healthy", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
