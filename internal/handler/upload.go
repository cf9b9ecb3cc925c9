package handler

import (
	"errors"
	"net/http"

	"github.com/sholaoke/churchbase/internal/response"
)

// Uploads accept images for profile pictures, signatures and event banners.
const maxUploadBytes = 10 << 20

// HandleFileUpload pushes a multipart file to the media CDN and returns its
// public URL for the client to attach to a record.
func (h *RouteHandler) HandleFileUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	err := r.ParseMultipartForm(maxUploadBytes)
	if err != nil {
		h.ErrHandler.BadRequest(w, r, errors.New("request must be multipart form data within the size limit"))
		return
	}

	uploaded, header, err := r.FormFile("file")
	if err != nil {
		h.ErrHandler.BadRequest(w, r, errors.New("a file field named \"file\" is required"))
		return
	}
	defer uploaded.Close()

	url, err := h.Uploader.Upload(r.Context(), uploaded, header.Filename)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	data := map[string]any{
		"url":      url,
		"filename": header.Filename,
	}
	err = response.JSONOkResponse(w, data, "File uploaded successfully", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
