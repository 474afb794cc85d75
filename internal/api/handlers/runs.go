package handlers

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"storyrun-service/internal/api/dto"
	"storyrun-service/internal/platform/obs"
	"storyrun-service/internal/ports"
	"storyrun-service/internal/services"
)

// Multipart parts above this size are spooled to temporary files.
const multipartMemory = 8 << 20

// RunHandler exposes run submission and retrieval.
type RunHandler struct {
	Runs           *services.RunService
	MaxUploadBytes int64
}

// Submit accepts a multipart form with run_type, universe and an optional gpx_file,
// and replaces the stored run.
func (h *RunHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if h.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	}

	if err := parseForm(r); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid form body")
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	req := services.SubmitRunRequest{
		RunType:  r.FormValue("run_type"),
		Universe: r.FormValue("universe"),
	}

	file, header, err := formFile(r, "gpx_file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid gpx_file")
		return
	}
	if file != nil {
		defer file.Close()
		req.Filename = header.Filename
		req.File = file
	}

	run, err := h.Runs.Submit(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRunTypeRequired), errors.Is(err, services.ErrUniverseRequired):
			writeError(w, r, http.StatusBadRequest, err.Error())
		default:
			log.Printf("req_id=%s submit run failed: %v", obs.RequestID(r.Context()), err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SubmitRunResponse{
		Status:   dto.StatusSuccess,
		RunType:  run.RunType,
		Universe: run.Universe,
		Filename: run.Filename,
	})
}

// Get returns the stored run, or a not_found status when nothing was submitted yet.
func (h *RunHandler) Get(w http.ResponseWriter, r *http.Request) {
	run, err := h.Runs.Current(r.Context())
	if errors.Is(err, ports.ErrRunNotFound) {
		writeJSON(w, r, http.StatusOK, dto.NotFoundResponse{
			Status:  dto.StatusNotFound,
			Message: "No run data found",
		})
		return
	}
	if err != nil {
		log.Printf("req_id=%s get run failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.RunResponse{
		Status:   dto.StatusSuccess,
		RunType:  run.RunType,
		Universe: run.Universe,
		Filename: run.Filename,
		FileData: run.FileData,
	})
}

// parseForm accepts multipart and urlencoded bodies.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(multipartMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}

// formFile returns a nil file when the field is absent or was sent without a filename.
func formFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	if r.MultipartForm == nil {
		return nil, nil, nil
	}

	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if header.Filename == "" {
		file.Close()
		return nil, nil, nil
	}

	return file, header, nil
}
