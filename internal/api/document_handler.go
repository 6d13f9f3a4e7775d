package api

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	app_errors "github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/errors"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/interfaces"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
)

// multipartMemory is how much of a multipart body is buffered in memory
// before the remainder spills to temporary files.
const multipartMemory = 8 << 20

// DocumentHandler handles PDF uploads and the document registry endpoints.
type DocumentHandler struct {
	service        interfaces.DocumentService
	maxUploadBytes int64
}

// NewDocumentHandler creates a DocumentHandler. maxUploadBytes caps the size
// of a single upload request body.
func NewDocumentHandler(s interfaces.DocumentService, maxUploadBytes int64) *DocumentHandler {
	return &DocumentHandler{service: s, maxUploadBytes: maxUploadBytes}
}

// HandleUpload godoc
// @Summary      Upload a PDF
// @Description  Saves the PDF, extracts its text, chunks and embeds it, and adds it to the search index.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF document"
// @Success      200  {object}  model.UploadResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      413  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /upload [post]
func (h *DocumentHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	file, header, err := h.firstFormFile(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	defer func() {
		if cErr := file.Close(); cErr != nil {
			slog.Warn("Failed to close uploaded file", "error", cErr)
		}
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	result, err := h.service.Upload(r.Context(), header.Filename, file)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, model.UploadResponse{Success: result.Success})
}

// firstFormFile parses the multipart body and returns the first file part.
// Field names are visited in sorted order so the choice is stable.
func (h *DocumentHandler) firstFormFile(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, nil, fmt.Errorf("%w: file exceeds the %d byte limit", app_errors.ErrTooLarge, maxErr.Limit)
		}
		return nil, nil, fmt.Errorf("%w: invalid multipart form: %v", app_errors.ErrValidation, err)
	}

	fields := make([]string, 0, len(r.MultipartForm.File))
	for field := range r.MultipartForm.File {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		headers := r.MultipartForm.File[field]
		if len(headers) == 0 {
			continue
		}
		file, err := headers[0].Open()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", app_errors.ErrStorage, err)
		}
		return file, headers[0], nil
	}
	return nil, nil, fmt.Errorf("%w: No file provided", app_errors.ErrValidation)
}

// HandleListDocuments godoc
// @Summary      List uploaded documents
// @Tags         Documents
// @Produce      json
// @Success      200  {array}   model.UploadedDocument
// @Failure      500  {object}  ErrorResponse
// @Router       /documents [get]
func (h *DocumentHandler) HandleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.service.ListDocuments(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	if docs == nil {
		docs = []*model.UploadedDocument{}
	}
	respondWithJSON(w, http.StatusOK, docs)
}

// HandleGetDocument godoc
// @Summary      Get an uploaded document
// @Tags         Documents
// @Produce      json
// @Param        documentID  path  string  true  "Document ID"
// @Success      200  {object}  model.UploadedDocument
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /documents/{documentID} [get]
func (h *DocumentHandler) HandleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.GetDocument(r.Context(), chi.URLParam(r, "documentID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doc)
}
