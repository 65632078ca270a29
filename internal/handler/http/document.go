package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-console/internal/domain/document"
	"github.com/cmlabs-hris/hris-console/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// DocumentHandler serves the Data Store's json-server style REST surface.
// Bodies are plain JSON, not the console envelope.
type DocumentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Replace(w http.ResponseWriter, r *http.Request)
	Merge(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &documentHandlerImpl{
		documentService: documentService,
	}
}

var emptyObject = struct{}{}

func writeDocumentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, document.ErrDocumentNotFound), errors.Is(err, document.ErrUnknownCollection):
		response.JSON(w, http.StatusNotFound, emptyObject)
	case errors.Is(err, document.ErrDuplicateID):
		response.JSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, document.ErrInvalidDocument):
		response.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		response.HandleError(w, err)
	}
}

func decodeDocument(r *http.Request) (document.Document, error) {
	var doc document.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil || doc == nil {
		return nil, document.ErrInvalidDocument
	}
	return doc, nil
}

func (h *documentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.List(r.Context(), chi.URLParam(r, "collection"))
	if err != nil {
		writeDocumentError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, docs)
}

func (h *documentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.documentService.Get(r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "id"))
	if err != nil {
		writeDocumentError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, doc)
}

func (h *documentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		writeDocumentError(w, err)
		return
	}

	created, err := h.documentService.Create(r.Context(), chi.URLParam(r, "collection"), doc)
	if err != nil {
		writeDocumentError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *documentHandlerImpl) Replace(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		writeDocumentError(w, err)
		return
	}

	replaced, err := h.documentService.Replace(r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "id"), doc)
	if err != nil {
		writeDocumentError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, replaced)
}

func (h *documentHandlerImpl) Merge(w http.ResponseWriter, r *http.Request) {
	patch, err := decodeDocument(r)
	if err != nil {
		writeDocumentError(w, err)
		return
	}

	merged, err := h.documentService.Merge(r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeDocumentError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, merged)
}

func (h *documentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.documentService.Delete(r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "id")); err != nil {
		writeDocumentError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, emptyObject)
}
