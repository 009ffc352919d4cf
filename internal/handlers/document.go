package handlers

import (
  "errors"
  "fmt"
  "net/http"
  "strconv"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/aralgen/aralgen-backend/internal/logger"
  "github.com/aralgen/aralgen-backend/internal/preview"
  "github.com/aralgen/aralgen-backend/internal/services"
  "github.com/aralgen/aralgen-backend/internal/types"
)

type DocumentHandler struct {
  log      *logger.Logger
  docSvc   services.DocumentService
  export   services.ExportService
  renderer *preview.Renderer
}

func NewDocumentHandler(log *logger.Logger, docSvc services.DocumentService, export services.ExportService, renderer *preview.Renderer) *DocumentHandler {
  return &DocumentHandler{
    log:      log.With("handler", "DocumentHandler"),
    docSvc:   docSvc,
    export:   export,
    renderer: renderer,
  }
}

// GET /api/documents?type=&limit=
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
  docType := types.DocumentType(c.Query("type"))
  if docType != "" && !docType.Valid() {
    RespondError(c, http.StatusBadRequest, "invalid_type", fmt.Errorf("unknown document type %q", docType))
    return
  }
  limit := 0
  if v := c.Query("limit"); v != "" {
    n, err := strconv.Atoi(v)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "invalid_limit", fmt.Errorf("invalid limit %q", v))
      return
    }
    limit = n
  }

  docs, err := h.docSvc.ListDocuments(c.Request.Context(), docType, limit)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "list_failed", err)
    return
  }
  RespondOK(c, gin.H{"documents": docs})
}

func (h *DocumentHandler) getByParam(c *gin.Context) (*types.GeneratedDocument, bool) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid document id"))
    return nil, false
  }
  doc, err := h.docSvc.GetDocument(c.Request.Context(), id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      RespondError(c, http.StatusNotFound, "not_found", fmt.Errorf("document not found"))
      return nil, false
    }
    RespondError(c, http.StatusInternalServerError, "get_failed", err)
    return nil, false
  }
  return doc, true
}

// GET /api/documents/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
  doc, ok := h.getByParam(c)
  if !ok {
    return
  }
  RespondOK(c, gin.H{"document": doc})
}

// DELETE /api/documents/:id
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid document id"))
    return
  }
  if err := h.docSvc.DeleteDocument(c.Request.Context(), id); err != nil {
    RespondError(c, http.StatusInternalServerError, "delete_failed", err)
    return
  }
  RespondOK(c, gin.H{"deleted": id})
}

// GET /api/documents/:id/preview
func (h *DocumentHandler) PreviewDocument(c *gin.Context) {
  doc, ok := h.getByParam(c)
  if !ok {
    return
  }
  html, err := h.renderer.Render(doc)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "preview_failed", err)
    return
  }
  c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// GET /api/documents/:id/export?format=docx|xlsx
func (h *DocumentHandler) ExportDocument(c *gin.Context) {
  doc, ok := h.getByParam(c)
  if !ok {
    return
  }
  format := services.ExportFormat(c.DefaultQuery("format", string(services.FormatDocx)))
  result, err := h.export.Export(doc, format)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "export_failed", err)
    return
  }
  c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
  c.Data(http.StatusOK, result.ContentType, result.Data)
}
