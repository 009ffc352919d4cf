package handlers

import (
  "context"
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/aralgen/aralgen-backend/internal/logger"
  "github.com/aralgen/aralgen-backend/internal/services"
  "github.com/aralgen/aralgen-backend/internal/types"
)

type GenerateHandler struct {
  log *logger.Logger
  gen services.GenerationService
}

func NewGenerateHandler(log *logger.Logger, gen services.GenerationService) *GenerateHandler {
  return &GenerateHandler{
    log: log.With("handler", "GenerateHandler"),
    gen: gen,
  }
}

func (h *GenerateHandler) respond(c *gin.Context, doc *types.GeneratedDocument, err error) {
  if err != nil {
    status := http.StatusBadGateway
    code := "generation_failed"
    if errors.Is(err, context.Canceled) {
      status = 499
      code = "client_closed_request"
    }
    h.log.Warn("Generation failed", "error", err)
    RespondError(c, status, code, err)
    return
  }
  RespondOK(c, gin.H{"document": doc})
}

// POST /api/generate/dlp
func (h *GenerateHandler) GenerateDLP(c *gin.Context) {
  var params services.GenerateParams
  if err := c.ShouldBindJSON(&params); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_params", err)
    return
  }
  doc, err := h.gen.GenerateDLP(c.Request.Context(), params)
  h.respond(c, doc, err)
}

// POST /api/generate/dll
func (h *GenerateHandler) GenerateDLL(c *gin.Context) {
  var params services.DLLParams
  if err := c.ShouldBindJSON(&params); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_params", err)
    return
  }
  doc, err := h.gen.GenerateDLL(c.Request.Context(), params)
  h.respond(c, doc, err)
}

// POST /api/generate/las
func (h *GenerateHandler) GenerateLAS(c *gin.Context) {
  var params services.LASParams
  if err := c.ShouldBindJSON(&params); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_params", err)
    return
  }
  doc, err := h.gen.GenerateLAS(c.Request.Context(), params)
  h.respond(c, doc, err)
}

// POST /api/generate/quiz
func (h *GenerateHandler) GenerateQuiz(c *gin.Context) {
  var params services.QuizParams
  if err := c.ShouldBindJSON(&params); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_params", err)
    return
  }
  doc, err := h.gen.GenerateQuiz(c.Request.Context(), params)
  h.respond(c, doc, err)
}

// POST /api/generate/exam
func (h *GenerateHandler) GenerateExam(c *gin.Context) {
  var params services.ExamParams
  if err := c.ShouldBindJSON(&params); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_params", err)
    return
  }
  doc, err := h.gen.GenerateExam(c.Request.Context(), params)
  h.respond(c, doc, err)
}
