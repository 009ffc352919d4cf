package handlers

import (
  "fmt"
  "net/http"
  "strconv"

  "github.com/gin-gonic/gin"

  "github.com/aralgen/aralgen-backend/internal/curriculum"
  "github.com/aralgen/aralgen-backend/internal/logger"
)

type CurriculumHandler struct {
  log     *logger.Logger
  catalog *curriculum.Catalog
}

func NewCurriculumHandler(log *logger.Logger, catalog *curriculum.Catalog) *CurriculumHandler {
  return &CurriculumHandler{
    log:     log.With("handler", "CurriculumHandler"),
    catalog: catalog,
  }
}

// GET /api/curriculum/subjects?grade=
func (h *CurriculumHandler) ListSubjects(c *gin.Context) {
  raw := c.Query("grade")
  if raw == "" {
    RespondError(c, http.StatusBadRequest, "missing_grade", fmt.Errorf("grade query parameter is required"))
    return
  }
  grade, err := strconv.Atoi(raw)
  if err != nil || !h.catalog.HasGrade(grade) {
    RespondError(c, http.StatusBadRequest, "invalid_grade", fmt.Errorf("unknown grade %q", raw))
    return
  }
  RespondOK(c, gin.H{
    "grade":    grade,
    "subjects": h.catalog.SubjectsFor(grade),
  })
}
