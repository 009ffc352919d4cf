package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"

  "github.com/aralgen/aralgen-backend/internal/handlers"
)

type RouterConfig struct {
  GenerateHandler   *handlers.GenerateHandler
  DocumentHandler   *handlers.DocumentHandler
  CurriculumHandler *handlers.CurriculumHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5173",
    },
    AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  router.GET("/healthcheck", handlers.HealthCheck)

  api := router.Group("/api")
  {
    // Curriculum
    api.GET("/curriculum/subjects", cfg.CurriculumHandler.ListSubjects)
    // Generation
    api.POST("/generate/dlp", cfg.GenerateHandler.GenerateDLP)
    api.POST("/generate/dll", cfg.GenerateHandler.GenerateDLL)
    api.POST("/generate/las", cfg.GenerateHandler.GenerateLAS)
    api.POST("/generate/quiz", cfg.GenerateHandler.GenerateQuiz)
    api.POST("/generate/exam", cfg.GenerateHandler.GenerateExam)
    // Documents
    api.GET("/documents", cfg.DocumentHandler.ListDocuments)
    api.GET("/documents/:id", cfg.DocumentHandler.GetDocument)
    api.DELETE("/documents/:id", cfg.DocumentHandler.DeleteDocument)
    api.GET("/documents/:id/preview", cfg.DocumentHandler.PreviewDocument)
    api.GET("/documents/:id/export", cfg.DocumentHandler.ExportDocument)
  }

  return router
}
