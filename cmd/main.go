package main

import (
  "fmt"
  "os"

  "github.com/aralgen/aralgen-backend/internal/db"
  "github.com/aralgen/aralgen-backend/internal/curriculum"
  "github.com/aralgen/aralgen-backend/internal/handlers"
  "github.com/aralgen/aralgen-backend/internal/logger"
  "github.com/aralgen/aralgen-backend/internal/preview"
  "github.com/aralgen/aralgen-backend/internal/prompts"
  "github.com/aralgen/aralgen-backend/internal/repos"
  "github.com/aralgen/aralgen-backend/internal/server"
  "github.com/aralgen/aralgen-backend/internal/services"
  "github.com/aralgen/aralgen-backend/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Prompts
  prompts.RegisterAll()

  // Curriculum catalog
  catalog, err := curriculum.Load()
  if err != nil {
    log.Error("Could not load curriculum catalog", "error", err)
    os.Exit(1)
  }

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  documentRepo := repos.NewDocumentRepo(thePG, log)
  callLogRepo := repos.NewAICallLogRepo(thePG, log)

  // Services
  log.Info("Setting up Services from main...")
  geminiClient, err := services.NewGeminiClient(log)
  if err != nil {
    log.Error("Could not init GeminiClient", "error", err)
    os.Exit(1)
  }
  generationCache := services.NewGenerationCache(log)
  if generationCache.Enabled() {
    log.Info("Generation cache enabled")
  }
  generationService := services.NewGenerationService(
    thePG,
    log,
    documentRepo,
    callLogRepo,
    generationCache,
    geminiClient,
    catalog,
  )
  documentService := services.NewDocumentService(thePG, log, documentRepo)
  exportService := services.NewExportService(log)
  renderer, err := preview.New()
  if err != nil {
    log.Error("Could not init preview renderer", "error", err)
    os.Exit(1)
  }

  // Handlers
  log.Info("Setting up handlers from main...")
  generateHandler := handlers.NewGenerateHandler(log, generationService)
  documentHandler := handlers.NewDocumentHandler(log, documentService, exportService, renderer)
  curriculumHandler := handlers.NewCurriculumHandler(log, catalog)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    GenerateHandler:   generateHandler,
    DocumentHandler:   documentHandler,
    CurriculumHandler: curriculumHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  log.Info("Starting server", "port", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server exited", "error", err)
    os.Exit(1)
  }
}
