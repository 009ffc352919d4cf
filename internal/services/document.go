package services

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/aralgen/aralgen-backend/internal/logger"
  "github.com/aralgen/aralgen-backend/internal/repos"
  "github.com/aralgen/aralgen-backend/internal/types"
)

type DocumentService interface {
  ListDocuments(ctx context.Context, docType types.DocumentType, limit int) ([]*types.GeneratedDocument, error)
  GetDocument(ctx context.Context, id uuid.UUID) (*types.GeneratedDocument, error)
  DeleteDocument(ctx context.Context, id uuid.UUID) error
}

type documentService struct {
  db      *gorm.DB
  log     *logger.Logger
  docRepo repos.DocumentRepo
}

func NewDocumentService(db *gorm.DB, log *logger.Logger, docRepo repos.DocumentRepo) DocumentService {
  return &documentService{
    db:      db,
    log:     log.With("service", "DocumentService"),
    docRepo: docRepo,
  }
}

func (s *documentService) ListDocuments(ctx context.Context, docType types.DocumentType, limit int) ([]*types.GeneratedDocument, error) {
  return s.docRepo.List(ctx, nil, docType, limit)
}

func (s *documentService) GetDocument(ctx context.Context, id uuid.UUID) (*types.GeneratedDocument, error) {
  return s.docRepo.GetByID(ctx, nil, id)
}

func (s *documentService) DeleteDocument(ctx context.Context, id uuid.UUID) error {
  return s.docRepo.SoftDeleteByID(ctx, nil, id)
}
