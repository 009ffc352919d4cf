package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/aralgen/aralgen-backend/internal/logger"
  "github.com/aralgen/aralgen-backend/internal/types"
)

type DocumentRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.GeneratedDocument) (*types.GeneratedDocument, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.GeneratedDocument, error)
  List(ctx context.Context, tx *gorm.DB, docType types.DocumentType, limit int) ([]*types.GeneratedDocument, error)
  SoftDeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type documentRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewDocumentRepo(db *gorm.DB, baseLog *logger.Logger) DocumentRepo {
  repoLog := baseLog.With("repo", "DocumentRepo")
  return &documentRepo{db: db, log: repoLog}
}

func (r *documentRepo) Create(ctx context.Context, tx *gorm.DB, row *types.GeneratedDocument) (*types.GeneratedDocument, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
    return nil, err
  }
  return row, nil
}

func (r *documentRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.GeneratedDocument, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var result types.GeneratedDocument
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *documentRepo) List(ctx context.Context, tx *gorm.DB, docType types.DocumentType, limit int) ([]*types.GeneratedDocument, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if limit <= 0 || limit > 200 {
    limit = 50
  }
  q := transaction.WithContext(ctx).Order("created_at DESC").Limit(limit)
  if docType != "" {
    q = q.Where("type = ?", docType)
  }
  var results []*types.GeneratedDocument
  if err := q.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *documentRepo) SoftDeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.GeneratedDocument{}).Error
}
