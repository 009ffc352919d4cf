package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
)

// DocumentType identifies which DepEd form a generated document follows.
type DocumentType string

const (
  DocumentDLP  DocumentType = "dlp"
  DocumentDLL  DocumentType = "dll"
  DocumentLAS  DocumentType = "las"
  DocumentQuiz DocumentType = "quiz"
  DocumentExam DocumentType = "exam"
)

func (t DocumentType) Valid() bool {
  switch t {
  case DocumentDLP, DocumentDLL, DocumentLAS, DocumentQuiz, DocumentExam:
    return true
  }
  return false
}

// GeneratedDocument is one validated AI generation, kept so previews and
// exports re-read the stored JSON instead of trusting a client round-trip.
type GeneratedDocument struct {
  ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  Type          DocumentType   `gorm:"column:type;not null;index" json:"type"`
  Title         string         `gorm:"column:title;not null" json:"title"`
  Subject       string         `gorm:"column:subject;not null" json:"subject"`
  GradeLevel    int            `gorm:"column:grade_level;not null" json:"grade_level"`
  Quarter       int            `gorm:"column:quarter" json:"quarter"`
  Language      string         `gorm:"column:language;not null" json:"language"`
  Params        datatypes.JSON `gorm:"column:params;type:jsonb" json:"params"`
  Content       datatypes.JSON `gorm:"column:content;type:jsonb;not null" json:"content"`
  ModelID       string         `gorm:"column:model_id" json:"model_id"`
  PromptName    string         `gorm:"column:prompt_name;not null" json:"prompt_name"`
  PromptVersion int            `gorm:"column:prompt_version;not null" json:"prompt_version"`
  FromCache     bool           `gorm:"column:from_cache;not null;default:false" json:"from_cache"`
  CreatedAt     time.Time      `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt     time.Time      `gorm:"not null;default:now()" json:"updated_at"`
  DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (GeneratedDocument) TableName() string {
  return "generated_document"
}
