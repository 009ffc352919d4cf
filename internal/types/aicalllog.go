package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

type AICallLog struct {
  ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  Kind          DocumentType   `gorm:"column:kind;not null;index" json:"kind"`
  Model         string         `gorm:"column:model;not null" json:"model"`
  PromptName    string         `gorm:"column:prompt_name;not null" json:"prompt_name"`
  PromptVersion int            `gorm:"column:prompt_version;not null" json:"prompt_version"`
  DurationMS    int64          `gorm:"column:duration_ms;not null" json:"duration_ms"`
  Success       bool           `gorm:"column:success;not null" json:"success"`
  Error         string         `gorm:"column:error" json:"error"`
  CreatedAt     time.Time      `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt     time.Time      `gorm:"not null;default:now()" json:"updated_at"`
  DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AICallLog) TableName() string {
  return "ai_call_log"
}
