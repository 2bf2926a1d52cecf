package entities

import "time"

// Base contém campos comuns para as entidades identificadas por UUID
type Base struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}
