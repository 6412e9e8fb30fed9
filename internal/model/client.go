package model

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Color     string    `json:"color"`
	TextColor string    `json:"text_color"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}
