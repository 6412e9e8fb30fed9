package model

import (
	"time"

	"github.com/google/uuid"
)

// PersonRole разделяет команду на две группы: съёмочная и пост-продакшн
type PersonRole string

const (
	RoleDirectorShooter PersonRole = "director_shooter"
	RolePostProduction  PersonRole = "post_production"
)

func (r PersonRole) Valid() bool {
	return r == RoleDirectorShooter || r == RolePostProduction
}

// Label returns the display name shown in clients.
func (r PersonRole) Label() string {
	switch r {
	case RoleDirectorShooter:
		return "Director/Shooter"
	case RolePostProduction:
		return "PostProduction"
	}
	return string(r)
}

type Person struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Role      PersonRole `gorm:"not null;check:role IN ('director_shooter', 'post_production')" json:"role"`
	Color     string     `json:"color"`
	TextColor string     `json:"text_color"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"-"`
}
