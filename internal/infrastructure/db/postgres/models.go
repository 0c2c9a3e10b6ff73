package postgres

import (
	"time"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
)

type workplaceModel struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	NameLower string `gorm:"size:200;not null;uniqueIndex"`
	CreatedAt time.Time
}

func (workplaceModel) TableName() string { return "workplaces" }

type roleModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"size:32;not null;uniqueIndex"`
}

func (roleModel) TableName() string { return "roles" }

type userModel struct {
	ID            int64          `gorm:"primaryKey"`
	Username      string         `gorm:"size:100;not null"`
	UsernameLower string         `gorm:"size:100;not null;uniqueIndex"`
	PasswordHash  string         `gorm:"size:255;not null"`
	FirstName     string         `gorm:"size:100"`
	LastName      string         `gorm:"size:100"`
	WorkplaceID   int64          `gorm:"not null;index"`
	Workplace     workplaceModel `gorm:"constraint:OnDelete:RESTRICT"`
	CreatedAt     time.Time
}

func (userModel) TableName() string { return "users" }

type userRoleModel struct {
	UserID int64     `gorm:"primaryKey"`
	RoleID int64     `gorm:"primaryKey"`
	User   userModel `gorm:"constraint:OnDelete:CASCADE"`
	Role   roleModel `gorm:"constraint:OnDelete:CASCADE"`
}

func (userRoleModel) TableName() string { return "user_roles" }

type entryModel struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"not null;index"`
	User      userModel `gorm:"constraint:OnDelete:CASCADE"`
	Date      time.Time `gorm:"type:date;not null;index"`
	Mood      int       `gorm:"not null;check:mood BETWEEN 1 AND 5"`
	Sleep     int       `gorm:"not null;check:sleep BETWEEN 1 AND 5"`
	Stress    int       `gorm:"not null;check:stress BETWEEN 1 AND 5"`
	Activity  int       `gorm:"not null;check:activity BETWEEN 1 AND 5"`
	Nutrition int       `gorm:"not null;check:nutrition BETWEEN 1 AND 5"`
}

func (entryModel) TableName() string { return "health_entries" }

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		WorkplaceID:  m.WorkplaceID,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func (m *workplaceModel) toDomain() *domain.Workplace {
	return &domain.Workplace{ID: m.ID, Name: m.Name}
}

func (m *entryModel) toDomain() *domain.HealthEntry {
	return &domain.HealthEntry{
		ID:     m.ID,
		UserID: m.UserID,
		Date:   domain.Day(m.Date),
		Metrics: domain.Metrics{
			Mood:      m.Mood,
			Sleep:     m.Sleep,
			Stress:    m.Stress,
			Activity:  m.Activity,
			Nutrition: m.Nutrition,
		},
	}
}
