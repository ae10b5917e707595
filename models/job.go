package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Main Job Model (GORM)
// ═══════════════════════════════════════════════════════════

// Job is a classified listing as produced by the upstream classifier.
// The taxonomy columns (specialty, job_type, experience_level, shift_type)
// hold raw classifier strings and are normalized at read time, never in place.
type Job struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title           string         `json:"title" gorm:"not null;index"`
	Description     string         `json:"description" gorm:"not null"`
	State           string         `json:"state" gorm:"type:char(2);not null;index"`
	Specialty       *string        `json:"specialty,omitempty" gorm:"index"`
	JobType         *string        `json:"job_type,omitempty" gorm:"index"`
	ExperienceLevel *string        `json:"experience_level,omitempty"`
	ShiftType       *string        `json:"shift_type,omitempty"`
	EmployerID      uuid.UUID      `json:"employer_id" gorm:"type:uuid;not null;index"`
	EmployerName    *string        `json:"employer_name,omitempty" gorm:"-"` // Computed field
	Employer        *Employer      `json:"employer,omitempty" gorm:"foreignKey:EmployerID;references:ID"`
	IsActive        bool           `json:"is_active" gorm:"not null;default:true;index"`
	ClassifierMeta  datatypes.JSON `json:"classifier_meta" gorm:"type:jsonb;not null;default:'{}'"` // Raw classifier payload
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// AfterFind hook - populate EmployerName from relationship
func (j *Job) AfterFind(tx *gorm.DB) error {
	if j.Employer != nil {
		j.EmployerName = &j.Employer.Name
	}
	return nil
}

// TableName specifies the table name
func (Job) TableName() string {
	return "jobs"
}

// Employer names are canonical by foreign key; no synonym folding applies.
type Employer struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string    `json:"name" gorm:"not null;index"`
	Slug       string    `json:"slug" gorm:"not null;uniqueIndex"`
	IsVerified bool      `json:"is_verified" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (e *Employer) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Employer) TableName() string {
	return "employers"
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// JobSummary is the thin list-view row (browse results page)
type JobSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	State        string    `json:"state"`
	Specialty    string    `json:"specialty"`
	JobType      string    `json:"job_type"`
	EmployerName string    `json:"employer_name"`
	CreatedAt    time.Time `json:"created_at"`
}
