package events

import (
	"time"

	"greencouncil-api/internal/content"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Slug string `gorm:"not null;uniqueIndex:idx_events_slug" json:"slug"`

	// Events additionally allow the "cancelled" status.
	Status string `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`

	StartDate time.Time  `gorm:"column:start_date;not null;index" json:"start_date"`
	EndDate   *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`

	Location         string  `json:"location,omitempty"`
	Capacity         int     `gorm:"not null;default:0" json:"capacity"`
	Price            float64 `gorm:"not null;default:0" json:"price"`
	Currency         string  `gorm:"type:varchar(3);not null;default:'EUR'" json:"currency"`
	RegistrationLink string  `gorm:"column:registration_link" json:"registration_link,omitempty"`

	Translations []EventTranslation `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE;" json:"translations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

type EventTranslation struct {
	EventID  string `gorm:"type:uuid;primaryKey" json:"-"`
	Language string `gorm:"type:varchar(5);primaryKey;index" json:"language"`

	Title       string             `gorm:"not null" json:"title"`
	Description string             `gorm:"type:text" json:"description,omitempty"`
	Category    string             `gorm:"index" json:"category,omitempty"`
	Tags        content.StringList `json:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var AllowedStatuses = []string{
	content.StatusDraft,
	content.StatusPublished,
	content.StatusArchived,
	content.StatusCancelled,
}
