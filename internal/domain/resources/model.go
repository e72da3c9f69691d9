package resources

import (
	"time"

	"greencouncil-api/internal/content"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Resource struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Slug string `gorm:"not null;uniqueIndex:idx_resources_slug" json:"slug"`

	Status string `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`

	FileURL  string `gorm:"column:file_url;not null" json:"file_url"`
	FileSize int64  `gorm:"column:file_size;not null;default:0" json:"file_size"`
	FileType string `gorm:"column:file_type;type:varchar(20)" json:"file_type,omitempty"`

	Downloads int64 `gorm:"not null;default:0" json:"downloads"`

	Translations []ResourceTranslation `gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE;" json:"translations,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Resource) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type ResourceTranslation struct {
	ResourceID string `gorm:"type:uuid;primaryKey" json:"-"`
	Language   string `gorm:"type:varchar(5);primaryKey;index" json:"language"`

	Title       string             `gorm:"not null" json:"title"`
	Description string             `gorm:"type:text" json:"description,omitempty"`
	Type        string             `gorm:"index" json:"type,omitempty"`
	Category    string             `gorm:"index" json:"category,omitempty"`
	Tags        content.StringList `json:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var AllowedStatuses = []string{content.StatusDraft, content.StatusPublished, content.StatusArchived}
