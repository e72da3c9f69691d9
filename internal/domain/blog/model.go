package blog

import (
	"time"

	"greencouncil-api/internal/content"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Slug string `gorm:"not null;uniqueIndex:idx_posts_slug" json:"slug"`

	Status string `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`

	FeaturedImage string `gorm:"column:featured_image" json:"featured_image,omitempty"`
	ReadTime      int    `gorm:"not null;default:0" json:"read_time"`

	Views    int64 `gorm:"not null;default:0" json:"views"`
	Likes    int64 `gorm:"not null;default:0" json:"likes"`
	Comments int64 `gorm:"not null;default:0" json:"comments"`

	Translations []PostTranslation `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;" json:"translations,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type PostTranslation struct {
	PostID   string `gorm:"type:uuid;primaryKey" json:"-"`
	Language string `gorm:"type:varchar(5);primaryKey;index" json:"language"`

	Title          string             `gorm:"not null" json:"title"`
	Excerpt        string             `gorm:"type:text" json:"excerpt,omitempty"`
	Content        string             `gorm:"type:text" json:"content,omitempty"`
	Author         string             `json:"author,omitempty"`
	Category       string             `gorm:"index" json:"category,omitempty"`
	Tags           content.StringList `json:"tags,omitempty"`
	SEOTitle       string             `gorm:"column:seo_title" json:"seo_title,omitempty"`
	SEODescription string             `gorm:"column:seo_description;type:text" json:"seo_description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AllowedStatuses for a blog post.
var AllowedStatuses = []string{content.StatusDraft, content.StatusPublished, content.StatusArchived}
