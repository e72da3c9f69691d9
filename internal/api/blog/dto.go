package blog

import (
	"time"

	"greencouncil-api/internal/content"
	"greencouncil-api/internal/domain/blog"
)

// ---------- requests

type TranslationInput struct {
	Language       string   `json:"language" binding:"required"`
	Title          string   `json:"title" binding:"required"`
	Excerpt        string   `json:"excerpt"`
	Content        string   `json:"content"`
	Author         string   `json:"author"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags"`
	SEOTitle       string   `json:"seo_title"`
	SEODescription string   `json:"seo_description"`
}

type CreateRequest struct {
	Slug          string             `json:"slug" binding:"required"`
	Status        string             `json:"status"`
	FeaturedImage string             `json:"featured_image"`
	ReadTime      int                `json:"read_time"`
	Translations  []TranslationInput `json:"translations" binding:"required"`
}

type UpdateRequest struct {
	Status        *string            `json:"status"`
	FeaturedImage *string            `json:"featured_image"`
	ReadTime      *int               `json:"read_time"`
	Translations  []TranslationInput `json:"translations" binding:"required"`
}

// ---------- responses

// Item is the flattened public shape: entity fields plus the single
// requested-language translation.
type Item struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Status        string `json:"status"`
	FeaturedImage string `json:"featured_image,omitempty"`
	ReadTime      int    `json:"read_time"`
	Views         int64  `json:"views"`
	Likes         int64  `json:"likes"`
	Comments      int64  `json:"comments"`

	Language       string   `json:"language"`
	Title          string   `json:"title"`
	Excerpt        string   `json:"excerpt,omitempty"`
	Content        string   `json:"content,omitempty"`
	Author         string   `json:"author,omitempty"`
	Category       string   `json:"category,omitempty"`
	Tags           []string `json:"tags"`
	SEOTitle       string   `json:"seo_title,omitempty"`
	SEODescription string   `json:"seo_description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListResponse struct {
	Items      []Item             `json:"items"`
	Pagination content.Pagination `json:"pagination"`
}

func toItem(p blog.Post) Item {
	item := Item{
		ID:            p.ID,
		Slug:          p.Slug,
		Status:        p.Status,
		FeaturedImage: p.FeaturedImage,
		ReadTime:      p.ReadTime,
		Views:         p.Views,
		Likes:         p.Likes,
		Comments:      p.Comments,
		Tags:          []string{},
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if len(p.Translations) > 0 {
		tr := p.Translations[0]
		item.Language = tr.Language
		item.Title = tr.Title
		item.Excerpt = tr.Excerpt
		item.Content = tr.Content
		item.Author = tr.Author
		item.Category = tr.Category
		item.SEOTitle = tr.SEOTitle
		item.SEODescription = tr.SEODescription
		if tr.Tags != nil {
			item.Tags = tr.Tags
		}
	}
	return item
}

func toTranslations(in []TranslationInput) []blog.PostTranslation {
	out := make([]blog.PostTranslation, 0, len(in))
	for _, t := range in {
		out = append(out, blog.PostTranslation{
			Language:       t.Language,
			Title:          t.Title,
			Excerpt:        t.Excerpt,
			Content:        t.Content,
			Author:         t.Author,
			Category:       t.Category,
			Tags:           content.StringList(t.Tags),
			SEOTitle:       t.SEOTitle,
			SEODescription: t.SEODescription,
		})
	}
	return out
}
