package events

import (
	"time"

	"greencouncil-api/internal/content"
	"greencouncil-api/internal/domain/events"
)

// ---------- requests

type TranslationInput struct {
	Language    string   `json:"language" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

type CreateRequest struct {
	Slug             string             `json:"slug" binding:"required"`
	Status           string             `json:"status"`
	StartDate        time.Time          `json:"start_date" binding:"required"`
	EndDate          *time.Time         `json:"end_date"`
	Location         string             `json:"location"`
	Capacity         int                `json:"capacity"`
	Price            float64            `json:"price"`
	Currency         string             `json:"currency"`
	RegistrationLink string             `json:"registration_link"`
	Translations     []TranslationInput `json:"translations" binding:"required"`
}

type UpdateRequest struct {
	Status           *string            `json:"status"`
	StartDate        *time.Time         `json:"start_date"`
	EndDate          *time.Time         `json:"end_date"`
	Location         *string            `json:"location"`
	Capacity         *int               `json:"capacity"`
	Price            *float64           `json:"price"`
	Currency         *string            `json:"currency"`
	RegistrationLink *string            `json:"registration_link"`
	Translations     []TranslationInput `json:"translations" binding:"required"`
}

// ---------- responses

type Item struct {
	ID               string     `json:"id"`
	Slug             string     `json:"slug"`
	Status           string     `json:"status"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Location         string     `json:"location,omitempty"`
	Capacity         int        `json:"capacity"`
	Price            float64    `json:"price"`
	Currency         string     `json:"currency"`
	RegistrationLink string     `json:"registration_link,omitempty"`

	Language    string   `json:"language"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListResponse struct {
	Items      []Item             `json:"items"`
	Pagination content.Pagination `json:"pagination"`
}

func toItem(e events.Event) Item {
	item := Item{
		ID:               e.ID,
		Slug:             e.Slug,
		Status:           e.Status,
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		Location:         e.Location,
		Capacity:         e.Capacity,
		Price:            e.Price,
		Currency:         e.Currency,
		RegistrationLink: e.RegistrationLink,
		Tags:             []string{},
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if len(e.Translations) > 0 {
		tr := e.Translations[0]
		item.Language = tr.Language
		item.Title = tr.Title
		item.Description = tr.Description
		item.Category = tr.Category
		if tr.Tags != nil {
			item.Tags = tr.Tags
		}
	}
	return item
}

func toTranslations(in []TranslationInput) []events.EventTranslation {
	out := make([]events.EventTranslation, 0, len(in))
	for _, t := range in {
		out = append(out, events.EventTranslation{
			Language:    t.Language,
			Title:       t.Title,
			Description: t.Description,
			Category:    t.Category,
			Tags:        content.StringList(t.Tags),
		})
	}
	return out
}
