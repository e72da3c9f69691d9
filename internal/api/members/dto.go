package members

import (
	"greencouncil-api/internal/content"

	"gorm.io/datatypes"
)

// ---------- requests

type CreateRequest struct {
	Email          string         `json:"email" binding:"required,email"`
	FirstName      string         `json:"first_name" binding:"required"`
	LastName       string         `json:"last_name" binding:"required"`
	Phone          string         `json:"phone"`
	Organization   string         `json:"organization"`
	MembershipType string         `json:"membership_type"`
	Language       string         `json:"language"`
	Interests      datatypes.JSON `json:"interests"`
}

type UpdateRequest struct {
	Email          *string        `json:"email"`
	FirstName      *string        `json:"first_name"`
	LastName       *string        `json:"last_name"`
	Phone          *string        `json:"phone"`
	Organization   *string        `json:"organization"`
	MembershipType *string        `json:"membership_type"`
	Status         *string        `json:"status"`
	Language       *string        `json:"language"`
	Interests      datatypes.JSON `json:"interests"`
}

// ---------- responses

type ListResponse struct {
	Items      interface{}        `json:"items"`
	Pagination content.Pagination `json:"pagination"`
}

// StatsSummary aggregates membership counts and a trailing 12-month series of
// new signups grouped by calendar month.
type StatsSummary struct {
	Total    int64        `json:"total"`
	Active   int64        `json:"active"`
	Pending  int64        `json:"pending"`
	Inactive int64        `json:"inactive"`
	Monthly  []MonthCount `json:"monthly"`
}

type MonthCount struct {
	Month string `json:"month"` // "2025-09"
	Count int64  `json:"count"`
}
