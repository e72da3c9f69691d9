package members

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

const (
	TypeIndividual = "individual"
	TypeCorporate  = "corporate"
	TypeStudent    = "student"
)

// Member is the one un-translated registry entity: membership records keyed by
// a unique email plus a synthetic id.
type Member struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"id"`
	Email string `gorm:"not null;uniqueIndex:idx_members_email" json:"email"`

	FirstName    string `gorm:"column:first_name" json:"first_name"`
	LastName     string `gorm:"column:last_name" json:"last_name"`
	Phone        string `json:"phone,omitempty"`
	Organization string `json:"organization,omitempty"`

	MembershipType string `gorm:"column:membership_type;type:varchar(20);not null;default:'individual'" json:"membership_type"`

	// New signups start pending; only update advances to active/inactive.
	Status string `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	// Preferred correspondence language.
	Language string `gorm:"type:varchar(5);not null;default:'fr'" json:"language"`

	Interests datatypes.JSON `json:"interests,omitempty"`

	StripeCustomerID *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_members_stripe_customer_id" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

var AllowedStatuses = []string{StatusPending, StatusActive, StatusInactive}

var AllowedTypes = []string{TypeIndividual, TypeCorporate, TypeStudent}

func IsAllowedStatus(s string) bool {
	for _, v := range AllowedStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func IsAllowedType(t string) bool {
	for _, v := range AllowedTypes {
		if v == t {
			return true
		}
	}
	return false
}
