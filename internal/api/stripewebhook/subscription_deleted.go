package stripewebhooks

import (
	"fmt"

	"greencouncil-api/internal/domain/members"

	"github.com/stripe/stripe-go/v75"
)

// handleSubscriptionDeleted marks the member inactive once their dues
// subscription lapses.
func (h *Handler) handleSubscriptionDeleted(sub *stripe.Subscription) error {
	if sub.Customer == nil || sub.Customer.ID == "" {
		return nil
	}

	res := h.db.Model(&members.Member{}).
		Where("stripe_customer_id = ?", sub.Customer.ID).
		Update("status", members.StatusInactive)
	if res.Error != nil {
		return fmt.Errorf("deactivate member for customer %s: %w", sub.Customer.ID, res.Error)
	}
	return nil
}
