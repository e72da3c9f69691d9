package stripewebhooks

import (
	"fmt"
	"log"

	"greencouncil-api/internal/domain/members"

	"github.com/stripe/stripe-go/v75"
)

// handleCheckoutSessionCompleted activates the member whose dues checkout
// just completed. The member id rides along as the client reference.
func (h *Handler) handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	memberID := session.ClientReferenceID
	if memberID == "" {
		// Nothing to retry; acknowledge and move on.
		log.Println("checkout.session.completed without client_reference_id, ignoring")
		return nil
	}

	res := h.db.Model(&members.Member{}).
		Where("id = ?", memberID).
		Update("status", members.StatusActive)
	if res.Error != nil {
		return fmt.Errorf("activate member %s: %w", memberID, res.Error)
	}
	if res.RowsAffected == 0 {
		log.Printf("checkout completed for unknown member %s", memberID)
	}
	return nil
}
