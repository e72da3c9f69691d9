package billing

import (
	"errors"
	"net/http"
	"os"

	"greencouncil-api/config"
	"greencouncil-api/internal/domain/members"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	customer "github.com/stripe/stripe-go/v75/customer"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// POST /api/membership/checkout
//
// Starts a Stripe subscription checkout for a registered member's annual
// dues. The price is resolved from the member's membership type against the
// configured allow-list; arbitrary price ids are never accepted from clients.
func (h *Handler) CreateDuesCheckout(c *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid email"})
		return
	}

	stripe.Key = config.STRIPE_SECRET_KEY
	if stripe.Key == "" {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Payments are not configured"})
		return
	}

	var member members.Member
	err := h.db.Where("email = ?", body.Email).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No member registered with this email"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load member"})
		return
	}

	priceID := config.MembershipPriceID(member.MembershipType)
	if priceID == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "No dues price configured for this membership type"})
		return
	}

	// ensure stripe customer
	if member.StripeCustomerID == nil || *member.StripeCustomerID == "" {
		cus, err := customer.New(&stripe.CustomerParams{
			Email: stripe.String(member.Email),
			Metadata: map[string]string{
				"member_id": member.ID,
				"app_env":   config.APP_ENV,
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Stripe customer"})
			return
		}

		if err := h.db.Model(&members.Member{}).
			Where("id = ?", member.ID).
			Update("stripe_customer_id", cus.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store Stripe customer"})
			return
		}
		member.StripeCustomerID = stripe.String(cus.ID)
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:5173"
	}

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(appURL + "/membership?paid=1"),
		CancelURL:  stripe.String(appURL + "/membership?canceled=1"),
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer:   stripe.String(*member.StripeCustomerID),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},

		ClientReferenceID: stripe.String(member.ID),

		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				"member_id":       member.ID,
				"membership_type": member.MembershipType,
			},
		},
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}
