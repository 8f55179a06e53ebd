package entities

import (
	"encoding/json"
	"time"
)

// SubscriptionTier is the plan a user pays for.
type SubscriptionTier string

const (
	SubscriptionTierFree     SubscriptionTier = "free"
	SubscriptionTierPro      SubscriptionTier = "pro"
	SubscriptionTierBusiness SubscriptionTier = "business"
)

// tierPrices are monthly prices charged at checkout.
var tierPrices = map[SubscriptionTier]float64{
	SubscriptionTierPro:      29.0,
	SubscriptionTierBusiness: 99.0,
}

// Price returns the checkout amount; false for tiers that cannot be bought.
func (t SubscriptionTier) Price() (float64, bool) {
	p, ok := tierPrices[t]
	return p, ok
}

// SubscriptionStatus follows the payment outcome.
type SubscriptionStatus string

const (
	SubscriptionStatusPending   SubscriptionStatus = "pending"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// Subscription is a user's paid plan.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id
//   - GSI (payment_id-index): payment_id
//
// MPPayloadRaw keeps the last Mercado Pago response for audit.
type Subscription struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Tier      SubscriptionTier   `json:"tier"`
	Status    SubscriptionStatus `json:"status"`
	Amount    float64            `json:"amount"`
	PaymentID string             `json:"payment_id"`

	MPPayloadRaw json.RawMessage `json:"mp_payload_raw,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
