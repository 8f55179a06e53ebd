package request

import (
	"encoding/json"
	"strings"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
)

// CheckoutRequest buys a tier.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas; the amount is always taken from the tier.
type CheckoutRequest struct {
	Tier      string          `json:"tier" binding:"required"`
	MPPayload json.RawMessage `json:"mp_payload"`
}

func (r CheckoutRequest) ResolveTier() entities.SubscriptionTier {
	return entities.SubscriptionTier(strings.ToLower(strings.TrimSpace(r.Tier)))
}

// ResolvePayload returns an empty object when no payload was sent.
func (r CheckoutRequest) ResolvePayload() json.RawMessage {
	v := strings.TrimSpace(string(r.MPPayload))
	if v == "" || v == "null" {
		return json.RawMessage("{}")
	}
	return r.MPPayload
}

// MercadoPagoNotification is the webhook body Mercado Pago posts on payment
// changes.
type MercadoPagoNotification struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	Data   struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

// ResolveDataID accepts data.id as either a JSON string or number.
func (n MercadoPagoNotification) ResolveDataID() string {
	raw := strings.TrimSpace(string(n.Data.ID))
	if raw == "" || raw == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(n.Data.ID, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return raw
}
