package response

import (
	"encoding/json"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
)

type SubscriptionResponse struct {
	ID        string    `json:"id"`
	Tier      string    `json:"tier"`
	Status    string    `json:"status"`
	Amount    float64   `json:"amount"`
	PaymentID string    `json:"payment_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MPPayload map[string]interface{} `json:"mp_payload,omitempty"`
}

// FromSubscription decodes the stored Mercado Pago response when it is a JSON
// object; anything else is dropped from the view.
func FromSubscription(s entities.Subscription) SubscriptionResponse {
	res := SubscriptionResponse{
		ID:        s.ID,
		Tier:      string(s.Tier),
		Status:    string(s.Status),
		Amount:    s.Amount,
		PaymentID: s.PaymentID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if len(s.MPPayloadRaw) > 0 {
		var payload map[string]interface{}
		if err := json.Unmarshal(s.MPPayloadRaw, &payload); err == nil {
			res.MPPayload = payload
		}
	}
	return res
}
