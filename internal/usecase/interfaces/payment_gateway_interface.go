package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// CreatePayment charges a subscription checkout; GetPayment is used by the
// webhook to read the authoritative payment status.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
	GetPayment(ctx context.Context, providerPaymentID string) (providerStatus string, externalReference string, providerResponse json.RawMessage, err error)
}
