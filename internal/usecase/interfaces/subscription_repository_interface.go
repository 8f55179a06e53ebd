package interfaces

import (
	"context"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
)

// ISubscriptionRepository abstracts persistence for Subscription.
type ISubscriptionRepository interface {
	Create(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
	GetByPaymentID(ctx context.Context, paymentID string) (entities.Subscription, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Subscription, error)
	UpdateStatus(ctx context.Context, id string, status entities.SubscriptionStatus, mpPayload []byte) (entities.Subscription, error)
}
