package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSubscriptionNotFound           = errors.New("subscription not found")
	ErrInvalidSubscriptionTier        = errors.New("invalid subscription tier")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ISubscriptionUseCase covers checkout and payment notifications.
type ISubscriptionUseCase interface {
	Checkout(ctx context.Context, userID string, tier entities.SubscriptionTier, mpPayload json.RawMessage) (entities.Subscription, error)
	GetCurrent(ctx context.Context, userID string) (entities.Subscription, error)
	HandlePaymentNotification(ctx context.Context, paymentID string) (entities.Subscription, error)
}

type SubscriptionUseCase struct {
	repo    interfaces.ISubscriptionRepository
	gateway interfaces.IPaymentGateway
	now     func() time.Time
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(repo interfaces.ISubscriptionRepository, gateway interfaces.IPaymentGateway) *SubscriptionUseCase {
	return &SubscriptionUseCase{repo: repo, gateway: gateway, now: time.Now}
}

// Checkout charges the tier price and stores the subscription. The amount
// always comes from the tier, never from the client payload.
func (u *SubscriptionUseCase) Checkout(ctx context.Context, userID string, tier entities.SubscriptionTier, mpPayload json.RawMessage) (entities.Subscription, error) {
	userID = strings.TrimSpace(userID)
	log.Printf("[subscription][usecase] checkout start user_id=%s tier=%s payload_len=%d", userID, tier, len(mpPayload))
	if userID == "" {
		return entities.Subscription{}, ErrInvalidUserID
	}
	price, ok := tier.Price()
	if !ok {
		return entities.Subscription{}, ErrInvalidSubscriptionTier
	}
	if u.gateway == nil {
		log.Printf("[subscription][usecase] gateway not configured user_id=%s", userID)
		return entities.Subscription{}, ErrPaymentGatewayNotConfigured
	}
	if len(mpPayload) == 0 {
		mpPayload = json.RawMessage("{}")
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		log.Printf("[subscription][usecase] invalid payload (not-object) user_id=%s", userID)
		return entities.Subscription{}, ErrInvalidMPPayload
	}

	subID := uuid.NewString()
	ensurePayerDefaults(reqMap)
	reqMap["external_reference"] = subID
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("BizGenius %s subscription", tier)
	}
	reqMap["transaction_amount"] = price
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Subscription{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[subscription][usecase] payment gateway failed user_id=%s err=%v", userID, err)
		return entities.Subscription{}, mapGatewayError(err)
	}
	log.Printf("[subscription][usecase] payment created user_id=%s provider_payment_id=%s provider_status=%s", userID, providerPaymentID, providerStatus)

	now := u.now().UTC()
	sub := entities.Subscription{
		ID:           subID,
		UserID:       userID,
		Tier:         tier,
		Status:       subscriptionStatusFromPayment(providerStatus),
		Amount:       price,
		PaymentID:    providerPaymentID,
		MPPayloadRaw: providerResp,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, sub)
	if err != nil {
		log.Printf("[subscription][usecase] repository create failed subscription_id=%s err=%v", sub.ID, err)
		return entities.Subscription{}, err
	}
	log.Printf("[subscription][usecase] checkout success subscription_id=%s status=%s", created.ID, created.Status)
	return created, nil
}

// GetCurrent returns the newest active subscription, else the newest one.
func (u *SubscriptionUseCase) GetCurrent(ctx context.Context, userID string) (entities.Subscription, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Subscription{}, ErrInvalidUserID
	}
	subs, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return entities.Subscription{}, err
	}
	if len(subs) == 0 {
		return entities.Subscription{}, ErrSubscriptionNotFound
	}

	var latest, latestActive entities.Subscription
	for _, s := range subs {
		if latest.ID == "" || s.CreatedAt.After(latest.CreatedAt) {
			latest = s
		}
		if s.Status == entities.SubscriptionStatusActive && (latestActive.ID == "" || s.CreatedAt.After(latestActive.CreatedAt)) {
			latestActive = s
		}
	}
	if latestActive.ID != "" {
		return latestActive, nil
	}
	return latest, nil
}

// HandlePaymentNotification re-reads the payment from the gateway and moves
// the matching subscription to the status it implies.
func (u *SubscriptionUseCase) HandlePaymentNotification(ctx context.Context, paymentID string) (entities.Subscription, error) {
	paymentID = strings.TrimSpace(paymentID)
	log.Printf("[subscription][usecase] notification start payment_id=%s", paymentID)
	if paymentID == "" {
		return entities.Subscription{}, ErrInvalidPaymentID
	}
	if u.gateway == nil {
		return entities.Subscription{}, ErrPaymentGatewayNotConfigured
	}

	providerStatus, externalRef, providerResp, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[subscription][usecase] payment lookup failed payment_id=%s err=%v", paymentID, err)
		return entities.Subscription{}, mapGatewayError(err)
	}

	sub, err := u.repo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return entities.Subscription{}, err
	}
	if sub.ID == "" {
		log.Printf("[subscription][usecase] no subscription for payment payment_id=%s external_reference=%s", paymentID, externalRef)
		return entities.Subscription{}, ErrSubscriptionNotFound
	}

	status := subscriptionStatusFromPayment(providerStatus)
	if status == sub.Status {
		log.Printf("[subscription][usecase] notification no-op subscription_id=%s status=%s", sub.ID, status)
		return sub, nil
	}
	updated, err := u.repo.UpdateStatus(ctx, sub.ID, status, providerResp)
	if err != nil {
		return entities.Subscription{}, err
	}
	if updated.ID == "" {
		return entities.Subscription{}, ErrSubscriptionNotFound
	}
	log.Printf("[subscription][usecase] notification applied subscription_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func subscriptionStatusFromPayment(providerStatus string) entities.SubscriptionStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.SubscriptionStatusActive
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.SubscriptionStatusCancelled
	default:
		return entities.SubscriptionStatusPending
	}
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

// ensurePayerDefaults fills the sandbox payer email when the client sent none.
func ensurePayerDefaults(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		payer = map[string]any{}
		m["payer"] = payer
	}
	if hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
		payer["email"] = email
	} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		payer["email"] = "test_user_br@testuser.com"
	}
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
