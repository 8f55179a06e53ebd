package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "github.com/acg-data/bizgenius-sub001/internal/adapter/http/dto/request"
	response "github.com/acg-data/bizgenius-sub001/internal/adapter/http/dto/response"
	"github.com/acg-data/bizgenius-sub001/internal/adapter/http/middleware"
	"github.com/acg-data/bizgenius-sub001/internal/usecase"
	"github.com/acg-data/bizgenius-sub001/pkg"

	"github.com/gin-gonic/gin"
)

const (
	headerMPSignature = "x-signature"
	headerMPRequestID = "x-request-id"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
	errInvalidWebhookPayload  = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)
	errInvalidSignature       = pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusUnauthorized)

	errMalformedSignature = errors.New("malformed x-signature header")
	errSignatureMismatch  = errors.New("x-signature mismatch")
)

// SubscriptionHandler handles checkout and Mercado Pago payment notifications.
type SubscriptionHandler struct {
	usecase       usecase.ISubscriptionUseCase
	webhookSecret string
}

// NewSubscriptionHandler builds the handler. An empty webhookSecret disables
// signature checks (local development only).
func NewSubscriptionHandler(uc usecase.ISubscriptionUseCase, webhookSecret string) *SubscriptionHandler {
	if webhookSecret == "" {
		log.Printf("[subscription][handler] webhook signature verification disabled")
	}
	return &SubscriptionHandler{usecase: uc, webhookSecret: webhookSecret}
}

// @Summary      Buy a subscription tier
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.CheckoutRequest  true  "Tier and Mercado Pago payload"
// @Success      201   {object}  response.SubscriptionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /subscriptions/checkout [post]
func (h *SubscriptionHandler) Checkout(c *gin.Context) {
	userID := middleware.UserID(c)
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[subscription][handler] invalid checkout payload user_id=%s err=%v", userID, err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	sub, err := h.usecase.Checkout(c.Request.Context(), userID, payload.ResolveTier(), payload.ResolvePayload())
	if err != nil {
		log.Printf("[subscription][handler] checkout failed user_id=%s tier=%s err=%v", userID, payload.ResolveTier(), err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[subscription][handler] checkout success user_id=%s subscription_id=%s status=%s", userID, sub.ID, sub.Status)

	c.JSON(http.StatusCreated, response.FromSubscription(sub))
}

// @Summary      Caller's latest subscription
// @Tags         subscriptions
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.SubscriptionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /subscriptions/me [get]
func (h *SubscriptionHandler) GetMySubscription(c *gin.Context) {
	sub, err := h.usecase.GetCurrent(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubscription(sub))
}

// MercadoPagoWebhook applies a payment notification. Non-payment topics and
// payments without a subscription are acknowledged so Mercado Pago stops
// redelivering them.
//
// @Summary      Mercado Pago payment notification
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.SubscriptionResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /webhooks/mercadopago [post]
func (h *SubscriptionHandler) MercadoPagoWebhook(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}
	var n request.MercadoPagoNotification
	if len(strings.TrimSpace(string(raw))) > 0 {
		if err := json.Unmarshal(raw, &n); err != nil {
			log.Printf("[subscription][handler] webhook invalid body err=%v", err)
			c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
			return
		}
	}

	topic := firstNonEmpty(c.Query("type"), c.Query("topic"), n.Type)
	dataID := firstNonEmpty(c.Query("data.id"), n.ResolveDataID(), c.Query("id"))

	if h.webhookSecret != "" {
		if err := verifyMercadoPagoSignature(h.webhookSecret, c.GetHeader(headerMPSignature), c.GetHeader(headerMPRequestID), dataID); err != nil {
			log.Printf("[subscription][handler] webhook rejected data_id=%s err=%v", dataID, err)
			c.JSON(errInvalidSignature.HTTPStatus, errInvalidSignature.ToHTTPError())
			return
		}
	}

	if topic != "payment" || dataID == "" {
		log.Printf("[subscription][handler] webhook ignored type=%s data_id=%s", topic, dataID)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	sub, err := h.usecase.HandlePaymentNotification(c.Request.Context(), dataID)
	if errors.Is(err, usecase.ErrSubscriptionNotFound) {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
	if err != nil {
		log.Printf("[subscription][handler] webhook failed data_id=%s err=%v", dataID, err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubscription(sub))
}

// verifyMercadoPagoSignature checks the x-signature header
// ("ts=<ts>,v1=<hex hmac>") against the manifest
// "id:<data.id>;request-id:<x-request-id>;ts:<ts>;". Parts whose value is
// missing are left out of the manifest.
func verifyMercadoPagoSignature(secret, header, requestID, dataID string) error {
	var ts, v1 string
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case "ts":
			ts = strings.TrimSpace(v)
		case "v1":
			v1 = strings.TrimSpace(v)
		}
	}
	if ts == "" || v1 == "" {
		return errMalformedSignature
	}

	var manifest strings.Builder
	if dataID != "" {
		manifest.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		manifest.WriteString("request-id:" + requestID + ";")
	}
	manifest.WriteString("ts:" + ts + ";")

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest.String()))
	expected := mac.Sum(nil)

	got, err := hex.DecodeString(v1)
	if err != nil {
		return errMalformedSignature
	}
	if !hmac.Equal(expected, got) {
		return errSignatureMismatch
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func mapSubscriptionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubscriptionTier):
		return pkg.NewDomainErrorSimple("INVALID_TIER", "Tier must be pro or business", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrSubscriptionNotFound):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_NOT_FOUND", "Subscription not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
