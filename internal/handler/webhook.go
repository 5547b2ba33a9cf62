package handler

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/ndmitriev/BookPay/internal/service"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Payment and identity providers retry deliveries aggressively on non-2xx.
// Once a signature checks out the handlers always acknowledge: processing
// failures are recorded against the event row and retried out of band, a 5xx
// would only cause a redelivery the dedup table discards anyway.

const maxWebhookBody = 1 << 20 // 1 MiB

type WebhookSvc interface {
	HandleConnectEvent(ctx context.Context, event stripe.Event) error
	HandleIdentityEvent(ctx context.Context, ev service.IdentityEvent) error
}

type WebhookConfig struct {
	StripeSigningSecret string
	IdentitySecret      string
	SkipSignatureVerify bool
}

type WebhookHandler struct {
	service WebhookSvc
	cfg     WebhookConfig
	logger  logger.Logger
}

func NewWebhookHandler(service WebhookSvc, cfg WebhookConfig, logger logger.Logger) *WebhookHandler {
	return &WebhookHandler{service: service, cfg: cfg, logger: logger}
}

func (h *WebhookHandler) PaymentConnect(c *ginext.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, ginext.H{"error": "read body"})
		return
	}

	var event stripe.Event
	if h.cfg.SkipSignatureVerify {
		if err := json.Unmarshal(payload, &event); err != nil {
			c.JSON(http.StatusBadRequest, ginext.H{"error": "invalid payload"})
			return
		}
	} else {
		event, err = webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.cfg.StripeSigningSecret)
		if err != nil {
			h.logger.Warn("stripe signature verification failed",
				logger.String("error", err.Error()),
			)
			c.JSON(http.StatusBadRequest, ginext.H{"error": "invalid signature"})
			return
		}
	}

	if err := h.service.HandleConnectEvent(c.Request.Context(), event); err != nil {
		h.logger.Error("connect event processing failed",
			logger.String("event_id", event.ID),
			logger.String("type", string(event.Type)),
			logger.String("error", err.Error()),
		)
	}

	c.JSON(http.StatusOK, ginext.H{"received": true})
}

type identityPayload struct {
	EventID        string `json:"eventId"`
	ApplicantID    string `json:"applicantId"`
	ExternalUserID string `json:"externalUserId"`
	ReviewStatus   string `json:"reviewStatus"`
	ReviewResult   struct {
		ReviewAnswer string `json:"reviewAnswer"`
	} `json:"reviewResult"`
}

func (h *WebhookHandler) Identity(c *ginext.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, ginext.H{"error": "read body"})
		return
	}

	if !h.cfg.SkipSignatureVerify {
		if !verifyDigest(payload, c.GetHeader("X-Payload-Digest"), h.cfg.IdentitySecret) {
			h.logger.Warn("identity signature verification failed")
			c.JSON(http.StatusUnauthorized, ginext.H{"error": "invalid signature"})
			return
		}
	}

	var body identityPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		c.JSON(http.StatusBadRequest, ginext.H{"error": "invalid payload"})
		return
	}

	ev := service.IdentityEvent{
		EventID:      body.EventID,
		ApplicantID:  body.ApplicantID,
		ProviderID:   body.ExternalUserID,
		ReviewStatus: body.ReviewStatus,
		ReviewResult: body.ReviewResult.ReviewAnswer,
	}
	// Some identity providers omit an event id; fall back to a digest of the
	// body so replays still dedup.
	if ev.EventID == "" {
		sum := sha256.Sum256(payload)
		ev.EventID = hex.EncodeToString(sum[:])
	}

	if err := h.service.HandleIdentityEvent(c.Request.Context(), ev); err != nil {
		h.logger.Error("identity event processing failed",
			logger.String("event_id", ev.EventID),
			logger.String("error", err.Error()),
		)
	}

	c.JSON(http.StatusOK, ginext.H{"received": true})
}

func verifyDigest(payload []byte, digest, secret string) bool {
	if digest == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	want := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(want), []byte(digest))
}
