package payment

import (
	"context"
)

// Provider is the surface of the hosted-payment-page processor the booking
// flow depends on: create an intent, read back its authoritative status, and
// refund a paid intent. Amounts are in minor units (cents) so no float ever
// touches a monetary value.
type Provider interface {
	CreateIntent(ctx context.Context, request *IntentRequest) (*IntentResponse, error)
	GetIntentStatus(ctx context.Context, intentRef string) (IntentStatus, error)
	RefundIntent(ctx context.Context, request *RefundRequest) (*RefundResponse, error)
}

type IntentStatus string

const (
	IntentStatusSucceeded  IntentStatus = "succeeded"
	IntentStatusProcessing IntentStatus = "processing"

	// Anything else (requires_payment_method, canceled, ...) is treated as a
	// failed payment by the reconciliation mapping.
)

type IntentRequest struct {
	AmountMinor int64             `json:"amount_minor"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
}

type IntentResponse struct {
	IntentRef    string       `json:"intent_ref"`
	ClientSecret string       `json:"client_secret"`
	Status       IntentStatus `json:"status"`
	AmountMinor  int64        `json:"amount_minor"`
	Currency     string       `json:"currency"`
	CreatedAt    int64        `json:"created_at"`
}

type RefundRequest struct {
	IntentRef string `json:"intent_ref"`
	Reason    string `json:"reason"`
}

type RefundResponse struct {
	RefundID    string `json:"refund_id"`
	Status      string `json:"status"`
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
	CreatedAt   int64  `json:"created_at"`
}
