package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type StripeProvider struct {
	client         *client.API
	publishableKey string
}

func NewStripeProvider(secretKey, publishableKey string) *StripeProvider {
	sc := &client.API{}
	sc.Init(secretKey, nil)

	return &StripeProvider{
		client:         sc,
		publishableKey: publishableKey,
	}
}

// PublishableKey is handed to the hosted payment page alongside the intent
// client secret.
func (s *StripeProvider) PublishableKey() string {
	return s.publishableKey
}

func (s *StripeProvider) CreateIntent(ctx context.Context, request *IntentRequest) (*IntentResponse, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(request.AmountMinor),
		Currency: stripe.String(request.Currency),
	}
	params.Context = ctx

	if request.Description != "" {
		params.Description = stripe.String(request.Description)
	}
	for key, value := range request.Metadata {
		params.AddMetadata(key, value)
	}

	pi, err := s.client.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &IntentResponse{
		IntentRef:    pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       IntentStatus(pi.Status),
		AmountMinor:  pi.Amount,
		Currency:     string(pi.Currency),
		CreatedAt:    pi.Created,
	}, nil
}

func (s *StripeProvider) GetIntentStatus(ctx context.Context, intentRef string) (IntentStatus, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := s.client.PaymentIntents.Get(intentRef, params)
	if err != nil {
		return "", fmt.Errorf("failed to retrieve payment intent: %w", err)
	}

	return IntentStatus(pi.Status), nil
}

func (s *StripeProvider) RefundIntent(ctx context.Context, request *RefundRequest) (*RefundResponse, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(request.IntentRef),
	}
	params.Context = ctx

	if request.Reason != "" {
		params.Reason = stripe.String(request.Reason)
	}

	refund, err := s.client.Refunds.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create refund: %w", err)
	}

	return &RefundResponse{
		RefundID:    refund.ID,
		Status:      string(refund.Status),
		AmountMinor: refund.Amount,
		Currency:    string(refund.Currency),
		CreatedAt:   refund.Created,
	}, nil
}
