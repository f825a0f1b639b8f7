package checkout

import (
	"context"

	"ecommerce-backoffice/internal/domain"
	customerrepo "ecommerce-backoffice/internal/repository/customer"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
)

// Service is a thin proxy around the Stripe Checkout Session API. It only
// creates sessions; confirmation and webhooks are handled by Stripe-hosted
// pages and are out of scope here.
type Service struct {
	customers customerrepo.Repository
}

// New creates a Service and configures the Stripe client key.
func New(customers customerrepo.Repository, secretKey string) *Service {
	stripe.Key = secretKey
	return &Service{customers: customers}
}

// LineItem is one purchasable line of a checkout session.
type LineItem struct {
	Name       string `json:"name"`
	AmountCent int64  `json:"amountCent"`
	Currency   string `json:"currency"`
	Quantity   int64  `json:"quantity"`
}

// Input carries the fields accepted when creating a checkout session.
type Input struct {
	CustomerID int64      `json:"customerId"`
	LineItems  []LineItem `json:"lineItems"`
	SuccessURL string     `json:"successUrl"`
	CancelURL  string     `json:"cancelUrl"`
}

// Session is the subset of the Stripe session returned to the caller.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateSession creates a Stripe Checkout Session for an existing customer,
// prefilled with the customer's email.
func (s *Service) CreateSession(ctx context.Context, in Input) (*Session, error) {
	if len(in.LineItems) == 0 {
		return nil, domain.ValidationError{Field: "lineItems", Reason: "required"}
	}
	if in.SuccessURL == "" || in.CancelURL == "" {
		return nil, domain.ValidationError{Field: "successUrl", Reason: "successUrl and cancelUrl are required"}
	}

	cust, err := s.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}

	lines := make([]*stripe.CheckoutSessionLineItemParams, 0, len(in.LineItems))
	for _, li := range in.LineItems {
		if li.Quantity <= 0 || li.AmountCent <= 0 || li.Name == "" || li.Currency == "" {
			return nil, domain.ValidationError{Field: "lineItems", Reason: "each line needs name, currency, a positive amount and quantity"}
		}
		lines = append(lines, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(li.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(li.Currency),
				UnitAmount: stripe.Int64(li.AmountCent),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(li.Name),
				},
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(cust.Email),
		LineItems:     lines,
		SuccessURL:    stripe.String(in.SuccessURL),
		CancelURL:     stripe.String(in.CancelURL),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return nil, err
	}
	return &Session{ID: sess.ID, URL: sess.URL}, nil
}
