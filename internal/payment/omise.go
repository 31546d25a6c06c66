package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/stpnv0/mari-gunting/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const idempotencyHeader = "Idempotency-Key"

// OmiseProvider places holds as uncaptured Omise charges and settles them
// with capture, reverse and refund.
type OmiseProvider struct {
	client   *omise.Client
	currency string
	logger   logger.Logger
}

func NewOmiseProvider(publicKey, secretKey, currency string, logger logger.Logger) (*OmiseProvider, error) {
	c, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("create omise client: %w", err)
	}

	return &OmiseProvider{client: c, currency: currency, logger: logger}, nil
}

// call returns a copy of the client bound to ctx and keyed so that a retried
// request replays the first response instead of creating a second object.
// WithContext and WithCustomHeaders mutate the client, the shared one stays untouched.
func (p *OmiseProvider) call(ctx context.Context, key string) *omise.Client {
	c := *p.client
	c.WithContext(ctx)
	c.WithCustomHeaders(map[string]string{idempotencyHeader: key})
	return &c
}

// Authorize is keyed by booking, so a retry after a lost response returns the same hold.
func (p *OmiseProvider) Authorize(ctx context.Context, req ports.AuthorizeRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	op := &operations.CreateCharge{
		Amount:      int64(req.Amount),
		Currency:    p.currency,
		DontCapture: true,
		Description: "booking " + req.Reference,
		Metadata:    map[string]interface{}{"booking_id": req.Reference},
	}
	switch req.Method {
	case domain.PaymentMethodCard:
		op.Card = req.SourceID
	case domain.PaymentMethodFPX:
		op.Source = req.SourceID
	default:
		return "", fmt.Errorf("%w: method %s has no provider hold", domain.ErrPaymentDeclined, req.Method)
	}

	ch := &omise.Charge{}
	if err := p.call(ctx, req.Reference+":authorize").Do(ch, op); err != nil {
		return "", classify(err)
	}

	if ch.Status == omise.ChargeFailed {
		code := ""
		if ch.FailureCode != nil {
			code = *ch.FailureCode
		}
		return "", fmt.Errorf("%w: charge %s failed: %s", domain.ErrPaymentDeclined, ch.ID, code)
	}

	p.logger.Debug("omise hold created",
		logger.String("booking_id", req.Reference),
		logger.String("charge_id", ch.ID),
		logger.String("status", string(ch.Status)),
	)
	return ch.ID, nil
}

// Capture turns the hold into a charge. Omise keeps the same charge id.
func (p *OmiseProvider) Capture(ctx context.Context, holdID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ch := &omise.Charge{}
	if err := p.call(ctx, holdID+":capture").Do(ch, &operations.CaptureCharge{ChargeID: holdID}); err != nil {
		return "", classify(err)
	}
	if !ch.Paid {
		return "", fmt.Errorf("%w: charge %s not paid after capture (status %s)", domain.ErrPaymentDeclined, ch.ID, ch.Status)
	}
	return ch.ID, nil
}

func (p *OmiseProvider) Void(ctx context.Context, holdID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ch := &omise.Charge{}
	if err := p.call(ctx, holdID+":void").Do(ch, &operations.ReverseCharge{ChargeID: holdID}); err != nil {
		return classify(err)
	}
	return nil
}

// Refund is keyed by charge; a booking is refunded at most once.
func (p *OmiseProvider) Refund(ctx context.Context, chargeID string, amount domain.Money) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	refund := &omise.Refund{}
	op := &operations.CreateRefund{ChargeID: chargeID, Amount: int64(amount)}
	if err := p.call(ctx, chargeID+":refund").Do(refund, op); err != nil {
		return "", classify(err)
	}
	return refund.ID, nil
}

// classify maps Omise API rejections to ErrPaymentDeclined. Rate limits,
// key conflicts, server errors and transport failures stay transient.
func classify(err error) error {
	var apiErr *omise.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests,
			apiErr.StatusCode == http.StatusRequestTimeout,
			apiErr.StatusCode == http.StatusConflict,
			apiErr.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("omise %d %s: %w", apiErr.StatusCode, apiErr.Code, err)
		case apiErr.StatusCode >= http.StatusBadRequest:
			return fmt.Errorf("%w: omise %s: %s", domain.ErrPaymentDeclined, apiErr.Code, apiErr.Message)
		}
	}
	return fmt.Errorf("omise: %w", err)
}
