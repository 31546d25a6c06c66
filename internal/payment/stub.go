package payment

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/stpnv0/mari-gunting/internal/service/ports"
)

// DeclineToken is a source id the stub always rejects.
const DeclineToken = "tokn_test_decline"

type stubHold struct {
	amount   domain.Money
	captured bool
	voided   bool
	refunded domain.Money
}

// StubProvider is an in-memory provider for local runs and demos. Repeated
// Authorize calls with the same reference return the same hold.
type StubProvider struct {
	mu    sync.Mutex
	refs  map[string]string
	holds map[string]*stubHold
}

func NewStubProvider() *StubProvider {
	return &StubProvider{
		refs:  make(map[string]string),
		holds: make(map[string]*stubHold),
	}
}

func (p *StubProvider) Authorize(_ context.Context, req ports.AuthorizeRequest) (string, error) {
	if req.SourceID == DeclineToken {
		return "", fmt.Errorf("%w: card declined", domain.ErrPaymentDeclined)
	}
	if req.Amount <= 0 {
		return "", fmt.Errorf("%w: invalid amount %s", domain.ErrPaymentDeclined, req.Amount)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if id, ok := p.refs[req.Reference]; ok {
		return id, nil
	}
	id := "chrg_stub_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	p.refs[req.Reference] = id
	p.holds[id] = &stubHold{amount: req.Amount}
	return id, nil
}

func (p *StubProvider) Capture(_ context.Context, holdID string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	h, ok := p.holds[holdID]
	if !ok || h.voided {
		return "", fmt.Errorf("%w: hold %s is not capturable", domain.ErrPaymentDeclined, holdID)
	}
	h.captured = true
	return holdID, nil
}

func (p *StubProvider) Void(_ context.Context, holdID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	h, ok := p.holds[holdID]
	if !ok || h.captured {
		return fmt.Errorf("%w: hold %s cannot be voided", domain.ErrPaymentDeclined, holdID)
	}
	h.voided = true
	return nil
}

func (p *StubProvider) Refund(_ context.Context, chargeID string, amount domain.Money) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	h, ok := p.holds[chargeID]
	if !ok || !h.captured {
		return "", fmt.Errorf("%w: charge %s was never captured", domain.ErrPaymentDeclined, chargeID)
	}
	if h.refunded+amount > h.amount {
		return "", fmt.Errorf("%w: refund exceeds captured amount", domain.ErrPaymentDeclined)
	}
	h.refunded += amount
	return "rfnd_stub_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12], nil
}
