package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/stpnv0/mari-gunting/internal/pricing"
	"github.com/stpnv0/mari-gunting/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type Config struct {
	ExpiryWindow      time.Duration
	AutoConfirmWindow time.Duration
	ConflictRetries   int
	RateLimit         int
	RateWindow        time.Duration
	MinDisputeReason  int
	SettlementGrace   time.Duration
	PaymentRetry      retry.Strategy
}

func DefaultConfig() Config {
	return Config{
		ExpiryWindow:      3 * time.Minute,
		AutoConfirmWindow: 2 * time.Hour,
		ConflictRetries:   5,
		RateLimit:         10,
		RateWindow:        time.Minute,
		MinDisputeReason:  10,
		SettlementGrace:   time.Minute,
		PaymentRetry: retry.Strategy{
			Attempts: 4,
			Delay:    200 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type BookingService struct {
	repo       ports.BookingRepo
	calculator *pricing.Calculator
	payments   ports.PaymentProvider
	distance   ports.DistanceProvider
	deadlines  ports.DeadlineScheduler
	publisher  ports.ChangePublisher
	alerter    ports.AdminAlerter
	clock      clockwork.Clock
	validate   *validator.Validate
	tracer     trace.Tracer
	cfg        Config
	logger     logger.Logger
}

func NewBookingService(
	repo ports.BookingRepo,
	calculator *pricing.Calculator,
	payments ports.PaymentProvider,
	distance ports.DistanceProvider,
	deadlines ports.DeadlineScheduler,
	publisher ports.ChangePublisher,
	alerter ports.AdminAlerter,
	clock clockwork.Clock,
	cfg Config,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		repo:       repo,
		calculator: calculator,
		payments:   payments,
		distance:   distance,
		deadlines:  deadlines,
		publisher:  publisher,
		alerter:    alerter,
		clock:      clock,
		validate:   validator.New(),
		tracer:     otel.Tracer("github.com/stpnv0/mari-gunting/internal/service"),
		cfg:        cfg,
		logger:     logger,
	}
}

func (s *BookingService) now() time.Time {
	return s.clock.Now().UTC()
}

func (s *BookingService) CreateBooking(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error) {
	ctx, span := s.tracer.Start(ctx, "booking.Create")
	defer span.End()

	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := s.now()

	// Ограничение частоты создания броней на клиента
	n, err := s.repo.CountCreatedSince(ctx, in.CustomerID, now.Add(-s.cfg.RateWindow))
	if err != nil {
		return nil, fmt.Errorf("count recent bookings: %w", err)
	}
	if n >= s.cfg.RateLimit {
		return nil, domain.ErrRateLimited
	}

	var distanceKm float64
	if in.ServiceType == domain.ServiceTypeHome {
		distanceKm, err = s.distance.DistanceKm(ctx, *in.PartnerLocation, in.Address.Location)
		if err != nil {
			return nil, fmt.Errorf("resolve distance: %w", err)
		}
	}

	quote, err := s.calculator.Quote(in.Services, in.ServiceType, distanceKm)
	if err != nil {
		return nil, fmt.Errorf("quote booking: %w", err)
	}

	id := uuid.New().String()
	b := &domain.Booking{
		ID:              id,
		BookingNumber:   "MG-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8]),
		Version:         1,
		Status:          domain.BookingStatusPending,
		ServiceType:     in.ServiceType,
		Services:        append([]domain.Service(nil), in.Services...),
		CustomerID:      in.CustomerID,
		BarberID:        in.BarberID,
		ShopID:          in.ShopID,
		Address:         in.Address,
		DistanceKm:      distanceKm,
		Subtotal:        quote.Subtotal,
		TravelFee:       quote.TravelFee,
		PlatformFee:     quote.PlatformFee,
		TotalPrice:      quote.Total,
		CommissionRate:  quote.CommissionRate,
		Commission:      quote.Commission,
		PartnerEarnings: quote.PartnerEarnings,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   domain.PaymentStatusPending,
		PaymentSourceID: in.PaymentSourceID,
		ScheduledAt:     in.ScheduledAt,
		CreatedAt:       now,
		UpdatedAt:       now,
		EvidencePhotos:  domain.EvidencePhotos{Before: []string{}, After: []string{}},
	}
	if err = b.Validate(); err != nil {
		return nil, err
	}

	if err = s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	span.SetAttributes(attribute.String("booking.id", b.ID))
	s.logger.Info("booking created",
		logger.String("booking_id", b.ID),
		logger.String("booking_number", b.BookingNumber),
		logger.String("customer_id", b.CustomerID),
		logger.String("barber_id", b.BarberID),
		logger.String("total", b.TotalPrice.String()),
	)

	s.scheduleExpiry(b)
	s.publisher.Publish(ctx, domain.NewBookingEvent(b))

	return b, nil
}

func (s *BookingService) GetBookingByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

func (s *BookingService) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *BookingService) ListByPartner(ctx context.Context, partnerID string) ([]*domain.Booking, error) {
	return s.repo.ListByPartner(ctx, partnerID)
}

func (s *BookingService) ConfirmServiceCompletion(ctx context.Context, bookingID, customerID string) (*domain.Booking, error) {
	actor := domain.Actor{Role: domain.RoleCustomer, ID: customerID}
	return s.ApplyTransition(ctx, bookingID, actor, domain.TargetConfirmed, domain.TransitionPayload{})
}

// ConfirmCashPayment records that the partner collected cash. Repeated calls are no-ops.
func (s *BookingService) ConfirmCashPayment(ctx context.Context, bookingID, partnerID string) (*domain.Booking, error) {
	actor := domain.Actor{Role: domain.RolePartner, ID: partnerID}

	b, _, err := s.update(ctx, bookingID, func(b *domain.Booking) (bool, error) {
		if err := checkOwnership(b, actor); err != nil {
			return false, err
		}
		if b.PaymentMethod != domain.PaymentMethodCash {
			return false, fmt.Errorf("%w: booking is paid by %s, not cash", domain.ErrValidation, b.PaymentMethod)
		}
		if b.PaymentStatus == domain.PaymentStatusCompleted {
			return false, nil
		}
		switch b.Status {
		case domain.BookingStatusArrived, domain.BookingStatusInProgress, domain.BookingStatusCompleted:
		default:
			return false, fmt.Errorf("%w: cannot collect cash on a %s booking", domain.ErrInvalidTransition, b.Status)
		}
		now := s.now()
		b.PaymentStatus = domain.PaymentStatusCompleted
		b.PaidAt = &now
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("cash payment confirmed",
		logger.String("booking_id", bookingID),
		logger.String("partner_id", partnerID),
	)
	return b, nil
}

// AttachEvidence records before/after photo URLs uploaded by the partner.
func (s *BookingService) AttachEvidence(ctx context.Context, bookingID, partnerID string, before, after []string) (*domain.Booking, error) {
	for _, u := range append(append([]string(nil), before...), after...) {
		if err := s.validate.Var(u, "required,url"); err != nil {
			return nil, fmt.Errorf("%w: invalid photo url %q", domain.ErrValidation, u)
		}
	}
	if len(before)+len(after) == 0 {
		return nil, fmt.Errorf("%w: no photos given", domain.ErrValidation)
	}

	actor := domain.Actor{Role: domain.RolePartner, ID: partnerID}
	b, _, err := s.update(ctx, bookingID, func(b *domain.Booking) (bool, error) {
		if err := checkOwnership(b, actor); err != nil {
			return false, err
		}
		switch b.Status {
		case domain.BookingStatusArrived, domain.BookingStatusInProgress, domain.BookingStatusCompleted:
		default:
			return false, fmt.Errorf("%w: evidence not accepted on a %s booking", domain.ErrInvalidTransition, b.Status)
		}
		if b.IsTerminal() {
			return false, fmt.Errorf("%w: booking is closed", domain.ErrInvalidTransition)
		}
		b.EvidencePhotos.Before = append(b.EvidencePhotos.Before, before...)
		b.EvidencePhotos.After = append(b.EvidencePhotos.After, after...)
		return true, nil
	})
	return b, err
}

// update re-reads the booking and applies fn until the version CAS succeeds.
// fn reports false when the booking already has the desired shape.
func (s *BookingService) update(
	ctx context.Context,
	id string,
	fn func(b *domain.Booking) (bool, error),
) (*domain.Booking, bool, error) {
	for attempt := 0; attempt < s.cfg.ConflictRetries; attempt++ {
		cur, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, false, fmt.Errorf("get booking: %w", err)
		}

		next := cur.Clone()
		changed, err := fn(next)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return cur, false, nil
		}

		err = s.commit(ctx, cur, next)
		if errors.Is(err, domain.ErrConflict) {
			s.logger.Debug("booking version conflict, retrying",
				logger.String("booking_id", id),
				logger.Int("attempt", attempt+1),
			)
			continue
		}
		if err != nil {
			return nil, false, err
		}
		return next, true, nil
	}

	return nil, false, fmt.Errorf("booking %s: %w", id, domain.ErrConflict)
}

func (s *BookingService) commit(ctx context.Context, cur, next *domain.Booking) error {
	next.Version = cur.Version + 1
	next.UpdatedAt = s.now()

	if err := next.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, next, cur.Version); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return err
		}
		return fmt.Errorf("update booking: %w", err)
	}

	s.publisher.Publish(ctx, domain.NewBookingEvent(next))
	return nil
}

func checkOwnership(b *domain.Booking, actor domain.Actor) error {
	switch actor.Role {
	case domain.RoleCustomer:
		if b.CustomerID != actor.ID {
			return domain.ErrForbidden
		}
	case domain.RolePartner:
		if b.BarberID != actor.ID {
			return domain.ErrForbidden
		}
	case domain.RoleSystem, domain.RoleAdmin:
	default:
		return domain.ErrForbidden
	}
	return nil
}
