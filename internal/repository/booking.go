package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, booking_number, version, status, service_type, services,
	customer_id, barber_id, shop_id, address,
	distance_km, subtotal, travel_fee, platform_fee, total_price, commission_rate, commission, partner_earnings,
	payment_method, payment_status, payment_source_id, payment_hold_id, payment_charge_id, payment_refund_id,
	scheduled_at, created_at, updated_at, accepted_at, on_the_way_at, arrived_at, started_at, completed_at,
	cancelled_at, rejected_at, expired_at, completion_confirmed_at, disputed_at, dispute_resolved_at, paid_at,
	cancellation_reason, dispute_reason, dispute_resolution, evidence_photos`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args, err := bookingArgs(b)
	if err != nil {
		return err
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			          $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35,
			          $36, $37, $38, $39, $40, $41, $42, $43)`

	if _, err = r.db.Master.ExecContext(ctx, query, args...); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// Update is a compare-and-swap on version; every column is rewritten from the snapshot.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking, expectedVersion int64) error {
	args, err := bookingArgs(b)
	if err != nil {
		return err
	}

	query := `UPDATE bookings SET
				booking_number = $2, version = $3, status = $4, service_type = $5, services = $6,
				customer_id = $7, barber_id = $8, shop_id = $9, address = $10,
				distance_km = $11, subtotal = $12, travel_fee = $13, platform_fee = $14, total_price = $15,
				commission_rate = $16, commission = $17, partner_earnings = $18,
				payment_method = $19, payment_status = $20, payment_source_id = $21, payment_hold_id = $22,
				payment_charge_id = $23, payment_refund_id = $24,
				scheduled_at = $25, created_at = $26, updated_at = $27, accepted_at = $28, on_the_way_at = $29,
				arrived_at = $30, started_at = $31, completed_at = $32, cancelled_at = $33, rejected_at = $34,
				expired_at = $35, completion_confirmed_at = $36, disputed_at = $37, dispute_resolved_at = $38,
				paid_at = $39, cancellation_reason = $40, dispute_reason = $41, dispute_resolution = $42,
				evidence_photos = $43
			  WHERE id = $1 AND version = $44`

	res, err := r.db.Master.ExecContext(ctx, query, append(args, expectedVersion)...)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		// Различаем отсутствие брони и устаревшую версию
		var exists bool
		checkQuery := `SELECT EXISTS(SELECT 1 FROM bookings WHERE id = $1)`
		if err = r.db.Master.QueryRowContext(ctx, checkQuery, b.ID).Scan(&exists); err != nil {
			return fmt.Errorf("check booking: %w", err)
		}
		if !exists {
			return domain.ErrBookingNotFound
		}
		return domain.ErrConflict
	}

	return nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE customer_id = $1
			  ORDER BY created_at DESC`
	return r.list(ctx, "list bookings by customer", query, customerID)
}

func (r *BookingRepository) ListByPartner(ctx context.Context, partnerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE barber_id = $1
			  ORDER BY created_at DESC`
	return r.list(ctx, "list bookings by partner", query, partnerID)
}

func (r *BookingRepository) CountCreatedSince(ctx context.Context, customerID string, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE customer_id = $1 AND created_at >= $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, customerID, since)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return n, nil
}

func (r *BookingRepository) ListPendingCreatedBefore(ctx context.Context, before time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE status = $1 AND created_at <= $2
			  ORDER BY created_at`
	return r.list(ctx, "list overdue pending", query, domain.BookingStatusPending, before)
}

func (r *BookingRepository) ListAwaitingConfirmation(ctx context.Context, completedBefore time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE status = $1
			    AND completed_at <= $2
			    AND completion_confirmed_at IS NULL
			    AND disputed_at IS NULL
			    AND dispute_resolved_at IS NULL
			  ORDER BY completed_at`
	return r.list(ctx, "list awaiting confirmation", query, domain.BookingStatusCompleted, completedBefore)
}

// ListUnsettled selects bookings whose PendingSettlement is not SettleNone.
func (r *BookingRepository) ListUnsettled(ctx context.Context, updatedBefore time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE updated_at < $1
			    AND payment_method <> $2
			    AND (
			      payment_status = $3
			      OR ((status = ANY($4) OR dispute_resolution = $5) AND payment_status = ANY($6))
			      OR (completion_confirmed_at IS NOT NULL AND disputed_at IS NULL
			          AND COALESCE(dispute_resolution, '') <> $5
			          AND (payment_status = $7 OR (payment_status = $8 AND payment_method = ANY($9))))
			      OR (status = $10 AND payment_status = $8 AND payment_method = ANY($11))
			    )
			  ORDER BY updated_at`

	return r.list(ctx, "list unsettled", query,
		updatedBefore,
		domain.PaymentMethodCash,
		domain.PaymentStatusRefundPending,
		pq.Array(domain.ClosedStatuses),
		domain.ResolutionCustomer,
		pq.Array([]domain.PaymentStatus{domain.PaymentStatusAuthorized, domain.PaymentStatusCompleted}),
		domain.PaymentStatusAuthorized,
		domain.PaymentStatusPending,
		pq.Array([]domain.PaymentMethod{domain.PaymentMethodEwallet, domain.PaymentMethodCredits}),
		domain.BookingStatusAccepted,
		pq.Array([]domain.PaymentMethod{domain.PaymentMethodCard, domain.PaymentMethodFPX}),
	)
}

func (r *BookingRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b                                  domain.Booking
		services, address, evidence        []byte
		holdID, chargeID, refundID, source sql.NullString
		cancelReason, resolution           sql.NullString
	)

	err := row.Scan(
		&b.ID, &b.BookingNumber, &b.Version, &b.Status, &b.ServiceType, &services,
		&b.CustomerID, &b.BarberID, &b.ShopID, &address,
		&b.DistanceKm, &b.Subtotal, &b.TravelFee, &b.PlatformFee, &b.TotalPrice,
		&b.CommissionRate, &b.Commission, &b.PartnerEarnings,
		&b.PaymentMethod, &b.PaymentStatus, &source, &holdID, &chargeID, &refundID,
		&b.ScheduledAt, &b.CreatedAt, &b.UpdatedAt, &b.AcceptedAt, &b.OnTheWayAt, &b.ArrivedAt,
		&b.StartedAt, &b.CompletedAt, &b.CancelledAt, &b.RejectedAt, &b.ExpiredAt,
		&b.CompletionConfirmedAt, &b.DisputedAt, &b.DisputeResolvedAt, &b.PaidAt,
		&cancelReason, &b.DisputeReason, &resolution, &evidence,
	)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(services, &b.Services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	if len(address) > 0 {
		b.Address = &domain.Address{}
		if err = json.Unmarshal(address, b.Address); err != nil {
			return nil, fmt.Errorf("decode address: %w", err)
		}
	}
	if len(evidence) > 0 {
		if err = json.Unmarshal(evidence, &b.EvidencePhotos); err != nil {
			return nil, fmt.Errorf("decode evidence photos: %w", err)
		}
	}

	b.PaymentSourceID = source.String
	b.PaymentHoldID = holdID.String
	b.PaymentChargeID = chargeID.String
	b.PaymentRefundID = refundID.String
	b.CancellationReason = cancelReason.String
	b.DisputeResolution = domain.DisputeResolution(resolution.String)

	return &b, nil
}

func bookingArgs(b *domain.Booking) ([]any, error) {
	services, err := json.Marshal(b.Services)
	if err != nil {
		return nil, fmt.Errorf("encode services: %w", err)
	}
	evidence, err := json.Marshal(b.EvidencePhotos)
	if err != nil {
		return nil, fmt.Errorf("encode evidence photos: %w", err)
	}
	var address []byte
	if b.Address != nil {
		if address, err = json.Marshal(b.Address); err != nil {
			return nil, fmt.Errorf("encode address: %w", err)
		}
	}

	return []any{
		b.ID, b.BookingNumber, b.Version, b.Status, b.ServiceType, services,
		b.CustomerID, b.BarberID, b.ShopID, address,
		b.DistanceKm, b.Subtotal, b.TravelFee, b.PlatformFee, b.TotalPrice,
		b.CommissionRate, b.Commission, b.PartnerEarnings,
		b.PaymentMethod, b.PaymentStatus, nullString(b.PaymentSourceID), nullString(b.PaymentHoldID),
		nullString(b.PaymentChargeID), nullString(b.PaymentRefundID),
		b.ScheduledAt, b.CreatedAt, b.UpdatedAt, b.AcceptedAt, b.OnTheWayAt, b.ArrivedAt,
		b.StartedAt, b.CompletedAt, b.CancelledAt, b.RejectedAt, b.ExpiredAt,
		b.CompletionConfirmedAt, b.DisputedAt, b.DisputeResolvedAt, b.PaidAt,
		nullString(b.CancellationReason), b.DisputeReason, nullString(string(b.DisputeResolution)), evidence,
	}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
