package dto

import (
	"time"

	"github.com/stpnv0/mari-gunting/internal/domain"
)

type CreateBookingRequest struct {
	BarberID        string           `json:"barber_id" binding:"required"`
	ServiceType     string           `json:"service_type" binding:"required,oneof=home_service walk_in"`
	Services        []domain.Service `json:"services" binding:"required,min=1,dive"`
	Address         *domain.Address  `json:"address"`
	ShopID          *string          `json:"shop_id"`
	PartnerLocation *domain.Location `json:"partner_location"`
	ScheduledAt     *time.Time       `json:"scheduled_at"`
	PaymentMethod   string           `json:"payment_method" binding:"required"`
	PaymentSourceID string           `json:"payment_source_id"`
}

func (r CreateBookingRequest) ToInput(customerID string) domain.CreateBookingInput {
	return domain.CreateBookingInput{
		CustomerID:      customerID,
		BarberID:        r.BarberID,
		ServiceType:     domain.ServiceType(r.ServiceType),
		Services:        r.Services,
		Address:         r.Address,
		ShopID:          r.ShopID,
		PartnerLocation: r.PartnerLocation,
		ScheduledAt:     r.ScheduledAt,
		PaymentMethod:   domain.PaymentMethod(r.PaymentMethod),
		PaymentSourceID: r.PaymentSourceID,
	}
}

type TransitionRequest struct {
	Status          string `json:"status" binding:"required"`
	Reason          string `json:"reason"`
	Resolution      string `json:"resolution"`
	ExpectedVersion *int64 `json:"expected_version"`
}

type ReportIssueRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type EvidenceRequest struct {
	Before []string `json:"before" binding:"omitempty,dive,url"`
	After  []string `json:"after" binding:"omitempty,dive,url"`
}

type ResolveDisputeRequest struct {
	Favor string `json:"favor" binding:"required,oneof=customer partner"`
}
