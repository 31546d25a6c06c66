package domain

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RolePartner  Role = "partner"
	RoleSystem   Role = "system"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(s)); r {
	case RoleCustomer, RolePartner, RoleSystem, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
}

// Actor identifies who issues a command. System actors carry no ownership.
type Actor struct {
	Role Role
	ID   string
}

var SystemActor = Actor{Role: RoleSystem, ID: "system"}

// Target is a requested lifecycle state. Besides the persisted statuses it
// covers the post-completion sub-states.
type Target string

const (
	TargetAccepted   = Target(BookingStatusAccepted)
	TargetOnTheWay   = Target(BookingStatusOnTheWay)
	TargetArrived    = Target(BookingStatusArrived)
	TargetInProgress = Target(BookingStatusInProgress)
	TargetCompleted  = Target(BookingStatusCompleted)
	TargetCancelled  = Target(BookingStatusCancelled)
	TargetRejected   = Target(BookingStatusRejected)
	TargetExpired    = Target(BookingStatusExpired)
	TargetPending    = Target(BookingStatusPending)

	TargetConfirmed Target = "confirmed"
	TargetDisputed  Target = "disputed"
	TargetResolved  Target = "resolved"
)

func ParseTarget(s string) (Target, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch t := Target(norm); t {
	case TargetConfirmed, TargetDisputed, TargetResolved:
		return t, nil
	}
	st, err := ParseBookingStatus(norm)
	if err != nil {
		return "", err
	}
	return Target(st), nil
}

// StateOf maps a booking onto the lifecycle state used by the transition table.
func StateOf(b *Booking) Target {
	if b.Status == BookingStatusCompleted {
		switch {
		case b.IsResolved():
			return TargetResolved
		case b.IsConfirmed():
			return TargetConfirmed
		case b.IsDisputed():
			return TargetDisputed
		}
	}
	return Target(b.Status)
}

type TransitionPayload struct {
	// ExpectedVersion, when set, turns a version mismatch into ErrConflict instead of a retry.
	ExpectedVersion *int64
	Reason          string
	Resolution      DisputeResolution
}
