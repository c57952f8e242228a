package shared

import (
	"booking-system/internal/domain/user"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of a usecase. Ownership and
// privilege checks are preconditions the booking engine enforces here, on
// identity the transport layer has already established.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

func (a Actor) CanAccessBookingOf(ownerID uuid.UUID) bool {
	return a.IsAdmin() || a.UserID == ownerID
}
