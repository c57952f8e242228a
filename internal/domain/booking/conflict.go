package booking

import "github.com/google/uuid"

// BookingSlot pairs an active booking's identity with its interval, the
// minimum a conflict scan needs.
type BookingSlot struct {
	BookingID uuid.UUID
	Slot      TimeSlot
}

// FindConflict scans active slots for one overlapping the candidate and
// returns the first hit, or nil. Pass excludeID to skip the booking being
// updated so it never conflicts with itself.
func FindConflict(candidate TimeSlot, active []BookingSlot, excludeID uuid.UUID) *BookingSlot {
	for i := range active {
		if active[i].BookingID == excludeID {
			continue
		}
		if candidate.Overlaps(active[i].Slot) {
			hit := active[i]
			return &hit
		}
	}
	return nil
}
