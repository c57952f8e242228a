package notify

import (
	"context"
	"log/slog"
	"time"
)

// Emitter is what the booking commands depend on: fire-and-forget event
// emission with no error return, so notification problems cannot leak into
// the booking result.
type Emitter interface {
	EmitBookingCreated(ev BookingCreated)
	EmitBookingCancelled(ev BookingCancelled)
}

const dispatchTimeout = 10 * time.Second

// Dispatcher hands events to the Notifier on a separate goroutine, outside
// the caller's critical section. Failures are logged, never propagated.
type Dispatcher struct {
	notifier Notifier
	logger   *slog.Logger
}

func NewDispatcher(notifier Notifier, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		logger:   logger,
	}
}

func (d *Dispatcher) EmitBookingCreated(ev BookingCreated) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := d.notifier.BookingCreated(ctx, ev); err != nil {
			d.logger.Warn("failed to deliver booking-created notification",
				"booking_id", ev.BookingID, "error", err.Error())
		}
	}()
}

func (d *Dispatcher) EmitBookingCancelled(ev BookingCancelled) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := d.notifier.BookingCancelled(ctx, ev); err != nil {
			d.logger.Warn("failed to deliver booking-cancelled notification",
				"booking_id", ev.BookingID, "error", err.Error())
		}
	}()
}
