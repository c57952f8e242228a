// Package notify carries booking lifecycle events to the outside world.
// Delivery is best-effort: a failed notification is logged and swallowed,
// never surfaced as a booking-operation failure.
package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type BookingCreated struct {
	BookingID    uuid.UUID
	ResourceName string
	UserEmail    string
	Date         string
	StartTime    string
	EndTime      string
}

type BookingCancelled struct {
	BookingID    uuid.UUID
	ResourceName string
	UserEmail    string
	Date         string
	StartTime    string
}

// Notifier is the delivery backend (email, chat, SMS, ...). The engine only
// ever talks to it through the Dispatcher.
type Notifier interface {
	BookingCreated(ctx context.Context, ev BookingCreated) error
	BookingCancelled(ctx context.Context, ev BookingCancelled) error
}

// LogNotifier writes events to the structured log. It stands in for real
// delivery, which belongs to an external collaborator.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) BookingCreated(_ context.Context, ev BookingCreated) error {
	n.logger.Info("booking created",
		"booking_id", ev.BookingID,
		"resource", ev.ResourceName,
		"user", ev.UserEmail,
		"date", ev.Date,
		"start", ev.StartTime,
		"end", ev.EndTime,
	)
	return nil
}

func (n *LogNotifier) BookingCancelled(_ context.Context, ev BookingCancelled) error {
	n.logger.Info("booking cancelled",
		"booking_id", ev.BookingID,
		"resource", ev.ResourceName,
		"user", ev.UserEmail,
		"date", ev.Date,
		"start", ev.StartTime,
	)
	return nil
}
