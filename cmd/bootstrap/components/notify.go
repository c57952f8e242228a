package components

import (
	"booking-system/internal/infra/notify"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		fx.Annotate(
			notify.NewLogNotifier,
			fx.As(new(notify.Notifier)),
		),
		fx.Annotate(
			notify.NewDispatcher,
			fx.As(new(notify.Emitter)),
		),
	),
)
