package bootstrap

import (
	"booking-system/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.NotifyModule,
	components.UseCaseModule,
	components.HandlerModule,
)
