package bootstrap

import (
	"log/slog"

	"booking-system/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

func NewConfig() (config.Config, error) {
	// ローカル開発用。.env が無い環境では環境変数のみで動く
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables only")
	}
	return config.LoadConfig()
}
