package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"coursepulse/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(registerDBLifecycle),
)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}

// registerDBLifecycle closes the connection pool when the app shuts down.
func registerDBLifecycle(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
}
