package bootstrap

import (
	"dh-booking/cmd/bootstrap/components"
	"dh-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// Module assembles the application; STORE_DRIVER picks the persistence.
func Module(cfg config.Config) fx.Option {
	persistence := fx.Options(DBModule, components.PostgresPersistenceModule)
	if cfg.Store.Driver == config.StoreDriverMemory {
		persistence = components.MemoryPersistenceModule
	}

	return fx.Options(
		fx.Supply(cfg),
		ConfigModule,
		LoggerModule,
		CacheModule,
		persistence,
		components.UseCaseModule,
		components.HandlerModule,
	)
}
