package bootstrap

import (
	"courtbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	SweeperModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
