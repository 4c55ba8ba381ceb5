package bootstrap

import (
	"field-reservation/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ClockModule,
	DBModule,
	JWTModule,
	RateLimitModule,
	components.PersistenceModule,
	components.UseCaseModule,
	MessagingModule,
	components.HandlerModule,
)
