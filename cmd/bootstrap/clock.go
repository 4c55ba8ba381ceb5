package bootstrap

import (
	"field-reservation/internal/pkg/clock"
	"field-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		NewClock,
	),
)

func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.App.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewRealClockIn(loc), nil
}
