package bootstrap

import (
	"dh-booking/internal/pkg/clock"
	"dh-booking/internal/pkg/config"
	"dh-booking/internal/usecase/commands"
	"dh-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		clock.NewRealClock,
		NewCommandSettings,
		NewAvailabilitySettings,
	),
)

func NewCommandSettings(cfg config.Config) (commands.Settings, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return commands.Settings{}, err
	}
	return commands.Settings{
		Location:            loc,
		NotificationTimeout: cfg.Notification.Timeout,
	}, nil
}

func NewAvailabilitySettings(cfg config.Config) (queries.AvailabilitySettings, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return queries.AvailabilitySettings{}, err
	}
	return queries.AvailabilitySettings{
		Location:      loc,
		HorizonMonths: cfg.Booking.HorizonMonths,
	}, nil
}
