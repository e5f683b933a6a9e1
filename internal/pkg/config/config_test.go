//go:build unit

package config_test

import (
	"testing"

	"dh-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "memory store needs no database", mutate: func(c *config.Config) {}},
		{
			name: "postgres with credentials",
			mutate: func(c *config.Config) {
				c.Store.Driver = config.StoreDriverPostgres
			},
		},
		{
			name: "postgres without database name",
			mutate: func(c *config.Config) {
				c.Store.Driver = config.StoreDriverPostgres
				c.DB.DBName = ""
			},
			wantErr: "DB_NAME",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *config.Config) { c.Store.Driver = "sqlite" },
			wantErr: "unsupported STORE_DRIVER",
		},
		{
			name:    "non-positive horizon",
			mutate:  func(c *config.Config) { c.Booking.HorizonMonths = 0 },
			wantErr: "AVAILABILITY_HORIZON_MONTHS",
		},
		{
			name:    "unknown time zone",
			mutate:  func(c *config.Config) { c.Booking.TimeZone = "Mars/Olympus" },
			wantErr: "BOOKING_TIMEZONE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("BOOKING_TIMEZONE", "Asia/Tokyo")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 12, cfg.Booking.HorizonMonths)
	assert.False(t, cfg.Cache.Enabled())

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}

func TestBuildDSN(t *testing.T) {
	db := config.DBConfig{
		Host: "db", Port: "5432", User: "app", Password: "secret",
		DBName: "booking", SSLMode: "disable", TimeZone: "UTC",
	}
	assert.Equal(t, "postgres://app:secret@db:5432/booking?sslmode=disable&timezone=UTC", db.BuildDSN())
}
