package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaultsAndEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("EN_ROUTE_DELAY", "7s")
	t.Setenv("STORAGE_DRIVER", DriverMongo)

	LoadConfig()

	assert.Equal(t, 7*time.Second, AppConfig.EnRouteDelay)
	assert.Equal(t, DriverMongo, AppConfig.StorageDriver)
	assert.Equal(t, 20*time.Minute, AppConfig.ArrivalWindow)
	assert.Equal(t, 24*time.Hour, AppConfig.ChatTTL)
	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.False(t, IsProduction())
}
