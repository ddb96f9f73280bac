package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/config"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/location"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tt.db")
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverSQLite, SQLitePath: path}}
	ctx := context.Background()

	a, err := Open(ctx, cfg)
	require.NoError(t, err)
	_, err = a.Locations.Create(ctx, location.CreateLocationRequest{
		FacilityName: "Mercy General",
		ContactName:  "Dana",
		PayRate:      decimal.NewFromInt(20),
		PayRateType:  "Per Hour",
	})
	require.NoError(t, err)
	a.Close()

	// Reopening keeps the data and does not re-run migrations.
	a, err = Open(ctx, cfg)
	require.NoError(t, err)
	defer a.Close()
	all, err := a.Locations.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: "mysql"}})
	assert.Error(t, err)
}
