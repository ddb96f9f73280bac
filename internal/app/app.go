// Package app assembles repositories and services for the configured store.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/config"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/business"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/invoice"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/location"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/repository/sqlite"
	businessService "github.com/cmlabs-hris/timetracker-backend-go/internal/service/business"
	invoiceService "github.com/cmlabs-hris/timetracker-backend-go/internal/service/invoice"
	locationService "github.com/cmlabs-hris/timetracker-backend-go/internal/service/location"
	timeEntryService "github.com/cmlabs-hris/timetracker-backend-go/internal/service/timeentry"
)

// Repositories is the persistence layer of one store.
type Repositories struct {
	Tx        database.Transactor
	Locations location.LocationRepository
	Entries   timeentry.TimeEntryRepository
	Profile   business.ProfileRepository
}

// App holds the services shared by the HTTP server and the CLI.
type App struct {
	Locations location.LocationService
	Entries   timeentry.EntryService
	Lifecycle timeentry.LifecycleService
	Invoices  invoice.InvoiceService
	Business  business.BusinessService

	close func()
}

// New builds the services on top of repos.
func New(repos Repositories) *App {
	return &App{
		Locations: locationService.NewLocationService(repos.Tx, repos.Locations, repos.Entries),
		Entries:   timeEntryService.NewEntryService(repos.Tx, repos.Entries, repos.Locations),
		Lifecycle: timeEntryService.NewLifecycleService(repos.Tx, repos.Entries),
		Invoices:  invoiceService.NewInvoiceService(repos.Locations, repos.Entries, repos.Profile),
		Business:  businessService.NewBusinessService(repos.Profile),
		close:     func() {},
	}
}

// Open connects to the store selected by cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		slog.Debug("Using SQLite store", "path", cfg.Storage.SQLitePath)

		a := New(SQLiteRepositories(db))
		a.close = func() { db.Close() }
		return a, nil

	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		slog.Debug("Using PostgreSQL store", "host", cfg.Database.Host, "database", cfg.Database.Name)

		a := New(PostgresRepositories(db))
		a.close = db.Close
		return a, nil
	}

	return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
}

func SQLiteRepositories(db *database.SQLiteDB) Repositories {
	return Repositories{
		Tx:        sqlite.NewTransactor(db),
		Locations: sqlite.NewLocationRepository(db),
		Entries:   sqlite.NewTimeEntryRepository(db),
		Profile:   sqlite.NewProfileRepository(db),
	}
}

func PostgresRepositories(db *database.DB) Repositories {
	return Repositories{
		Tx:        postgresql.NewTransactor(db),
		Locations: postgresql.NewLocationRepository(db),
		Entries:   postgresql.NewTimeEntryRepository(db),
		Profile:   postgresql.NewProfileRepository(db),
	}
}

// Close releases the store connection.
func (a *App) Close() {
	a.close()
}
