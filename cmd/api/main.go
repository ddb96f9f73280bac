package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/app"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/timetracker-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	log := logger.NewJSON(os.Stdout, cfg.App.LogLevel, cfg.App.Name, cfg.App.Env)
	logger.Install(log, cfg.App.LogLevel)

	a, err := app.Open(context.Background(), cfg)
	if err != nil {
		slog.Error("Error opening store", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer a.Close()

	locationHandler := appHTTP.NewLocationHandler(a.Locations)
	timeEntryHandler := appHTTP.NewTimeEntryHandler(a.Entries, a.Lifecycle)
	invoiceHandler := appHTTP.NewInvoiceHandler(a.Invoices)
	businessHandler := appHTTP.NewBusinessHandler(a.Business)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         log,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		locationHandler,
		timeEntryHandler,
		invoiceHandler,
		businessHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("Server running", "addr", "http://localhost"+port, "driver", cfg.Storage.Driver)
	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("Server error", "error", err)
	}
}
