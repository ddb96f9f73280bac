package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(
	opts RouterOptions,
	locationHandler LocationHandler,
	timeEntryHandler TimeEntryHandler,
	invoiceHandler InvoiceHandler,
	businessHandler BusinessHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/locations", func(r chi.Router) {
			r.Get("/", locationHandler.List)
			r.Post("/", locationHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", locationHandler.Get)
				r.Put("/", locationHandler.Update)
				r.Delete("/", locationHandler.Delete)
			})
		})

		r.Route("/entries", func(r chi.Router) {
			r.Get("/", timeEntryHandler.List)
			r.Post("/", timeEntryHandler.Create)
			r.Delete("/unlocked", timeEntryHandler.DeleteUnlocked)
			r.Get("/stats", timeEntryHandler.Stats)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", timeEntryHandler.Get)
				r.Put("/", timeEntryHandler.Update)
				r.Delete("/", timeEntryHandler.Delete)
				r.Get("/status", timeEntryHandler.Status)
				r.Post("/lock", timeEntryHandler.ToggleLock)
				r.Post("/archive", timeEntryHandler.ToggleArchive)
			})
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", invoiceHandler.Get)
			r.Get("/preview", invoiceHandler.Preview)
			r.Get("/export", invoiceHandler.Export)
		})

		r.Route("/business-profile", func(r chi.Router) {
			r.Get("/", businessHandler.GetProfile)
			r.Put("/", businessHandler.UpdateProfile)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	return r
}
