package http

import (
	"net/http"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/adapter/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(ph *PropertyHandler, oh *OwnerHandler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeSuccess(w, http.StatusOK, "ok", nil)
	})

	r.Route("/api/properties", func(r chi.Router) {
		r.Get("/", ph.HandleSearch)
		r.Post("/", ph.HandleCreate)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", ph.HandleGetByID)
			r.Put("/", ph.HandleUpdate)
			r.Delete("/", ph.HandleDelete)

			r.Get("/images", ph.HandleListImages)
			r.Post("/images", ph.HandleAddImage)
			r.Post("/images/upload", ph.HandleUploadImage)
			r.Patch("/images/{imageID}", ph.HandlePatchImage)
			r.Delete("/images/{imageID}", ph.HandleDeleteImage)

			r.Get("/traces", ph.HandleListTraces)
			r.Post("/traces", ph.HandleAddTrace)
		})
	})

	r.Route("/api/owners", func(r chi.Router) {
		r.Get("/", oh.HandleList)
		r.Post("/", oh.HandleCreate)
		r.Get("/{id}", oh.HandleGetByID)
		r.Put("/{id}", oh.HandleUpdate)
		r.Delete("/{id}", oh.HandleDelete)
	})

	return r
}
