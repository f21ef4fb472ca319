package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/gastonduartem/MILAN/internal/auth"
	"github.com/gastonduartem/MILAN/internal/config"
	"github.com/gastonduartem/MILAN/internal/handlers"
)

const (
	compressLevel = 5
)

type Middleware interface {
	Handle(h http.Handler) http.Handler
}

type Router struct {
	address string
	router  *chi.Mux
}

func NewRouter(conf *config.ServerConfig, h *handlers.HandlerSet, middlewares ...Middleware) *Router {

	r := chi.NewRouter()

	for _, m := range middlewares {
		r.Use(m.Handle)
	}
	r.Use(middleware.Compress(compressLevel))

	// public
	r.Get("/api/orders", h.HandleGetOrders)
	r.Post("/api/orders", h.HandleCreateOrder)

	r.Post("/api/admin/login", h.HandleLogin)
	r.Post("/api/admin/logout", h.HandleLogout)

	adminMiddleware := &auth.AdminMiddleware{Secret: []byte(conf.Secret)}

	r.Group(func(r chi.Router) {

		r.Use(adminMiddleware.Handle)
		r.Get("/api/admin/orders", h.HandleGetOrders)
		r.Put("/api/admin/orders/{id}", h.HandleUpdateOrder)
		r.Delete("/api/admin/orders/{id}", h.HandleDeleteOrder)
		r.Get("/api/admin/export.xlsx", h.HandleExportOrders)
	})

	return &Router{router: r, address: conf.RunAddress}
}

func (r *Router) ListenAndServe() error {
	err := http.ListenAndServe(r.address, r.router)
	return err
}
