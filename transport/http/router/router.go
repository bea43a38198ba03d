package router

import (
	"pitstop/internal/handlers/appointment"
	"pitstop/internal/handlers/auth"
	"pitstop/internal/handlers/catalog"
	"pitstop/internal/handlers/review"
	"pitstop/internal/handlers/stock"
	"pitstop/internal/handlers/user"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pitstop/docs"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Catalog     catalog.Handler
	Appointment appointment.Handler
	Review      review.Handler
	Stock       stock.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Appointment.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Stock.Router(routerGroup)
	})
}

// SetupPublicRoutes mounts the endpoints that never require a bearer token.
func (r *Router) SetupPublicRoutes(router chi.Router) {
	router.Route("/v1/auth", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
	})

	router.Get("/swagger/*", httpSwagger.WrapHandler)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
