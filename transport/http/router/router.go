package router

import (
	"trimly/internal/handlers/admin"
	"trimly/internal/handlers/auth"
	"trimly/internal/handlers/barber"
	"trimly/internal/handlers/booking"
	"trimly/internal/handlers/customer"
	"trimly/internal/handlers/notification"
	"trimly/internal/handlers/shop"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Shop         shop.Handler
	Customer     customer.Handler
	Booking      booking.Handler
	Barber       barber.Handler
	Admin        admin.Handler
	Notification notification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Shop.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Barber.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
