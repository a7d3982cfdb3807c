package router

import (
	"cowork/internal/handlers/auth"
	"cowork/internal/handlers/booking"
	"cowork/internal/handlers/coupon"
	"cowork/internal/handlers/enquiry"
	"cowork/internal/handlers/location"
	"cowork/internal/handlers/profile"
	"cowork/internal/handlers/requirement"
	"cowork/internal/handlers/savedworkspace"
	"cowork/internal/handlers/serviceoption"
	"cowork/internal/handlers/sitecontent"
	"cowork/internal/handlers/user"
	"cowork/internal/handlers/workspace"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth           auth.Handler
	User           user.Handler
	Profile        profile.Handler
	Workspace      workspace.Handler
	ServiceOption  serviceoption.Handler
	Location       location.Handler
	SiteContent    sitecontent.Handler
	Coupon         coupon.Handler
	Booking        booking.Handler
	Enquiry        enquiry.Handler
	Requirement    requirement.Handler
	SavedWorkspace savedworkspace.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Profile.Router(routerGroup)
		r.DomainHandlers.Workspace.Router(routerGroup)
		r.DomainHandlers.ServiceOption.Router(routerGroup)
		r.DomainHandlers.Location.Router(routerGroup)
		r.DomainHandlers.SiteContent.Router(routerGroup)
		r.DomainHandlers.Coupon.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Enquiry.Router(routerGroup)
		r.DomainHandlers.Requirement.Router(routerGroup)
		r.DomainHandlers.SavedWorkspace.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
