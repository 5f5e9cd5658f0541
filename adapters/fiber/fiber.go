// Package fiber exposes the simulated backend over HTTP, so frontends
// and tools built against a REST surface can develop against the same
// rules the real server enforces.
package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/freementors/sdk-go/gateway/mock"
)

type Adapter struct {
	app     *fiber.App
	backend *mock.Backend
}

func New(app *fiber.App, backend *mock.Backend) *Adapter {
	return &Adapter{app: app, backend: backend}
}

func (a *Adapter) RegisterRoutes(basePath string) {
	api := a.app.Group(basePath)

	// Public routes
	api.Post("/auth/signup", a.signup)
	api.Post("/auth/login", a.login)
	api.Get("/mentors", a.mentors)
	api.Get("/mentors/:id", a.mentorByID)
	api.Get("/mentors/:id/reviews", a.mentorReviews)

	// Authenticated routes; the backend enforces roles
	api.Get("/me", a.me)
	api.Get("/users", a.users)
	api.Patch("/users/:id/mentor", a.changeToMentor)
	api.Get("/sessions", a.sessions)
	api.Post("/sessions", a.createSession)
	api.Patch("/sessions/:id/status", a.updateSessionStatus)
	api.Get("/reviews", a.allReviews)
	api.Post("/reviews", a.createReview)
	api.Patch("/reviews/:id/visibility", a.setReviewVisibility)
}
