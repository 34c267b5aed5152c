package handler

import (
	"github.com/gohire/recruitment-service/internal/recruitment/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(app *fiber.App, h *RecruitmentHandler) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/api/login", h.Login)
	app.Post("/api/createApplicant", h.CreateApplicant)

	// Session checks are attached per route; Group middleware applies to the whole /api prefix.
	app.Get("/api/logout", h.RequireSession(), h.Logout)
	app.Get("/api/who", h.RequireSession(), h.Who)

	recruiterOnly := []fiber.Handler{h.RequireSession(), h.RequireRole(domain.RoleRecruiter)}
	app.Get("/api/applications", append(recruiterOnly, h.ListApplications)...)
	app.Post("/api/changeApplicationStatus", append(recruiterOnly, h.ChangeApplicationStatus)...)
}
