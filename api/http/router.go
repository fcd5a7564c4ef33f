package http

import (
	"github.com/gofiber/fiber/v2"

	"employer-hub/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, emp *handlers.EmployerHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	api := app.Group("/api")

	api.Post("/register", auth.Register)
	api.Post("/login", auth.Login)
	api.Get("/verifyToken", authMW, auth.VerifyToken)

	api.Post("/addEmployer", authMW, emp.Add)
	api.Get("/getEmployer", authMW, emp.Get)
	api.Get("/getAllEmployers", authMW, emp.List)
	api.Put("/updateEmployer", authMW, emp.Update)
	api.Delete("/deleteEmployer", authMW, emp.Delete)
}
