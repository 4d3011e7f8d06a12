package employee

import (
	"github.com/mehraj28/Payroll-Mangement/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupEmployeeRoutes(app *fiber.App, h *Handler, authH *auth.Handler) {
	group := app.Group("/employee")
	group.Use(authH.Middleware)

	group.Get("/salary-slip", h.SalarySlipsAPI)
	group.Get("/salary-slip/:id/pdf", h.SalarySlipPDFAPI)
	group.Post("/expense", h.CreateExpenseAPI)
	group.Get("/expense", h.ExpensesAPI)
}
