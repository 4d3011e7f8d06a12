package admin

import (
	"github.com/mehraj28/Payroll-Mangement/app/models"
	"github.com/mehraj28/Payroll-Mangement/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App, h *Handler, authH *auth.Handler) {
	group := app.Group("/admin")
	group.Use(authH.Middleware)
	group.Use(auth.RequireRole(models.RoleAdmin))

	group.Post("/salary-slip", h.CreateSalarySlipAPI)
	group.Put("/salary-slip/:id", h.UpdateSalarySlipAPI)
	group.Get("/salary-slip/:id/pdf", h.SalarySlipPDFAPI)
	group.Get("/expenses/pending", h.PendingExpensesAPI)
	group.Post("/expenses/:id/action", h.ExpenseActionAPI)
	group.Get("/employees", h.EmployeesAPI)
}
