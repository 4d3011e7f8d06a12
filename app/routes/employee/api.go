package employee

import (
	"errors"
	"fmt"
	"log"

	"github.com/mehraj28/Payroll-Mangement/app/database"
	"github.com/mehraj28/Payroll-Mangement/app/routes/auth"
	"github.com/mehraj28/Payroll-Mangement/app/services"

	"github.com/gofiber/fiber/v2"
)

// Handler owns the employee route group's dependencies. AdminEmail is the
// inbox notified when a new claim is submitted.
type Handler struct {
	Store      *database.Store
	Notifier   services.Notifier
	Renderer   *services.PayslipRenderer
	AdminEmail string
}

func NewHandler(store *database.Store, notifier services.Notifier, renderer *services.PayslipRenderer, adminEmail string) *Handler {
	return &Handler{Store: store, Notifier: notifier, Renderer: renderer, AdminEmail: adminEmail}
}

func (h *Handler) SalarySlipsAPI(c *fiber.Ctx) error {
	slips, err := h.Store.ListSalarySlipsFor(auth.UserID(c))
	if err != nil {
		log.Printf("list salary slips: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
	}
	return c.JSON(slips)
}

func (h *Handler) CreateExpenseAPI(c *fiber.Ctx) error {
	var in database.ExpenseInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	user, err := h.Store.GetUserByID(auth.UserID(c))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "could not validate credentials"})
		}
		log.Printf("create expense: lookup user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
	}

	exp, err := h.Store.CreateExpense(user.ID, in)
	if err != nil {
		if errors.Is(err, database.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("create expense: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
	}

	if err := h.Notifier.Notify(h.AdminEmail,
		"New Expense Submitted",
		fmt.Sprintf("%s submitted expense %s of INR %.2f", user.Email, exp.ID, exp.Amount)); err != nil {
		log.Printf("notify expense submitted: %v", err)
	}

	return c.Status(fiber.StatusCreated).JSON(exp)
}

func (h *Handler) ExpensesAPI(c *fiber.Ctx) error {
	expenses, err := h.Store.ListExpensesFor(auth.UserID(c))
	if err != nil {
		log.Printf("list expenses: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
	}
	return c.JSON(expenses)
}

// SalarySlipPDFAPI serves the caller's own payslip. A slip owned by another
// employee is an authorization failure, distinct from a slip that does not
// exist.
func (h *Handler) SalarySlipPDFAPI(c *fiber.Ctx) error {
	slip, err := h.Store.GetSalarySlip(c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "salary slip not found"})
		}
		log.Printf("get salary slip: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
	}

	if slip.EmployeeID != auth.UserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "not your salary slip"})
	}

	employee, err := h.Store.GetUserByID(slip.EmployeeID)
	if err != nil {
		log.Printf("get slip employee: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
	}

	doc, err := h.Renderer.Render(slip, employee)
	if err != nil {
		log.Printf("render payslip: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate document"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=salary_%s.pdf", slip.Month))
	return c.Send(doc)
}
