package admin

import (
	"errors"
	"fmt"
	"log"

	"github.com/mehraj28/Payroll-Mangement/app/database"
	"github.com/mehraj28/Payroll-Mangement/app/models"
	"github.com/mehraj28/Payroll-Mangement/app/services"

	"github.com/gofiber/fiber/v2"
)

// Handler owns the admin route group's dependencies.
type Handler struct {
	Store    *database.Store
	Notifier services.Notifier
	Renderer *services.PayslipRenderer
}

func NewHandler(store *database.Store, notifier services.Notifier, renderer *services.PayslipRenderer) *Handler {
	return &Handler{Store: store, Notifier: notifier, Renderer: renderer}
}

func (h *Handler) CreateSalarySlipAPI(c *fiber.Ctx) error {
	var in database.SalarySlipInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	slip, err := h.Store.CreateSalarySlip(in)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, database.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "employee not found"})
		default:
			log.Printf("create salary slip: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
		}
	}

	// Best effort: slip creation stands even if the notice is lost.
	if employee, err := h.Store.GetUserByID(slip.EmployeeID); err == nil {
		if err := h.Notifier.Notify(employee.Email,
			"New Salary Slip Created",
			fmt.Sprintf("A salary slip for %s has been created.", slip.Month)); err != nil {
			log.Printf("notify slip created: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(slip)
}

func (h *Handler) UpdateSalarySlipAPI(c *fiber.Ctx) error {
	var in database.SalarySlipInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	slip, err := h.Store.UpdateSalarySlip(c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, database.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "salary slip not found"})
		default:
			log.Printf("update salary slip: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
		}
	}
	return c.JSON(slip)
}

func (h *Handler) PendingExpensesAPI(c *fiber.Ctx) error {
	expenses, err := h.Store.ListPendingExpenses()
	if err != nil {
		log.Printf("list pending expenses: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
	}
	return c.JSON(expenses)
}

// ExpenseActionAPI applies an approve/reject decision. The action is
// validated before any storage access.
func (h *Handler) ExpenseActionAPI(c *fiber.Ctx) error {
	var status models.ExpenseStatus
	switch c.Query("action") {
	case "approve":
		status = models.ExpenseApproved
	case "reject":
		status = models.ExpenseRejected
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "action must be 'approve' or 'reject'"})
	}
	comment := c.Query("comment")

	exp, err := h.Store.DecideExpense(c.Params("id"), status, comment)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "expense not found"})
		case errors.Is(err, database.ErrAlreadyDecided):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "expense already decided"})
		case errors.Is(err, database.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			log.Printf("decide expense: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
		}
	}

	if employee, err := h.Store.GetUserByID(exp.EmployeeID); err == nil {
		if err := h.Notifier.Notify(employee.Email,
			fmt.Sprintf("Expense %s", exp.Status),
			fmt.Sprintf("Your expense %s has been %s. Comment: %s", exp.ID, exp.Status, comment)); err != nil {
			log.Printf("notify expense decided: %v", err)
		}
	}

	return c.JSON(exp)
}

func (h *Handler) SalarySlipPDFAPI(c *fiber.Ctx) error {
	slip, err := h.Store.GetSalarySlip(c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "salary slip not found"})
		}
		log.Printf("get salary slip: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
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

func (h *Handler) EmployeesAPI(c *fiber.Ctx) error {
	users, err := h.Store.ListUsers()
	if err != nil {
		log.Printf("list users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
	}
	return c.JSON(users)
}
