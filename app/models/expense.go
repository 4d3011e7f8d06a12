package models

import "time"

// Expense is an employee-submitted reimbursement claim.
// Status starts at pending and changes only through an admin decision.
type Expense struct {
	ID           string        `json:"id"`
	EmployeeID   string        `json:"employee_id"`
	Date         time.Time     `json:"date"`
	Category     string        `json:"category"`
	Amount       float64       `json:"amount"`
	Description  string        `json:"description,omitempty"`
	Status       ExpenseStatus `json:"status"`
	AdminComment string        `json:"admin_comment,omitempty"`
}
