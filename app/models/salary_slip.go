package models

import "time"

// SalarySlip is one employee's payroll record for one pay period.
// NetPay is always derived from the three monetary fields.
type SalarySlip struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Month      string    `json:"month"`
	Basic      float64   `json:"basic"`
	Allowances float64   `json:"allowances"`
	Deductions float64   `json:"deductions"`
	NetPay     float64   `json:"net_pay"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
