package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mehraj28/Payroll-Mangement/app/models"

	"github.com/google/uuid"
)

// SalarySlipInput carries the caller-settable fields of a slip. Net pay is
// never part of the input; the store derives it.
type SalarySlipInput struct {
	EmployeeID string  `json:"employee_id"`
	Month      string  `json:"month"`
	Basic      float64 `json:"basic"`
	Allowances float64 `json:"allowances"`
	Deductions float64 `json:"deductions"`
	Notes      string  `json:"notes"`
}

func (in *SalarySlipInput) validate() error {
	if in.Month == "" {
		return fmt.Errorf("%w: month is required", ErrInvalidInput)
	}
	if in.Basic < 0 || in.Allowances < 0 || in.Deductions < 0 {
		return fmt.Errorf("%w: monetary values must not be negative", ErrInvalidInput)
	}
	return nil
}

func netPay(basic, allowances, deductions float64) float64 {
	return basic + allowances - deductions
}

// CreateSalarySlip validates the input, checks the employee exists,
// computes net pay and persists the slip.
func (s *Store) CreateSalarySlip(in SalarySlipInput) (*models.SalarySlip, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.GetUserByID(in.EmployeeID); err != nil {
		return nil, err
	}

	slip := &models.SalarySlip{
		ID:         uuid.NewString(),
		EmployeeID: in.EmployeeID,
		Month:      in.Month,
		Basic:      in.Basic,
		Allowances: in.Allowances,
		Deductions: in.Deductions,
		NetPay:     netPay(in.Basic, in.Allowances, in.Deductions),
		Notes:      in.Notes,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO salary_slips (id, employee_id, month, basic, allowances, deductions, net_pay, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		slip.ID, slip.EmployeeID, slip.Month, slip.Basic, slip.Allowances,
		slip.Deductions, slip.NetPay, slip.Notes, slip.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return slip, nil
}

// UpdateSalarySlip replaces the month, monetary fields and notes of an
// existing slip and recomputes net pay. The employee reference is fixed at
// creation and not updatable.
func (s *Store) UpdateSalarySlip(id string, in SalarySlipInput) (*models.SalarySlip, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	slip, err := s.GetSalarySlip(id)
	if err != nil {
		return nil, err
	}

	slip.Month = in.Month
	slip.Basic = in.Basic
	slip.Allowances = in.Allowances
	slip.Deductions = in.Deductions
	slip.NetPay = netPay(in.Basic, in.Allowances, in.Deductions)
	slip.Notes = in.Notes

	_, err = s.db.Exec(
		`UPDATE salary_slips SET month = $1, basic = $2, allowances = $3, deductions = $4, net_pay = $5, notes = $6
		 WHERE id = $7`,
		slip.Month, slip.Basic, slip.Allowances, slip.Deductions, slip.NetPay, slip.Notes, slip.ID,
	)
	if err != nil {
		return nil, err
	}
	return slip, nil
}

// GetSalarySlip returns the slip with the given id.
func (s *Store) GetSalarySlip(id string) (*models.SalarySlip, error) {
	row := s.db.QueryRow(
		`SELECT id, employee_id, month, basic, allowances, deductions, net_pay, notes, created_at
		 FROM salary_slips WHERE id = $1`, id)

	var slip models.SalarySlip
	err := row.Scan(&slip.ID, &slip.EmployeeID, &slip.Month, &slip.Basic,
		&slip.Allowances, &slip.Deductions, &slip.NetPay, &slip.Notes, &slip.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &slip, nil
}

// ListSalarySlipsFor returns an employee's slips, newest created first.
func (s *Store) ListSalarySlipsFor(employeeID string) ([]*models.SalarySlip, error) {
	rows, err := s.db.Query(
		`SELECT id, employee_id, month, basic, allowances, deductions, net_pay, notes, created_at
		 FROM salary_slips WHERE employee_id = $1 ORDER BY created_at DESC`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slips := []*models.SalarySlip{}
	for rows.Next() {
		var slip models.SalarySlip
		if err := rows.Scan(&slip.ID, &slip.EmployeeID, &slip.Month, &slip.Basic,
			&slip.Allowances, &slip.Deductions, &slip.NetPay, &slip.Notes, &slip.CreatedAt); err != nil {
			return nil, err
		}
		slips = append(slips, &slip)
	}
	return slips, rows.Err()
}
