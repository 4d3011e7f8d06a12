package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mehraj28/Payroll-Mangement/app/models"

	"github.com/google/uuid"
)

// ExpenseInput carries the employee-settable fields of a claim. Status is
// not among them: every claim starts out pending.
type ExpenseInput struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// CreateExpense records a new claim for the given employee with status
// forced to pending and the submission date set server-side.
func (s *Store) CreateExpense(employeeID string, in ExpenseInput) (*models.Expense, error) {
	if in.Category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if _, err := s.GetUserByID(employeeID); err != nil {
		return nil, err
	}

	exp := &models.Expense{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		Date:        time.Now().UTC(),
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
		Status:      models.ExpensePending,
	}

	_, err := s.db.Exec(
		`INSERT INTO expenses (id, employee_id, date, category, amount, description, status, admin_comment)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		exp.ID, exp.EmployeeID, exp.Date, exp.Category, exp.Amount,
		exp.Description, exp.Status, exp.AdminComment,
	)
	if err != nil {
		return nil, err
	}
	return exp, nil
}

// GetExpense returns the claim with the given id.
func (s *Store) GetExpense(id string) (*models.Expense, error) {
	return scanExpense(s.db.QueryRow(
		`SELECT id, employee_id, date, category, amount, description, status, admin_comment
		 FROM expenses WHERE id = $1`, id))
}

// ListExpensesFor returns an employee's claims, newest date first.
func (s *Store) ListExpensesFor(employeeID string) ([]*models.Expense, error) {
	return s.queryExpenses(
		`SELECT id, employee_id, date, category, amount, description, status, admin_comment
		 FROM expenses WHERE employee_id = $1 ORDER BY date DESC`, employeeID)
}

// ListPendingExpenses returns all undecided claims across employees,
// newest date first.
func (s *Store) ListPendingExpenses() ([]*models.Expense, error) {
	return s.queryExpenses(
		`SELECT id, employee_id, date, category, amount, description, status, admin_comment
		 FROM expenses WHERE status = $1 ORDER BY date DESC`, models.ExpensePending)
}

// DecideExpense applies an admin decision. Only pending claims can be
// decided, and only to approved or rejected; the comment is attached as
// part of the same decision.
func (s *Store) DecideExpense(id string, status models.ExpenseStatus, comment string) (*models.Expense, error) {
	if !status.Decided() {
		return nil, fmt.Errorf("%w: status must be approved or rejected", ErrInvalidInput)
	}

	exp, err := s.GetExpense(id)
	if err != nil {
		return nil, err
	}
	if exp.Status != models.ExpensePending {
		return nil, ErrAlreadyDecided
	}

	exp.Status = status
	if comment != "" {
		exp.AdminComment = comment
	}

	_, err = s.db.Exec(
		`UPDATE expenses SET status = $1, admin_comment = $2 WHERE id = $3`,
		exp.Status, exp.AdminComment, exp.ID,
	)
	if err != nil {
		return nil, err
	}
	return exp, nil
}

func (s *Store) queryExpenses(query string, args ...interface{}) ([]*models.Expense, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Date, &e.Category, &e.Amount,
			&e.Description, &e.Status, &e.AdminComment); err != nil {
			return nil, err
		}
		expenses = append(expenses, &e)
	}
	return expenses, rows.Err()
}

func scanExpense(row *sql.Row) (*models.Expense, error) {
	var e models.Expense
	err := row.Scan(&e.ID, &e.EmployeeID, &e.Date, &e.Category, &e.Amount,
		&e.Description, &e.Status, &e.AdminComment)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
