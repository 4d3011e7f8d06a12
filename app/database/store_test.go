package database

import (
	"testing"
	"time"

	"github.com/mehraj28/Payroll-Mangement/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// StoreTestSuite runs every store test against a fresh in-memory database.
type StoreTestSuite struct {
	suite.Suite
	store *Store
}

func (s *StoreTestSuite) SetupTest() {
	store, err := Open(":memory:")
	require.NoError(s.T(), err, "failed to open test database")
	s.store = store
}

func (s *StoreTestSuite) TearDownTest() {
	if s.store != nil {
		s.store.Close()
	}
}

func (s *StoreTestSuite) createUser(email string, role models.Role) *models.User {
	user, err := s.store.CreateUser(email, "fake-hash", "", role)
	require.NoError(s.T(), err)
	return user
}

func (s *StoreTestSuite) TestCreateUserDefaultsRole() {
	user, err := s.store.CreateUser("jane@example.com", "fake-hash", "Jane Doe", "")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.RoleEmployee, user.Role)
	assert.NotEmpty(s.T(), user.ID)
	assert.False(s.T(), user.CreatedAt.IsZero())
}

func (s *StoreTestSuite) TestCreateUserNormalizesEmail() {
	user, err := s.store.CreateUser("Jane@Example.COM", "fake-hash", "", models.RoleEmployee)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "jane@example.com", user.Email)

	found, err := s.store.GetUserByEmail("JANE@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), user.ID, found.ID)
}

func (s *StoreTestSuite) TestCreateUserDuplicateEmail() {
	s.createUser("jane@example.com", models.RoleEmployee)

	_, err := s.store.CreateUser("Jane@Example.com", "fake-hash", "", models.RoleEmployee)
	assert.ErrorIs(s.T(), err, ErrEmailTaken)

	users, err := s.store.ListUsers()
	require.NoError(s.T(), err)
	assert.Len(s.T(), users, 1, "conflict must not create a second record")
}

func (s *StoreTestSuite) TestCreateUserUnknownRole() {
	_, err := s.store.CreateUser("jane@example.com", "fake-hash", "", "manager")
	assert.ErrorIs(s.T(), err, ErrInvalidInput)
}

func (s *StoreTestSuite) TestGetUserByEmailNotFound() {
	_, err := s.store.GetUserByEmail("nobody@example.com")
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *StoreTestSuite) TestCreateSalarySlipComputesNetPay() {
	user := s.createUser("jane@example.com", models.RoleEmployee)

	slip, err := s.store.CreateSalarySlip(SalarySlipInput{
		EmployeeID: user.ID,
		Month:      "2024-05",
		Basic:      50000,
		Allowances: 5000,
		Deductions: 1250.50,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 50000+5000-1250.50, slip.NetPay)
}

func (s *StoreTestSuite) TestUpdateSalarySlipRecomputesNetPay() {
	user := s.createUser("jane@example.com", models.RoleEmployee)
	slip, err := s.store.CreateSalarySlip(SalarySlipInput{
		EmployeeID: user.ID,
		Month:      "2024-05",
		Basic:      1000,
	})
	require.NoError(s.T(), err)

	updated, err := s.store.UpdateSalarySlip(slip.ID, SalarySlipInput{
		EmployeeID: user.ID,
		Month:      "2024-06",
		Basic:      2000,
		Allowances: 300,
		Deductions: 100,
		Notes:      "revised",
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 2200.0, updated.NetPay)
	assert.Equal(s.T(), "2024-06", updated.Month)
	assert.Equal(s.T(), "revised", updated.Notes)

	stored, err := s.store.GetSalarySlip(slip.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 2200.0, stored.NetPay)
}

func (s *StoreTestSuite) TestUpdateSalarySlipNotFound() {
	_, err := s.store.UpdateSalarySlip("missing", SalarySlipInput{Month: "2024-05"})
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *StoreTestSuite) TestCreateSalarySlipValidation() {
	user := s.createUser("jane@example.com", models.RoleEmployee)

	_, err := s.store.CreateSalarySlip(SalarySlipInput{EmployeeID: user.ID})
	assert.ErrorIs(s.T(), err, ErrInvalidInput, "month is required")

	_, err = s.store.CreateSalarySlip(SalarySlipInput{
		EmployeeID: user.ID,
		Month:      "2024-05",
		Deductions: -5,
	})
	assert.ErrorIs(s.T(), err, ErrInvalidInput)

	_, err = s.store.CreateSalarySlip(SalarySlipInput{
		EmployeeID: "missing",
		Month:      "2024-05",
	})
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *StoreTestSuite) TestListSalarySlipsNewestFirst() {
	user := s.createUser("jane@example.com", models.RoleEmployee)

	for _, month := range []string{"2024-03", "2024-04", "2024-05"} {
		_, err := s.store.CreateSalarySlip(SalarySlipInput{
			EmployeeID: user.ID,
			Month:      month,
			Basic:      1000,
		})
		require.NoError(s.T(), err)
		time.Sleep(2 * time.Millisecond)
	}

	slips, err := s.store.ListSalarySlipsFor(user.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), slips, 3)
	assert.Equal(s.T(), "2024-05", slips[0].Month)
	assert.Equal(s.T(), "2024-03", slips[2].Month)
}

func (s *StoreTestSuite) TestCreateExpenseStartsPending() {
	user := s.createUser("jane@example.com", models.RoleEmployee)

	exp, err := s.store.CreateExpense(user.ID, ExpenseInput{
		Category: "Travel",
		Amount:   120.50,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.ExpensePending, exp.Status)
	assert.False(s.T(), exp.Date.IsZero())
}

func (s *StoreTestSuite) TestCreateExpenseValidation() {
	user := s.createUser("jane@example.com", models.RoleEmployee)

	_, err := s.store.CreateExpense(user.ID, ExpenseInput{Category: "Travel", Amount: 0})
	assert.ErrorIs(s.T(), err, ErrInvalidInput)

	_, err = s.store.CreateExpense(user.ID, ExpenseInput{Amount: 10})
	assert.ErrorIs(s.T(), err, ErrInvalidInput)

	_, err = s.store.CreateExpense("missing", ExpenseInput{Category: "Travel", Amount: 10})
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *StoreTestSuite) TestListExpensesNewestFirst() {
	user := s.createUser("jane@example.com", models.RoleEmployee)

	for _, category := range []string{"Travel", "Meals", "Supplies"} {
		_, err := s.store.CreateExpense(user.ID, ExpenseInput{Category: category, Amount: 10})
		require.NoError(s.T(), err)
		time.Sleep(2 * time.Millisecond)
	}

	expenses, err := s.store.ListExpensesFor(user.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), expenses, 3)
	assert.Equal(s.T(), "Supplies", expenses[0].Category)
	assert.Equal(s.T(), "Travel", expenses[2].Category)
}

func (s *StoreTestSuite) TestListPendingExpensesAcrossEmployees() {
	jane := s.createUser("jane@example.com", models.RoleEmployee)
	john := s.createUser("john@example.com", models.RoleEmployee)

	first, err := s.store.CreateExpense(jane.ID, ExpenseInput{Category: "Travel", Amount: 10})
	require.NoError(s.T(), err)
	_, err = s.store.CreateExpense(john.ID, ExpenseInput{Category: "Meals", Amount: 20})
	require.NoError(s.T(), err)

	_, err = s.store.DecideExpense(first.ID, models.ExpenseApproved, "")
	require.NoError(s.T(), err)

	pending, err := s.store.ListPendingExpenses()
	require.NoError(s.T(), err)
	require.Len(s.T(), pending, 1)
	assert.Equal(s.T(), john.ID, pending[0].EmployeeID)
}

func (s *StoreTestSuite) TestDecideExpense() {
	user := s.createUser("jane@example.com", models.RoleEmployee)
	exp, err := s.store.CreateExpense(user.ID, ExpenseInput{Category: "Travel", Amount: 120.50})
	require.NoError(s.T(), err)

	decided, err := s.store.DecideExpense(exp.ID, models.ExpenseApproved, "ok")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.ExpenseApproved, decided.Status)
	assert.Equal(s.T(), "ok", decided.AdminComment)

	// A decision is terminal.
	_, err = s.store.DecideExpense(exp.ID, models.ExpenseRejected, "changed my mind")
	assert.ErrorIs(s.T(), err, ErrAlreadyDecided)

	stored, err := s.store.GetExpense(exp.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.ExpenseApproved, stored.Status)
	assert.Equal(s.T(), "ok", stored.AdminComment)
}

func (s *StoreTestSuite) TestDecideExpenseInvalidStatus() {
	user := s.createUser("jane@example.com", models.RoleEmployee)
	exp, err := s.store.CreateExpense(user.ID, ExpenseInput{Category: "Travel", Amount: 10})
	require.NoError(s.T(), err)

	_, err = s.store.DecideExpense(exp.ID, models.ExpensePending, "")
	assert.ErrorIs(s.T(), err, ErrInvalidInput)

	stored, err := s.store.GetExpense(exp.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.ExpensePending, stored.Status, "failed decision must not mutate the record")
}

func (s *StoreTestSuite) TestDecideExpenseNotFound() {
	_, err := s.store.DecideExpense("missing", models.ExpenseApproved, "")
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
