package models

// Role defines the possible roles a user can hold.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleAdmin
}

// ExpenseStatus defines the possible status values for an expense claim.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpenseRejected ExpenseStatus = "rejected"
)

// Decided reports whether the status is a terminal admin decision.
func (s ExpenseStatus) Decided() bool {
	return s == ExpenseApproved || s == ExpenseRejected
}
