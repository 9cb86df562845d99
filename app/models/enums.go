package models

// ViolationStatus defines the payment status of a violation.
type ViolationStatus string

const (
	StatusUnpaid   ViolationStatus = "unpaid"
	StatusPaid     ViolationStatus = "paid"
	StatusDisputed ViolationStatus = "disputed"
)

// ValidStatuses lists every status accepted by the violations table.
var ValidStatuses = []ViolationStatus{StatusUnpaid, StatusPaid, StatusDisputed}

// IsValid reports whether s is a known violation status.
func (s ViolationStatus) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// PaymentMethod defines how a fine was settled.
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodCard   PaymentMethod = "card"
	MethodOnline PaymentMethod = "online"
	MethodCheque PaymentMethod = "cheque"
)

// ValidPaymentMethods lists every accepted payment method.
var ValidPaymentMethods = []PaymentMethod{MethodCash, MethodCard, MethodOnline, MethodCheque}

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	for _, v := range ValidPaymentMethods {
		if m == v {
			return true
		}
	}
	return false
}

// Role defines the access level of a user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleOfficer Role = "officer"
	RoleCitizen Role = "citizen"
)

// ValidRoles lists every role accepted by the users table.
var ValidRoles = []Role{RoleAdmin, RoleOfficer, RoleCitizen}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}
