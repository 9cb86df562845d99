package models

import "testing"

func TestVisibleActions(t *testing.T) {
	tests := []struct {
		role Role
		want []Action
	}{
		{RoleAdmin, []Action{
			ActionViewDashboard, ActionViewViolations, ActionRegisterViolation,
			ActionRecordPayment, ActionViewAnalytics, ActionManageUsers,
		}},
		{RoleOfficer, []Action{
			ActionViewDashboard, ActionViewViolations, ActionRegisterViolation,
			ActionRecordPayment,
		}},
		{RoleCitizen, []Action{ActionViewDashboard, ActionViewViolations}},
		{Role("ghost"), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			got := VisibleActions(tt.role)
			if len(got) != len(tt.want) {
				t.Fatalf("VisibleActions(%s) returned %d actions, want %d", tt.role, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("VisibleActions(%s)[%d] = %s, want %s", tt.role, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCan(t *testing.T) {
	tests := []struct {
		role   Role
		action Action
		want   bool
	}{
		{RoleAdmin, ActionManageUsers, true},
		{RoleOfficer, ActionRegisterViolation, true},
		{RoleOfficer, ActionViewAnalytics, false},
		{RoleOfficer, ActionManageUsers, false},
		{RoleCitizen, ActionViewViolations, true},
		{RoleCitizen, ActionRegisterViolation, false},
		{RoleCitizen, ActionRecordPayment, false},
	}

	for _, tt := range tests {
		if got := Can(tt.role, tt.action); got != tt.want {
			t.Errorf("Can(%s, %s) = %v, want %v", tt.role, tt.action, got, tt.want)
		}
	}
}

func TestEnumValidation(t *testing.T) {
	if !StatusDisputed.IsValid() {
		t.Error("disputed should be a valid status")
	}
	if ViolationStatus("cancelled").IsValid() {
		t.Error("cancelled should not be a valid status")
	}
	if !MethodCheque.IsValid() {
		t.Error("cheque should be a valid payment method")
	}
	if PaymentMethod("barter").IsValid() {
		t.Error("barter should not be a valid payment method")
	}
	if !RoleOfficer.IsValid() {
		t.Error("officer should be a valid role")
	}
	if Role("root").IsValid() {
		t.Error("root should not be a valid role")
	}
}
