package models

// Action names a capability exposed in the UI and API.
type Action string

const (
	ActionViewDashboard     Action = "view_dashboard"
	ActionViewViolations    Action = "view_violations"
	ActionRegisterViolation Action = "register_violation"
	ActionRecordPayment     Action = "record_payment"
	ActionViewAnalytics     Action = "view_analytics"
	ActionManageUsers       Action = "manage_users"
)

// VisibleActions returns the capabilities available to a role. Templates and
// navigation are driven from this set rather than from checks scattered
// through handlers.
func VisibleActions(role Role) []Action {
	switch role {
	case RoleAdmin:
		return []Action{
			ActionViewDashboard,
			ActionViewViolations,
			ActionRegisterViolation,
			ActionRecordPayment,
			ActionViewAnalytics,
			ActionManageUsers,
		}
	case RoleOfficer:
		return []Action{
			ActionViewDashboard,
			ActionViewViolations,
			ActionRegisterViolation,
			ActionRecordPayment,
		}
	case RoleCitizen:
		return []Action{
			ActionViewDashboard,
			ActionViewViolations,
		}
	default:
		return nil
	}
}

// Can reports whether a role includes the given capability.
func Can(role Role, action Action) bool {
	for _, a := range VisibleActions(role) {
		if a == action {
			return true
		}
	}
	return false
}
