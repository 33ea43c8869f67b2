package zoom

import "fmt"

// Zoom user types.
const (
	UserTypeBasic    = 1
	UserTypeLicensed = 2
	UserTypeOnPrem   = 3
)

// UserTypeLabel returns the display label for a Zoom user type.
func UserTypeLabel(userType int) string {
	switch userType {
	case UserTypeBasic:
		return "Basic"
	case UserTypeLicensed:
		return "Licensed"
	case UserTypeOnPrem:
		return "On-Prem"
	default:
		return fmt.Sprintf("Unknown (%d)", userType)
	}
}
