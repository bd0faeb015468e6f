package catalog

import "time"

// StaffAccount is a credentialed user of the administration application.
//
// PasswordHash holds a bcrypt hash and must never leave the service.
type StaffAccount struct {
	ID           string
	Username     string
	PasswordHash string
	Email        string
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	DateJoined   time.Time
}
