package catalog

// IsPrivileged reports whether the account may use the administration service.
// This is the only staff check in the codebase; handlers and stores must use it
// (or mirror it exactly in a query) instead of combining the flags themselves.
func IsPrivileged(account StaffAccount) bool {
	return account.IsStaff || account.IsSuperuser
}

// IsProtected reports whether the account must not be deleted through the service.
func IsProtected(account StaffAccount) bool {
	return account.IsSuperuser
}

// RequirePrivilege returns ErrInsufficientPrivilege for an account that IsPrivileged rejects.
func RequirePrivilege(account StaffAccount) error {
	if !IsPrivileged(account) {
		return ErrInsufficientPrivilege
	}

	return nil
}
