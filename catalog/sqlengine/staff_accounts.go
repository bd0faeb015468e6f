package sqlengine

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
	"github.com/AntonStoeckl/library-admin-rpc/catalog/sqlengine/internal/adapters"
)

const (
	colUsername     = "username"
	colPasswordHash = "password_hash"
	colEmail        = "email"
	colIsActive     = "is_active"
	colIsStaff      = "is_staff"
	colIsSuperuser  = "is_superuser"
	colDateJoined   = "date_joined"
)

const (
	operationStaffCreate        = "staff_accounts.create"
	operationStaffGet           = "staff_accounts.get"
	operationStaffGetByUsername = "staff_accounts.get_by_username"
	operationStaffList          = "staff_accounts.list_privileged"
	operationStaffDelete        = "staff_accounts.delete_unprotected"
)

var staffAccountColumns = []any{
	colID, colUsername, colPasswordHash, colEmail, colIsActive, colIsStaff, colIsSuperuser, colDateJoined,
}

var _ catalog.StaffAccountRepository = (*StaffAccounts)(nil)

// StaffAccounts is the relational catalog.StaffAccountRepository.
type StaffAccounts struct {
	store *Store
}

// Create inserts the account. A taken username is reported as catalog.ErrConflict.
func (r *StaffAccounts) Create(ctx context.Context, account catalog.StaffAccount) error {
	s := r.store

	insertStmt := s.dialect.
		Insert(s.tables.staffAccounts).
		Prepared(true).
		Rows(goqu.Record{
			colID:           account.ID,
			colUsername:     account.Username,
			colPasswordHash: account.PasswordHash,
			colEmail:        account.Email,
			colIsActive:     account.IsActive,
			colIsStaff:      account.IsStaff,
			colIsSuperuser:  account.IsSuperuser,
			colDateJoined:   account.DateJoined.UTC(),
		})

	return s.execOne(ctx, operationStaffCreate, insertStmt)
}

// Get returns the account with the given id or catalog.ErrNotFound.
func (r *StaffAccounts) Get(ctx context.Context, id string) (catalog.StaffAccount, error) {
	return r.getBy(ctx, operationStaffGet, colID, id)
}

// GetByUsername returns the account with the given username or catalog.ErrNotFound.
func (r *StaffAccounts) GetByUsername(ctx context.Context, username string) (catalog.StaffAccount, error) {
	return r.getBy(ctx, operationStaffGetByUsername, colUsername, username)
}

func (r *StaffAccounts) getBy(ctx context.Context, operation, column, value string) (catalog.StaffAccount, error) {
	s := r.store

	selectStmt := s.dialect.
		From(s.tables.staffAccounts).
		Prepared(true).
		Select(staffAccountColumns...).
		Where(goqu.C(column).Eq(value))

	return queryOne(ctx, s, operation, selectStmt, scanStaffAccount)
}

// ListPrivileged yields staff members and superusers ordered by id.
func (r *StaffAccounts) ListPrivileged(ctx context.Context) catalog.Seq[catalog.StaffAccount] {
	s := r.store

	selectStmt := s.dialect.
		From(s.tables.staffAccounts).
		Prepared(true).
		Select(staffAccountColumns...).
		Where(goqu.L("(? OR ?)", goqu.C(colIsStaff), goqu.C(colIsSuperuser))).
		Order(goqu.C(colID).Asc())

	return queryEach(ctx, s, operationStaffList, selectStmt, scanStaffAccount)
}

// DeleteUnprotected deletes the account unless it is a superuser, in a single statement.
// It reports false when no row matched.
func (r *StaffAccounts) DeleteUnprotected(ctx context.Context, id string) (bool, error) {
	s := r.store

	deleteStmt := s.dialect.
		Delete(s.tables.staffAccounts).
		Prepared(true).
		Where(
			goqu.C(colID).Eq(id),
			goqu.L("NOT ?", goqu.C(colIsSuperuser)),
		)

	ctx, observer := s.startOperation(ctx, operationStaffDelete)

	rowsAffected, err := s.exec(ctx, operationStaffDelete, deleteStmt)
	if err != nil {
		observer.finishError(err)
		return false, err
	}

	observer.finishSuccess(int(rowsAffected))

	return rowsAffected > 0, nil
}

func scanStaffAccount(rows adapters.DBRows) (catalog.StaffAccount, error) {
	var account catalog.StaffAccount

	err := rows.Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.Email,
		&account.IsActive,
		&account.IsStaff,
		&account.IsSuperuser,
		&account.DateJoined,
	)

	return account, err
}
