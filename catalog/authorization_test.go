package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
)

func Test_IsPrivileged_And_IsProtected(t *testing.T) {
	testCases := []struct {
		name       string
		account    catalog.StaffAccount
		privileged bool
		protected  bool
	}{
		{name: "regular user", account: catalog.StaffAccount{}, privileged: false, protected: false},
		{name: "staff", account: catalog.StaffAccount{IsStaff: true}, privileged: true, protected: false},
		{name: "superuser", account: catalog.StaffAccount{IsSuperuser: true}, privileged: true, protected: true},
		{name: "staff superuser", account: catalog.StaffAccount{IsStaff: true, IsSuperuser: true}, privileged: true, protected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.privileged, catalog.IsPrivileged(tc.account))
			assert.Equal(t, tc.protected, catalog.IsProtected(tc.account))
		})
	}
}

func Test_RequirePrivilege(t *testing.T) {
	assert.NoError(t, catalog.RequirePrivilege(catalog.StaffAccount{IsStaff: true}))
	assert.NoError(t, catalog.RequirePrivilege(catalog.StaffAccount{IsSuperuser: true}))
	assert.ErrorIs(t, catalog.RequirePrivilege(catalog.StaffAccount{IsActive: true}), catalog.ErrInsufficientPrivilege)
}
