package rpcserver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/AntonStoeckl/library-admin-rpc/rpc/librarypb"
	"github.com/AntonStoeckl/library-admin-rpc/testutil/helper"
)

func Test_UserLogin(t *testing.T) {
	// setup
	client, store := givenClient(t)
	accounts := store.StaffAccounts()

	// arrange
	librarian := givenStaffAccountWithPassword(t, accounts, "librarian", "correct horse", true, false, true)
	root := givenStaffAccountWithPassword(t, accounts, "root", "battery staple", false, true, true)
	givenStaffAccountWithPassword(t, accounts, "reader", "reader pass", false, false, true)
	givenStaffAccountWithPassword(t, accounts, "retired", "old pass", true, false, false)

	testCases := []struct {
		name            string
		username        string
		password        string
		expectedSuccess bool
		expectedUserID  string
		expectedMessage string
	}{
		{name: "staff member", username: "librarian", password: "correct horse", expectedSuccess: true, expectedUserID: librarian.ID, expectedMessage: "Welcome, librarian!"},
		{name: "superuser", username: "root", password: "battery staple", expectedSuccess: true, expectedUserID: root.ID, expectedMessage: "Welcome, root!"},
		{name: "unknown user", username: "ghost", password: "x", expectedMessage: "Invalid username or password."},
		{name: "wrong password", username: "librarian", password: "wrong", expectedMessage: "Invalid username or password."},
		{name: "inactive account", username: "retired", password: "old pass", expectedMessage: "Invalid username or password."},
		{name: "without privileges", username: "reader", password: "reader pass", expectedMessage: "Access denied: staff or superuser privileges are required."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result, err := client.UserLogin(context.Background(), &librarypb.LoginRequest{Username: tc.username, Password: tc.password})

			// assert
			require.NoError(t, err, "failed logins are a result, not a status")
			assert.Equal(t, tc.expectedSuccess, result.Success)
			assert.Equal(t, tc.expectedUserID, result.UserID)
			assert.Equal(t, tc.expectedMessage, result.Message)
		})
	}
}

func Test_GetAllUsers_StreamsPrivilegedAccountsByID(t *testing.T) {
	// setup
	ctx := context.Background()
	client, store := givenClient(t)
	accounts := store.StaffAccounts()

	// arrange
	staff := helper.GivenStaffAccountWasCreated(t, ctx, accounts, helper.FixtureStaffAccount(t, "staff", true, false))
	helper.GivenStaffAccountWasCreated(t, ctx, accounts, helper.FixtureStaffAccount(t, "reader", false, false))
	super := helper.GivenStaffAccountWasCreated(t, ctx, accounts, helper.FixtureStaffAccount(t, "super", false, true))

	// act
	stream, err := client.GetAllUsers(ctx, &librarypb.GetAllUsersRequest{})
	require.NoError(t, err)
	users, err := drain(t, stream)

	// assert
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, staff.ID, users[0].ID)
	assert.Equal(t, super.ID, users[1].ID)
	assert.True(t, users[1].IsSuperuser)
	assert.NotEmpty(t, users[0].DateJoined)
}

func Test_GetUserDetail(t *testing.T) {
	// setup
	ctx := context.Background()
	client, store := givenClient(t)

	// arrange
	account := helper.GivenStaffAccountWasCreated(t, ctx, store.StaffAccounts(), helper.FixtureStaffAccount(t, "staff", true, false))

	// act
	user, err := client.GetUserDetail(ctx, &librarypb.GetUserDetailRequest{UserID: account.ID})

	// assert
	require.NoError(t, err)
	assert.Equal(t, librarypb.User{
		ID:          account.ID,
		Username:    "staff",
		Email:       "staff@library.test",
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: false,
		DateJoined:  account.DateJoined.Format("2006-01-02T15:04:05Z07:00"),
	}, *user)

	// act
	_, err = client.GetUserDetail(ctx, &librarypb.GetUserDetailRequest{UserID: helper.GivenUniqueID(t)})

	// assert
	assertStatusCode(t, err, codes.NotFound)
}

func Test_DeleteUser(t *testing.T) {
	// setup
	ctx := context.Background()
	client, store := givenClient(t)
	accounts := store.StaffAccounts()

	// arrange
	staff := helper.GivenStaffAccountWasCreated(t, ctx, accounts, helper.FixtureStaffAccount(t, "staff", true, false))
	super := helper.GivenStaffAccountWasCreated(t, ctx, accounts, helper.FixtureStaffAccount(t, "super", true, true))

	t.Run("superuser is protected", func(t *testing.T) {
		// act
		_, err := client.DeleteUser(ctx, &librarypb.DeleteUserRequest{UserID: super.ID})

		// assert
		assertStatusCode(t, err, codes.PermissionDenied)
		_, err = client.GetUserDetail(ctx, &librarypb.GetUserDetailRequest{UserID: super.ID})
		assert.NoError(t, err, "the superuser must still exist")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := client.DeleteUser(ctx, &librarypb.DeleteUserRequest{UserID: helper.GivenUniqueID(t)})

		assertStatusCode(t, err, codes.NotFound)
	})

	t.Run("staff account", func(t *testing.T) {
		// act
		result, err := client.DeleteUser(ctx, &librarypb.DeleteUserRequest{UserID: staff.ID})

		// assert
		require.NoError(t, err)
		assert.True(t, result.Success)
		_, err = client.GetUserDetail(ctx, &librarypb.GetUserDetailRequest{UserID: staff.ID})
		assertStatusCode(t, err, codes.NotFound)
	})
}
