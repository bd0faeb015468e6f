package repotest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
	"github.com/AntonStoeckl/library-admin-rpc/testutil/helper"
)

// RunStaffAccountRepositoryTests runs the staff account repository suite against repositories built by newRepo.
func RunStaffAccountRepositoryTests(t *testing.T, newRepo func(t *testing.T) catalog.StaffAccountRepository) {
	t.Run("Create then Get and GetByUsername return the stored account", func(t *testing.T) {
		// setup
		ctx := context.Background()
		accounts := newRepo(t)

		// arrange
		account := helper.FixtureStaffAccount(t, "alice", true, false)

		// act
		err := accounts.Create(ctx, account)

		// assert
		require.NoError(t, err)

		byID, err := accounts.Get(ctx, account.ID)
		require.NoError(t, err)
		assertSameStaffAccount(t, account, byID)

		byName, err := accounts.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assertSameStaffAccount(t, account, byName)
	})

	t.Run("Create with a taken username is a conflict", func(t *testing.T) {
		// setup
		ctx := context.Background()
		accounts := newRepo(t)

		// arrange
		helper.GivenStaffAccountWasCreated(t, ctx, accounts, helper.FixtureStaffAccount(t, "alice", true, false))

		// act
		err := accounts.Create(ctx, helper.FixtureStaffAccount(t, "alice", false, false))

		// assert
		assert.ErrorIs(t, err, catalog.ErrConflict)
	})

	t.Run("Get and GetByUsername with unknown keys are not found", func(t *testing.T) {
		ctx := context.Background()
		accounts := newRepo(t)

		_, err := accounts.Get(ctx, helper.GivenUniqueID(t))
		assert.ErrorIs(t, err, catalog.ErrNotFound)

		_, err = accounts.GetByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("ListPrivileged yields staff and superusers ordered by id", func(t *testing.T) {
		// setup
		ctx := context.Background()
		accounts := newRepo(t)

		// arrange
		staff := helper.GivenStaffAccountWasCreated(t, ctx, accounts, helper.FixtureStaffAccount(t, "alice", true, false))
		helper.GivenStaffAccountWasCreated(t, ctx, accounts, helper.FixtureStaffAccount(t, "bob", false, false))
		admin := helper.GivenStaffAccountWasCreated(t, ctx, accounts, helper.FixtureStaffAccount(t, "carol", false, true))
		both := helper.GivenStaffAccountWasCreated(t, ctx, accounts, helper.FixtureStaffAccount(t, "dave", true, true))

		// act
		listed := helper.Collect(t, accounts.ListPrivileged(ctx))

		// assert
		require.Len(t, listed, 3)
		assertSameStaffAccount(t, staff, listed[0])
		assertSameStaffAccount(t, admin, listed[1])
		assertSameStaffAccount(t, both, listed[2])
	})

	t.Run("DeleteUnprotected removes a regular account", func(t *testing.T) {
		// setup
		ctx := context.Background()
		accounts := newRepo(t)

		// arrange
		account := helper.GivenStaffAccountWasCreated(t, ctx, accounts, helper.FixtureStaffAccount(t, "alice", true, false))

		// act
		deleted, err := accounts.DeleteUnprotected(ctx, account.ID)

		// assert
		require.NoError(t, err)
		assert.True(t, deleted)
		_, err = accounts.Get(ctx, account.ID)
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("DeleteUnprotected keeps a superuser", func(t *testing.T) {
		// setup
		ctx := context.Background()
		accounts := newRepo(t)

		// arrange
		admin := helper.GivenStaffAccountWasCreated(t, ctx, accounts, helper.FixtureStaffAccount(t, "root", true, true))

		// act
		deleted, err := accounts.DeleteUnprotected(ctx, admin.ID)

		// assert
		require.NoError(t, err)
		assert.False(t, deleted)
		found, err := accounts.Get(ctx, admin.ID)
		require.NoError(t, err)
		assertSameStaffAccount(t, admin, found)
	})

	t.Run("DeleteUnprotected with an unknown id deletes nothing", func(t *testing.T) {
		accounts := newRepo(t)

		deleted, err := accounts.DeleteUnprotected(context.Background(), helper.GivenUniqueID(t))

		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func assertSameStaffAccount(t *testing.T, expected, actual catalog.StaffAccount) {
	t.Helper()

	assert.True(t, expected.DateJoined.Equal(actual.DateJoined), "date joined differs: %v != %v", expected.DateJoined, actual.DateJoined)

	actual.DateJoined = expected.DateJoined
	assert.Equal(t, expected, actual)
}
