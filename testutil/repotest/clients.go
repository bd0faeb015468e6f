package repotest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
	"github.com/AntonStoeckl/library-admin-rpc/testutil/helper"
)

// RunClientRepositoryTests runs the client repository suite against repositories built by newRepo.
func RunClientRepositoryTests(t *testing.T, newRepo func(t *testing.T) catalog.ClientRepository) {
	t.Run("Create then Get returns the stored client", func(t *testing.T) {
		// setup
		ctx := context.Background()
		clients := newRepo(t)

		// arrange
		client := helper.FixtureClient(t, "Marie Curie")

		// act
		err := clients.Create(ctx, client)

		// assert
		require.NoError(t, err)
		found, err := clients.Get(ctx, client.ID)
		require.NoError(t, err)
		assertSameClient(t, client, found)
	})

	t.Run("clients may share an email address", func(t *testing.T) {
		ctx := context.Background()
		clients := newRepo(t)

		helper.GivenClientWasCreated(t, ctx, clients, helper.FixtureClient(t, "Pierre Curie"))
		err := clients.Create(ctx, helper.FixtureClient(t, "Marie Curie"))

		assert.NoError(t, err)
	})

	t.Run("Get with an unknown id is not found", func(t *testing.T) {
		clients := newRepo(t)

		_, err := clients.Get(context.Background(), helper.GivenUniqueID(t))

		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("List yields all clients ordered by id", func(t *testing.T) {
		// setup
		ctx := context.Background()
		clients := newRepo(t)

		// arrange
		first := helper.GivenClientWasCreated(t, ctx, clients, helper.FixtureClient(t, "Zoé"))
		second := helper.GivenClientWasCreated(t, ctx, clients, helper.FixtureClient(t, "Adam"))

		// act
		listed := helper.Collect(t, clients.List(ctx))

		// assert
		require.Len(t, listed, 2)
		assertSameClient(t, first, listed[0])
		assertSameClient(t, second, listed[1])
	})

	t.Run("Update overwrites contact data and keeps the registration date", func(t *testing.T) {
		// setup
		ctx := context.Background()
		clients := newRepo(t)

		// arrange
		client := helper.GivenClientWasCreated(t, ctx, clients, helper.FixtureClient(t, "Marie Curie"))
		update := catalog.ClientUpdate{
			Nom:       "Marie Skłodowska-Curie",
			Email:     "marie@sorbonne.test",
			Telephone: "+33 6 00 00 00 00",
			Adresse:   "36 quai de Béthune, Paris",
		}

		// act
		err := clients.Update(ctx, client.ID, update)

		// assert
		require.NoError(t, err)
		found, err := clients.Get(ctx, client.ID)
		require.NoError(t, err)
		assertSameClient(t, update.Apply(client), found)
	})

	t.Run("Update with an unknown id is not found", func(t *testing.T) {
		clients := newRepo(t)

		err := clients.Update(context.Background(), helper.GivenUniqueID(t), catalog.ClientUpdate{Nom: "Ghost"})

		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("Delete removes the client", func(t *testing.T) {
		// setup
		ctx := context.Background()
		clients := newRepo(t)

		// arrange
		client := helper.GivenClientWasCreated(t, ctx, clients, helper.FixtureClient(t, "Marie Curie"))

		// act
		err := clients.Delete(ctx, client.ID)

		// assert
		require.NoError(t, err)
		_, err = clients.Get(ctx, client.ID)
		assert.ErrorIs(t, err, catalog.ErrNotFound)
		assert.ErrorIs(t, clients.Delete(ctx, client.ID), catalog.ErrNotFound)
	})
}

func assertSameClient(t *testing.T, expected, actual catalog.Client) {
	t.Helper()

	assert.True(t, expected.DateInscription.Equal(actual.DateInscription),
		"registration date differs: %v != %v", expected.DateInscription, actual.DateInscription)

	actual.DateInscription = expected.DateInscription
	assert.Equal(t, expected, actual)
}
