package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
)

func Test_ClientUpdate_Apply_KeepsIDAndRegistrationDate(t *testing.T) {
	// arrange
	registered := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	client := catalog.Client{ID: "client-1", Nom: "Marie", Email: "m@library.test", DateInscription: registered}
	update := catalog.ClientUpdate{Nom: "Marie Curie", Email: "marie@library.test", Telephone: "0102030405", Adresse: "Paris"}

	// act
	updated := update.Apply(client)

	// assert
	assert.Equal(t, catalog.Client{
		ID:              "client-1",
		Nom:             "Marie Curie",
		Email:           "marie@library.test",
		Telephone:       "0102030405",
		Adresse:         "Paris",
		DateInscription: registered,
	}, updated)
}
