package sqlengine

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
	"github.com/AntonStoeckl/library-admin-rpc/catalog/sqlengine/internal/adapters"
)

const (
	colNom             = "nom"
	colTelephone       = "telephone"
	colAdresse         = "adresse"
	colDateInscription = "date_inscription"
)

const (
	operationClientsCreate = "clients.create"
	operationClientsGet    = "clients.get"
	operationClientsList   = "clients.list"
	operationClientsUpdate = "clients.update"
	operationClientsDelete = "clients.delete"
)

var clientColumns = []any{colID, colNom, colEmail, colTelephone, colAdresse, colDateInscription}

var _ catalog.ClientRepository = (*Clients)(nil)

// Clients is the relational catalog.ClientRepository.
type Clients struct {
	store *Store
}

// Create inserts the client.
func (r *Clients) Create(ctx context.Context, client catalog.Client) error {
	s := r.store

	insertStmt := s.dialect.
		Insert(s.tables.clients).
		Prepared(true).
		Rows(goqu.Record{
			colID:              client.ID,
			colNom:             client.Nom,
			colEmail:           client.Email,
			colTelephone:       client.Telephone,
			colAdresse:         client.Adresse,
			colDateInscription: client.DateInscription.UTC(),
		})

	return s.execOne(ctx, operationClientsCreate, insertStmt)
}

// Get returns the client with the given id or catalog.ErrNotFound.
func (r *Clients) Get(ctx context.Context, id string) (catalog.Client, error) {
	s := r.store

	selectStmt := s.dialect.
		From(s.tables.clients).
		Prepared(true).
		Select(clientColumns...).
		Where(goqu.C(colID).Eq(id))

	return queryOne(ctx, s, operationClientsGet, selectStmt, scanClient)
}

// List yields all clients ordered by id.
func (r *Clients) List(ctx context.Context) catalog.Seq[catalog.Client] {
	s := r.store

	selectStmt := s.dialect.
		From(s.tables.clients).
		Prepared(true).
		Select(clientColumns...).
		Order(goqu.C(colID).Asc())

	return queryEach(ctx, s, operationClientsList, selectStmt, scanClient)
}

// Update overwrites name, email, phone and address; the registration date is never touched.
func (r *Clients) Update(ctx context.Context, id string, update catalog.ClientUpdate) error {
	s := r.store

	updateStmt := s.dialect.
		Update(s.tables.clients).
		Prepared(true).
		Set(goqu.Record{
			colNom:       update.Nom,
			colEmail:     update.Email,
			colTelephone: update.Telephone,
			colAdresse:   update.Adresse,
		}).
		Where(goqu.C(colID).Eq(id))

	return s.execOne(ctx, operationClientsUpdate, updateStmt)
}

// Delete removes the client or returns catalog.ErrNotFound.
func (r *Clients) Delete(ctx context.Context, id string) error {
	s := r.store

	deleteStmt := s.dialect.
		Delete(s.tables.clients).
		Prepared(true).
		Where(goqu.C(colID).Eq(id))

	return s.execOne(ctx, operationClientsDelete, deleteStmt)
}

func scanClient(rows adapters.DBRows) (catalog.Client, error) {
	var client catalog.Client

	err := rows.Scan(
		&client.ID,
		&client.Nom,
		&client.Email,
		&client.Telephone,
		&client.Adresse,
		&client.DateInscription,
	)

	return client, err
}
