package catalog

import "time"

// Client is a library patron. Not to be confused with a caller of the RPC service.
//
// There is no uniqueness constraint on Email.
type Client struct {
	ID              string
	Nom             string
	Email           string
	Telephone       string
	Adresse         string
	DateInscription time.Time
}

// ClientUpdate carries the mutable fields of a Client. DateInscription is never updated.
type ClientUpdate struct {
	Nom       string
	Email     string
	Telephone string
	Adresse   string
}

// Apply returns a copy of the client with the update written over it.
func (u ClientUpdate) Apply(client Client) Client {
	client.Nom = u.Nom
	client.Email = u.Email
	client.Telephone = u.Telephone
	client.Adresse = u.Adresse

	return client
}
