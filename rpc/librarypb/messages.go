package librarypb

// LoginRequest carries the credentials of a staff member.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult reports the outcome of UserLogin. UserID is only set on success.
type LoginResult struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId,omitempty"`
	Message string `json:"message"`
}

// StatusResult is the response of every mutating call.
// EntityID is set by the create calls.
type StatusResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	EntityID string `json:"entityId,omitempty"`
}

// Book is the wire form of a catalog book.
type Book struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Isbn            string `json:"isbn"`
	TotalCopies     int32  `json:"totalCopies"`
	AvailableCopies int32  `json:"availableCopies"`
	ImageURL        string `json:"imageUrl,omitempty"`
}

// User is the wire form of a staff account. It never carries the password hash.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	IsActive    bool   `json:"isActive"`
	IsStaff     bool   `json:"isStaff"`
	IsSuperuser bool   `json:"isSuperuser"`
	// DateJoined is RFC 3339 in UTC.
	DateJoined string `json:"dateJoined"`
}

// Client is the wire form of a library patron.
type Client struct {
	ID        string `json:"id"`
	Nom       string `json:"nom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Adresse   string `json:"adresse"`
	// DateInscription is RFC 3339 in UTC.
	DateInscription string `json:"dateInscription"`
}

type CreateBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Isbn        string `json:"isbn"`
	TotalCopies int32  `json:"totalCopies"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type GetBookRequest struct {
	ID string `json:"id"`
}

// UpdateBookRequest overwrites all listed fields of the book.
type UpdateBookRequest struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Isbn            string `json:"isbn"`
	TotalCopies     int32  `json:"totalCopies"`
	AvailableCopies int32  `json:"availableCopies"`
}

type DeleteBookRequest struct {
	ID string `json:"id"`
}

// SearchBooksRequest matches Query against title and author. An empty query matches all books.
type SearchBooksRequest struct {
	Query string `json:"query"`
}

type GetAllUsersRequest struct{}

type GetUserDetailRequest struct {
	UserID string `json:"userId"`
}

type DeleteUserRequest struct {
	UserID string `json:"userId"`
}

type CreateClientRequest struct {
	Nom       string `json:"nom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Adresse   string `json:"adresse"`
}

type GetClientRequest struct {
	ID string `json:"id"`
}

type GetAllClientsRequest struct{}

type UpdateClientRequest struct {
	ID        string `json:"id"`
	Nom       string `json:"nom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Adresse   string `json:"adresse"`
}

type DeleteClientRequest struct {
	ID string `json:"id"`
}
