package rpcserver

// Human-readable messages sent with results and statuses.
const (
	msgInvalidCredentials    = "Invalid username or password."
	msgInsufficientPrivilege = "Access denied: staff or superuser privileges are required."
	msgWelcome               = "Welcome, %s!"

	msgBookCreated  = "Book created successfully."
	msgBookUpdated  = "Book updated successfully."
	msgBookDeleted  = "Book deleted successfully."
	msgBookNotFound = "book not found"
	msgISBNTaken    = "a book with this ISBN already exists"

	msgUserDeleted        = "User deleted successfully."
	msgUserNotFound       = "user not found"
	msgSuperuserProtected = "superuser accounts cannot be deleted"

	msgClientCreated  = "Client created successfully."
	msgClientUpdated  = "Client updated successfully."
	msgClientDeleted  = "Client deleted successfully."
	msgClientNotFound = "client not found"
	msgIDTaken        = "a record with this id already exists"
)
