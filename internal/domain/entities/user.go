package entities

// UserRole of a signed-in user. Only the admin role is issued today; the
// other values exist because the login screen offers them as profiles.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleVendedor UserRole = "vendedor"
	RoleProducao UserRole = "producao"
	RoleCliente  UserRole = "cliente"
)

// User is the session record kept while someone is logged in. There is a
// single session slot: logging in overwrites it, logging out clears it.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}
