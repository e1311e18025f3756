package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// NewUserCommand carries a plain password; it is hashed before it reaches a store.
type NewUserCommand struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=3,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}
