package domain

type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// Session is the login response payload: a signed token plus the user echo.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
