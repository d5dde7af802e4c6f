package models

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is what login and register hand back to the view layer.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
