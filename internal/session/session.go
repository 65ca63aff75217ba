// Package session owns the authenticated state of the client: the bearer
// token, the minimal user identity and their persistence between runs.
package session

// User is the minimal identity of the authenticated account. Only Email is
// guaranteed: a login response without a user payload synthesizes an
// identity carrying just the submitted email.
type User struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Session is the authenticated state for one user. It is constructed on
// login (or restored from disk on start) and destroyed on logout.
type Session struct {
	Token string
	User  User
}
