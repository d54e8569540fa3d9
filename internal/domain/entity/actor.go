package entity

// Actor is the authenticated caller of a request. It is resolved once by the
// auth middleware and handed to every use case explicitly.
type Actor struct {
	UserID string
	Role   UserRole
	Email  string
	Name   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == UserRoleAdmin
}
