package domain

// Session is the server-side record of an authenticated identity. It is
// ephemeral: created on login, destroyed on logout, expired by the store's
// TTL otherwise. The client holds only the opaque token referencing it.
type Session struct {
	ID       string
	UserID   string
	Username string
}

// Authenticated reports whether the session belongs to a logged-in user.
// The zero Session stands for an anonymous visitor.
func (s Session) Authenticated() bool {
	return s.UserID != ""
}
