package models

// Session is the locally cached user identity. A zero UserID means the
// client operates anonymously. The client performs no expiry handling;
// staleness is the backend's concern.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Anonymous reports whether no user is attached to the session.
func (s Session) Anonymous() bool {
	return s.UserID == ""
}

// DisplayName returns the best human-readable identity for the session.
func (s Session) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Email
}
