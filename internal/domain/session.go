package domain

// Session is the client-held record for the currently authenticated
// identity plus its bearer credential. Exactly one session exists at a
// time; it is created on login/registration, reloaded from the session
// store at process start, and dropped on sign-out.
type Session struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	JoinDate string `json:"joinDate"` // YYYY-MM-DD, stamped client-side at login
	Token    string `json:"token,omitempty"`
}

// Authorized reports whether the session carries a bearer credential.
// A populated session without a token is not authorized: requests made
// with it would be refused server-side anyway.
func (s Session) Authorized() bool { return s.Token != "" }
