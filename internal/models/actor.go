package models

// Actor is the authenticated requester derived from a verified session
// token, immutable for the request's lifetime. A nil *Actor means the
// request is anonymous.
type Actor struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}
