package domain

// AdminIdentity is the claim carried by a verified session token. It is
// reconstructed from the token on every request and never persisted.
type AdminIdentity struct {
	Username string `json:"username"`
}
