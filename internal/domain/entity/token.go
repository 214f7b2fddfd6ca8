package entity

// TokenPair carries a freshly minted access/refresh token pair. The access
// token is short-lived and stateless; the refresh token's hash is anchored
// on the user row until the next rotation or logout.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
