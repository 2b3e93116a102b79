package configs

// Auth holds the JWT verification settings. Token issuance happens in the
// external auth service; this application only verifies.
type Auth struct {
	// AccessSecret is the HMAC secret shared with the auth service.
	AccessSecret string `env:"ACCESS_SECRET" envDefault:"change-me"`
}
