package models

import "github.com/golang-jwt/jwt/v5"

// AccessClaims represents the JWT claims issued by the identity provider
// fronting this API. Only the subject is load-bearing; the remaining
// fields are carried for logging and future authorization checks.
type AccessClaims struct {
	jwt.RegisteredClaims                        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string                 `json:"email"`
	Role                 string                 `json:"role"`
	AppMetadata          map[string]interface{} `json:"app_metadata"`
	SessionID            string                 `json:"session_id"`
}

// GetUserID returns the user ID from the JWT subject claim.
// This is the primary identifier for the authenticated user.
func (c *AccessClaims) GetUserID() string {
	return c.Subject
}
