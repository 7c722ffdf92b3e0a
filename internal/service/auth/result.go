package auth

import "github.com/quizdeck/quizdeck-backend/internal/domain"

// AuthResult is returned by Register and Login: the account plus a signed
// access token.
type AuthResult struct {
	User        *domain.User
	AccessToken string
}
