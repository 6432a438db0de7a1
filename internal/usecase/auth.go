// Package usecase contains the business rules behind each resource. Handlers
// depend on these interfaces, never on repositories directly.
package usecase

import (
	"github.com/techwavehq/techwave-api/internal/auth"
	"github.com/techwavehq/techwave-api/internal/config"
)

// AuthUsecase issues session tokens. There is deliberately no credential
// check here: the upstream login flow vouches for the email it submits.
type AuthUsecase interface {
	IssueToken(email string) (string, error)
}

type authUsecase struct {
	jwtAuth  auth.JWTAuthenticator
	tokenCfg *config.TokenConfig
}

func NewAuthUsecase(jwtAuth auth.JWTAuthenticator, tokenCfg *config.TokenConfig) AuthUsecase {
	return &authUsecase{
		jwtAuth:  jwtAuth,
		tokenCfg: tokenCfg,
	}
}

func (u *authUsecase) IssueToken(email string) (string, error) {
	return u.jwtAuth.IssueSession(email, u.tokenCfg.AccessTokenExpiresIn)
}
