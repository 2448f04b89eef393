package app

import (
	"errors"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"

	"bloglist/internal/domain"
)

// ErrInvalidToken indicates a bearer token with a bad signature or encoding.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the fields embedded in a signed bearer token.
type Claims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// TokenService issues and verifies stateless HS256-signed bearer tokens.
// Tokens carry no expiry claim: one stays valid until the secret rotates.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret}
}

// Issue signs a token binding the user's id and username.
func (t *TokenService) Issue(user *domain.User) (string, error) {
	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: t.secret},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return "", err
	}
	return jwt.Signed(signer).Claims(Claims{ID: user.ID, Username: user.Username}).Serialize()
}

// Verify checks the signature and decodes the claims. It does not check that
// the referenced user still exists; that is the caller's concern.
func (t *TokenService) Verify(token string) (Claims, error) {
	parsed, err := jwt.ParseSigned(token, []jose.SignatureAlgorithm{jose.HS256})
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	var claims Claims
	if err := parsed.Claims(t.secret, &claims); err != nil {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
