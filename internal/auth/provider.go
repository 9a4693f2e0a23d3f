package auth

import "net/http"

// JWTProvider answers "who is calling" with empty strings instead of errors.
type JWTProvider struct {
	tokens *TokenService
}

func NewJWTProvider(tokens *TokenService) *JWTProvider {
	return &JWTProvider{tokens: tokens}
}

func (p *JWTProvider) GetUserID(r *http.Request) string {
	userID, _, err := p.tokens.Resolve(r)
	if err != nil {
		return ""
	}
	return userID
}

func (p *JWTProvider) GetRole(r *http.Request) string {
	_, role, err := p.tokens.Resolve(r)
	if err != nil {
		return ""
	}
	return role
}

// Explain returns the failed CheckAuthorizationHeader message, or "" when the
// request carries a usable user id.
func (p *JWTProvider) Explain(r *http.Request) string {
	if _, res := p.tokens.CheckAuthorizationHeader(r); res != nil {
		return res.Message
	}
	return ""
}

func (p *JWTProvider) Resolve(r *http.Request) (string, string, error) {
	return p.tokens.Resolve(r)
}
