package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/dental-scheduler/internal/httperr"
	"github.com/BruksfildServices01/dental-scheduler/internal/httpresp"
)

const (
	MsgTokenRequired = "Token is required"
	MsgInvalidToken  = "Invalid token"

	claimRole = "role"
)

var (
	ErrMissingHeader = errors.New("missing authorization header")
	ErrMissingToken  = errors.New("missing bearer token")
	ErrInvalidToken  = errors.New("invalid token")
)

// TokenService reads and signs the HMAC JWTs carried in the Authorization
// header. The user id is the "sub" claim.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *TokenService) AuthorizationHeader(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("Authorization"))
}

// ExtractToken returns the last space separated part of header, so both
// "Bearer <jwt>" and a bare "<jwt>" work.
func (s *TokenService) ExtractToken(header string) string {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return ""
	}
	token := fields[len(fields)-1]
	if strings.EqualFold(token, "Bearer") {
		return ""
	}
	return token
}

func (s *TokenService) parse(token string) (jwt.MapClaims, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *TokenService) UserIDFromToken(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

func (s *TokenService) RoleFromToken(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}

	role, _ := claims[claimRole].(string)
	return role, nil
}

// Resolve returns user id and role from the request, or the reason it could
// not.
func (s *TokenService) Resolve(r *http.Request) (userID, role string, err error) {
	header := s.AuthorizationHeader(r)
	if header == "" {
		return "", "", ErrMissingHeader
	}

	claims, err := s.parse(s.ExtractToken(header))
	if err != nil {
		return "", "", err
	}

	role, _ = claims[claimRole].(string)
	userID, _ = claims.GetSubject()
	return userID, role, nil
}

// CheckAuthorizationHeader resolves the user id or builds the failed result
// explaining why it is missing.
func (s *TokenService) CheckAuthorizationHeader(r *http.Request) (string, *httpresp.Result) {
	header := s.AuthorizationHeader(r)
	if header == "" {
		return "", httpresp.Fail(http.StatusOK, httperr.MsgAuthorizationRequired)
	}

	token := s.ExtractToken(header)
	if token == "" {
		return "", httpresp.Fail(http.StatusOK, MsgTokenRequired)
	}

	userID, err := s.UserIDFromToken(token)
	if err != nil || userID == "" {
		return "", httpresp.Fail(http.StatusOK, MsgInvalidToken)
	}

	return userID, nil
}

func (s *TokenService) Issue(userID, role string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":     userID,
		claimRole: role,
		"exp":     now.Add(s.ttl).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
