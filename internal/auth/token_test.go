package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/dental-scheduler/internal/httperr"
)

const testUserID = "5f0c6a2e-8c1b-4d7e-9a53-0b6d2f1c9e11"

func requestWith(header string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		r.Header.Set("Authorization", header)
	}
	return r
}

func TestExtractToken(t *testing.T) {
	s := NewTokenService("secret", time.Hour)

	assert.Equal(t, "abc", s.ExtractToken("Bearer abc"))
	assert.Equal(t, "abc", s.ExtractToken("abc"))
	assert.Equal(t, "", s.ExtractToken("Bearer "))
	assert.Equal(t, "", s.ExtractToken(""))
}

func TestIssueAndResolve(t *testing.T) {
	s := NewTokenService("secret", time.Hour)

	token, err := s.Issue(testUserID, "patient")
	require.NoError(t, err)

	userID, err := s.UserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)

	role, err := s.RoleFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "patient", role)

	uid, r, err := s.Resolve(requestWith("Bearer " + token))
	require.NoError(t, err)
	assert.Equal(t, testUserID, uid)
	assert.Equal(t, "patient", r)
}

func TestResolve_Failures(t *testing.T) {
	s := NewTokenService("secret", time.Hour)
	other := NewTokenService("other-secret", time.Hour)

	foreign, err := other.Issue(testUserID, "patient")
	require.NoError(t, err)

	past := NewTokenService("secret", time.Hour)
	past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := past.Issue(testUserID, "patient")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": testUserID})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := map[string]struct {
		header string
		want   error
	}{
		"no header":    {"", ErrMissingHeader},
		"empty bearer": {"Bearer", ErrMissingToken},
		"garbage":      {"Bearer not.a.jwt", ErrInvalidToken},
		"wrong secret": {"Bearer " + foreign, ErrInvalidToken},
		"expired":      {"Bearer " + expired, ErrInvalidToken},
		"alg none":     {"Bearer " + unsigned, ErrInvalidToken},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := s.Resolve(requestWith(tc.header))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCheckAuthorizationHeader(t *testing.T) {
	s := NewTokenService("secret", time.Hour)
	token, err := s.Issue(testUserID, "")
	require.NoError(t, err)

	userID, res := s.CheckAuthorizationHeader(requestWith("Bearer " + token))
	assert.Nil(t, res)
	assert.Equal(t, testUserID, userID)

	_, res = s.CheckAuthorizationHeader(requestWith(""))
	require.NotNil(t, res)
	assert.Equal(t, httperr.MsgAuthorizationRequired, res.Message)
	assert.False(t, res.Success)

	_, res = s.CheckAuthorizationHeader(requestWith("Bearer"))
	assert.Equal(t, MsgTokenRequired, res.Message)

	_, res = s.CheckAuthorizationHeader(requestWith("Bearer nope"))
	assert.Equal(t, MsgInvalidToken, res.Message)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestJWTProvider(t *testing.T) {
	s := NewTokenService("secret", time.Hour)
	p := NewJWTProvider(s)

	token, err := s.Issue(testUserID, "staff")
	require.NoError(t, err)

	r := requestWith("Bearer " + token)
	assert.Equal(t, testUserID, p.GetUserID(r))
	assert.Equal(t, "staff", p.GetRole(r))

	bad := requestWith("Bearer nope")
	assert.Empty(t, p.GetUserID(bad))
	assert.Empty(t, p.GetRole(bad))
}

func TestJWTProvider_Explain(t *testing.T) {
	s := NewTokenService("secret", time.Hour)
	p := NewJWTProvider(s)

	token, err := s.Issue(testUserID, "")
	require.NoError(t, err)

	assert.Empty(t, p.Explain(requestWith("Bearer "+token)))
	assert.Equal(t, httperr.MsgAuthorizationRequired, p.Explain(requestWith("")))
	assert.Equal(t, MsgTokenRequired, p.Explain(requestWith("Bearer")))
	assert.Equal(t, MsgInvalidToken, p.Explain(requestWith("Bearer nope")))
}
