package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-retail-api/internal/config"
	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/internal/mock"
	"github.com/MKhiriev/go-retail-api/internal/utils"
	"github.com/MKhiriev/go-retail-api/models"
)

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "retail-api",
		TokenAudience: "retail-clients",
		TokenDuration: time.Hour,
	}
}

func newTestAuthService(t *testing.T, cfg config.Auth) AuthService {
	t.Helper()

	svc, err := NewAuthService(cfg, utils.KeySet{HMAC: []byte(cfg.TokenSignKey)}, logger.Nop())
	require.NoError(t, err)
	return svc
}

// ─────────────────────────────────────────────
// NewAuthService / LoadKeySet
// ─────────────────────────────────────────────

func TestNewAuthService_EmptyKeySet(t *testing.T) {
	svc, err := NewAuthService(testAuthConfig(), utils.KeySet{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrNoVerificationKeys)
}

func TestLoadKeySet(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	published := map[string]*rsa.PublicKey{"k1": &rsaKey.PublicKey}

	t.Run("sign key only", func(t *testing.T) {
		keys, err := LoadKeySet(context.Background(), testAuthConfig(), nil)
		require.NoError(t, err)
		assert.Equal(t, []byte("sign-key"), keys.HMAC)
		assert.Empty(t, keys.RSA)
	})

	t.Run("sign key and identity provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mock.NewMockKeySource(ctrl)
		source.EXPECT().FetchKeys(gomock.Any()).Return(published, nil)

		keys, err := LoadKeySet(context.Background(), testAuthConfig(), source)
		require.NoError(t, err)
		assert.NotEmpty(t, keys.HMAC)
		assert.Equal(t, published, keys.RSA)
	})

	t.Run("identity provider fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mock.NewMockKeySource(ctrl)
		fetchErr := errors.New("unreachable")
		source.EXPECT().FetchKeys(gomock.Any()).Return(nil, fetchErr)

		_, err := LoadKeySet(context.Background(), testAuthConfig(), source)
		assert.ErrorIs(t, err, fetchErr)
	})

	t.Run("no key source", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.TokenSignKey = ""

		_, err := LoadKeySet(context.Background(), cfg, nil)
		assert.ErrorIs(t, err, ErrNoVerificationKeys)
	})
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := newTestAuthService(t, testAuthConfig())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "tester", []string{"read:orders"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "tester", parsed.Claims.Subject)
	assert.True(t, parsed.Claims.HasPermission("read:orders"))
}

func TestAuthService_CreateToken_RefusesDenyScope(t *testing.T) {
	svc := newTestAuthService(t, testAuthConfig())

	_, err := svc.CreateToken(context.Background(), "tester", []string{models.SecurityDeny.Scope()})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
	assert.ErrorIs(t, err, utils.ErrDeniedPermission)
}

func TestAuthService_ParseToken_Failures(t *testing.T) {
	cfg := testAuthConfig()
	svc := newTestAuthService(t, cfg)

	expired := &models.Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    cfg.TokenIssuer,
		Audience:  jwt.ClaimStrings{cfg.TokenAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}}
	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte(cfg.TokenSignKey))
	require.NoError(t, err)

	otherCfg := cfg
	otherCfg.TokenAudience = "someone-else"
	foreign, err := newTestAuthService(t, otherCfg).CreateToken(context.Background(), "tester", nil)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expiredToken, wantErr: ErrTokenIsExpired},
		{name: "wrong audience", token: foreign.SignedString, wantErr: ErrTokenIsExpiredOrInvalid},
		{name: "garbage", token: "garbage", wantErr: ErrTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
