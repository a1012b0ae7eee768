package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gobank/pkg/cache"
	"github.com/GlebRadaev/gobank/pkg/utils"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	validToken, _ := jwtService.GenerateJWT(42, time.Now().Add(time.Hour))
	revokedToken, _ := jwtService.GenerateJWT(42, time.Now().Add(time.Hour))
	revokedClaims, _ := jwtService.ValidateToken(revokedToken)

	revocations := NewRevocations(cache.NewMemoryCache())
	_ = revocations.Revoke(context.Background(), revokedClaims.Id, revokedClaims.ExpiresAtTime())

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedUser int
	}{
		{
			name:         "Missing header",
			header:       "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Wrong scheme",
			header:       "Basic " + validToken,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Invalid token",
			header:       "Bearer invalid.token",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Revoked token",
			header:       "Bearer " + revokedToken,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Valid token",
			header:       "Bearer " + validToken,
			expectedCode: http.StatusOK,
			expectedUser: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser int
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = UserIDFromContext(r.Context())
				claims, ok := ClaimsFromContext(r.Context())
				assert.True(t, ok)
				assert.NotEmpty(t, claims.Id)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			Middleware(jwtService, revocations)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedUser, gotUser)
			if tt.expectedCode == http.StatusUnauthorized {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "Unauthorized", resp.Message)
			}
		})
	}
}

func TestMiddleware_RevocationLookupFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := cache.NewMockCache(ctrl)
	c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))

	jwtService := NewJWTService(testSecret)
	token, _ := jwtService.GenerateJWT(7, time.Now().Add(time.Hour))

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	Middleware(jwtService, NewRevocations(c))(next).ServeHTTP(rr, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUserIDFromContext(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)

	userID, ok := UserIDFromContext(context.WithValue(context.Background(), UserIDKey, 5))
	assert.True(t, ok)
	assert.Equal(t, 5, userID)
}
