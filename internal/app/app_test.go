package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/gobank/internal/config"
	"github.com/GlebRadaev/gobank/internal/service"
	"github.com/GlebRadaev/gobank/pkg/cache"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

type adminBootstrapStub struct {
	calls    int
	username string
	err      error
}

func (s *adminBootstrapStub) EnsureAdmin(_ context.Context, username, _, _ string) error {
	s.calls++
	s.username = username
	return s.err
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestNewCache_InMemoryWithoutRedis() {
	store, err := newCache(context.Background(), &config.Config{})

	s.Require().NoError(err)
	s.IsType(&cache.MemoryCache{}, store)
}

func (s *ApplicationSuite) TestBootstrapAdmin() {
	tests := []struct {
		name      string
		cfg       *config.Config
		stubErr   error
		wantCalls int
		expectErr bool
	}{
		{
			name:      "Skipped without credentials",
			cfg:       &config.Config{AdminUsername: "admin"},
			wantCalls: 0,
		},
		{
			name:      "Creates configured administrator",
			cfg:       &config.Config{AdminUsername: "admin", AdminPassword: "admin-pass-123", AdminEmail: "admin@gobank.local"},
			wantCalls: 1,
		},
		{
			name:      "Propagates failure",
			cfg:       &config.Config{AdminUsername: "admin", AdminPassword: "admin-pass-123"},
			stubErr:   errors.New("db down"),
			wantCalls: 1,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			stub := &adminBootstrapStub{err: tt.stubErr}
			s.app.cfg = tt.cfg
			s.app.srv = &service.Services{AdminBootstrap: stub}

			err := s.app.bootstrapAdmin(context.Background())

			if tt.expectErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
			s.Equal(tt.wantCalls, stub.calls)
			if tt.wantCalls > 0 {
				s.Equal("admin", stub.username)
			}
		})
	}
}
