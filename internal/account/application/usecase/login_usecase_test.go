package usecase

import (
	"context"
	"testing"
	"time"

	"chargestation/internal/account/application/ports/in"
	"chargestation/internal/account/domain"
	"chargestation/internal/shared/auth"
	"chargestation/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{Secret: "test_secret", ExpiryMinutes: 60})
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password, role string, blocked bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &domain.User{
		ID:           "00000000-0000-0000-0000-000000000001",
		FirstName:    "Alice",
		LastName:     "Miller",
		DateOfBirth:  time.Date(1992, 4, 1, 0, 0, 0, 0, time.UTC),
		Username:     username,
		EmailAddress: username + "@example.com",
		PasswordHash: string(hash),
		Role:         role,
		IsBlocked:    blocked,
	}))
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "sup3rsecret", "driver", false)

	jwtService := testJWTService()
	svc := NewLoginService(repo, jwtService, testLogger())

	output, err := svc.Execute(context.Background(), in.LoginInput{Username: "alice", Password: "sup3rsecret"})
	require.NoError(t, err)

	assert.Equal(t, "alice", output.Username)
	assert.Equal(t, "driver", output.Role)

	claims, err := jwtService.ValidateToken(output.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "driver", claims.Role)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewLoginService(newFakeUserRepo(), testJWTService(), testLogger())

	_, err := svc.Execute(context.Background(), in.LoginInput{Username: "ghost", Password: "whatever1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "sup3rsecret", "driver", false)

	svc := NewLoginService(repo, testJWTService(), testLogger())

	_, err := svc.Execute(context.Background(), in.LoginInput{Username: "alice", Password: "wrongpass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginBlockedAccount(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "sup3rsecret", "driver", true)

	svc := NewLoginService(repo, testJWTService(), testLogger())

	_, err := svc.Execute(context.Background(), in.LoginInput{Username: "alice", Password: "sup3rsecret"})
	assert.ErrorIs(t, err, domain.ErrAccountBlocked)
}
