package usecase

import (
	"context"
	"testing"

	"chargestation/internal/account/application/ports/in"
	"chargestation/internal/account/domain"
	"chargestation/internal/shared/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory UserRepository keyed by username.
type fakeUserRepo struct {
	byUsername map[string]*domain.User
	byEmail    map[string]*domain.User
	failWith   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byUsername: map[string]*domain.User{},
		byEmail:    map[string]*domain.User{},
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	clone := *u
	f.byUsername[u.Username] = &clone
	f.byEmail[u.EmailAddress] = &clone
	return nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.byUsername[username], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.byEmail[email], nil
}

func testLogger() *logger.Logger {
	return logger.NewLogger("test")
}

func validRegistration() in.RegisterInput {
	return in.RegisterInput{
		FirstName:    "Alice",
		LastName:     "Miller",
		DateOfBirth:  "1992-04-01",
		Username:     "alice",
		EmailAddress: "alice@example.com",
		Password:     "sup3rsecret",
		Role:         "driver",
	}
}

func TestRegisterCreatesAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewRegisterService(repo, testLogger())

	require.NoError(t, svc.Execute(context.Background(), validRegistration()))

	created := repo.byUsername["alice"]
	require.NotNil(t, created)

	_, err := uuid.Parse(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "driver", created.Role)
	assert.False(t, created.IsBlocked)
	assert.False(t, created.IsConfirmed)
	assert.NotEqual(t, "sup3rsecret", created.PasswordHash, "password is stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("sup3rsecret")))
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*in.RegisterInput)
		wantErr error
	}{
		{"missing first name", func(i *in.RegisterInput) { i.FirstName = "" }, domain.ErrMissingField},
		{"missing username", func(i *in.RegisterInput) { i.Username = "" }, domain.ErrMissingField},
		{"bad email", func(i *in.RegisterInput) { i.EmailAddress = "nope" }, domain.ErrInvalidEmail},
		{"unknown role", func(i *in.RegisterInput) { i.Role = "passenger" }, domain.ErrInvalidRole},
		{"short password", func(i *in.RegisterInput) { i.Password = "short" }, domain.ErrPasswordTooShort},
		{"bad date", func(i *in.RegisterInput) { i.DateOfBirth = "April 1st" }, domain.ErrInvalidDateOfBirth},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			svc := NewRegisterService(repo, testLogger())

			input := validRegistration()
			tc.mutate(&input)

			err := svc.Execute(context.Background(), input)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, repo.byUsername, "nothing persisted on validation failure")
		})
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewRegisterService(repo, testLogger())

	require.NoError(t, svc.Execute(context.Background(), validRegistration()))

	// same username, different email
	dup := validRegistration()
	dup.EmailAddress = "other@example.com"
	assert.ErrorIs(t, svc.Execute(context.Background(), dup), domain.ErrUserAlreadyExists)

	// same email, different username
	dup = validRegistration()
	dup.Username = "alice2"
	assert.ErrorIs(t, svc.Execute(context.Background(), dup), domain.ErrUserAlreadyExists)
}
