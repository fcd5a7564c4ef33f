package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail   map[string]User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return ErrUserAlreadyExists
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

type fakeTokens struct {
	token string
	err   error
}

func (f *fakeTokens) Generate(ctx context.Context, user User) (string, error) {
	return f.token, f.err
}

func newTestService(t *testing.T) (AuthUseCase, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	return NewAuthService(repo, &fakeTokens{token: "signed-token"}), repo
}

func TestRegister_Success(t *testing.T) {
	svc, repo := newTestService(t)

	identity, err := svc.Register(context.Background(), "Ann", "ann@x.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "Ann", identity.Name)
	assert.Equal(t, "ann@x.com", identity.Email)
	assert.NotEqual(t, identity.ID.String(), "00000000-0000-0000-0000-000000000000")

	stored := repo.byEmail["ann@x.com"]
	assert.NotEqual(t, "secret1", stored.PasswordHash, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegister_MissingFields(t *testing.T) {
	svc, repo := newTestService(t)

	cases := []struct {
		name, email, password, want string
	}{
		{"", "a@x.com", "secret1", "Name is required"},
		{"Ann", "", "secret1", "Email is required"},
		{"Ann", "a@x.com", "", "Password is required"},
	}
	for _, tc := range cases {
		_, err := svc.Register(context.Background(), tc.name, tc.email, tc.password)
		var verr ErrValidation
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, tc.want, verr.Error())
	}
	assert.Empty(t, repo.byEmail)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.Register(context.Background(), "Ann", "ann@x.com", "12345")

	var verr ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, repo.byEmail, "no user may be persisted")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.Register(context.Background(), "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other", "ann@x.com", "secret2")
	require.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Len(t, repo.byEmail, 1, "exactly one user exists afterward")
}

func TestLogin_RoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "ann@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, "ann@x.com", result.User.Email)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "ghost@x.com", "secret1")
	require.ErrorIs(t, err, ErrEmailNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "ann@x.com", "wrong-pass")
	require.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Empty(t, result.Token, "no token may be issued")
}

func TestLogin_MissingInput(t *testing.T) {
	svc, _ := newTestService(t)

	var verr ErrValidation
	_, err := svc.Login(context.Background(), "", "secret1")
	require.ErrorAs(t, err, &verr)

	_, err = svc.Login(context.Background(), "ann@x.com", "")
	require.ErrorAs(t, err, &verr)
}

func TestLogin_TokenFailure(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, &fakeTokens{err: errors.New("signing broken")})

	_, err := svc.Register(context.Background(), "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "ann@x.com", "secret1")
	require.Error(t, err)
}
