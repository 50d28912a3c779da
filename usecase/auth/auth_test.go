package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/agrofocus/domain"
	"github.com/fastygo/agrofocus/repository/credentials"
	"github.com/fastygo/agrofocus/repository/memory"
)

func newUseCase(t *testing.T, verifier CredentialVerifier) (*UseCase, *memory.Store) {
	t.Helper()
	kv := memory.NewStore()
	store := credentials.NewStore(kv, nil)
	return New(store, store, verifier, nil), kv
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t, nil)

	out, err := uc.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "Registration successful", out.Message)
	require.NotNil(t, out.Navigate)
	assert.Equal(t, domain.ViewLogin, out.Navigate.To)
	assert.Equal(t, domain.NavigatePush, out.Navigate.Mode)

	out, err = uc.Login(ctx, LoginInput{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	require.NotNil(t, out.Navigate)
	assert.Equal(t, domain.ViewDashboard, out.Navigate.To)

	guard := uc.Guard(ctx)
	assert.True(t, guard.Allowed)
	assert.Equal(t, "A", guard.DisplayName)
}

func TestLoginWrongPasswordKeepsVisitorOut(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t, nil)
	_, err := uc.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	out, err := uc.Login(ctx, LoginInput{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, "Invalid email or password", out.Message)
	assert.Nil(t, out.Navigate)
	assert.False(t, uc.Guard(ctx).Allowed)
}

func TestLoginUnknownEmailSameMessage(t *testing.T) {
	uc, _ := newUseCase(t, nil)
	out, err := uc.Login(context.Background(), LoginInput{Email: "ghost@x.com", Password: "p"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, "Invalid email or password", out.Message)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	uc, kv := newUseCase(t, nil)
	_, err := uc.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	before, err := kv.Get(ctx, credentials.KeyUsers)
	require.NoError(t, err)

	out, err := uc.Register(ctx, RegisterInput{Name: "B", Email: "a@x.com", Password: "q"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.Equal(t, "User already registered", out.Message)
	assert.Nil(t, out.Navigate)

	after, err := kv.Get(ctx, credentials.KeyUsers)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	ctx := context.Background()
	uc, kv := newUseCase(t, nil)

	for _, in := range []RegisterInput{
		{Email: "a@x.com", Password: "p"},
		{Name: "A", Password: "p"},
		{Name: "A", Email: "a@x.com"},
	} {
		_, err := uc.Register(ctx, in)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	}
	assert.Equal(t, 0, kv.Len())
}

func TestGuardWithoutSessionRedirects(t *testing.T) {
	uc, _ := newUseCase(t, nil)
	guard := uc.Guard(context.Background())

	assert.False(t, guard.Allowed)
	require.NotNil(t, guard.Redirect)
	assert.Equal(t, domain.ViewLogin, guard.Redirect.To)
	assert.Equal(t, domain.NavigateReplace, guard.Redirect.Mode)
}

func TestLogoutWipesEverything(t *testing.T) {
	ctx := context.Background()
	uc, kv := newUseCase(t, nil)
	_, err := uc.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	_, err = uc.Login(ctx, LoginInput{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	out, err := uc.Logout(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewLogin, out.Navigate.To)
	assert.False(t, uc.Guard(ctx).Allowed)
	assert.Equal(t, 0, kv.Len())

	_, err = uc.Login(ctx, LoginInput{Email: "a@x.com", Password: "p"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestBcryptVerifierStoresHashes(t *testing.T) {
	ctx := context.Background()
	uc, kv := newUseCase(t, BcryptVerifier{Cost: 4})

	_, err := uc.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	raw, err := kv.Get(ctx, credentials.KeyUsers)
	require.NoError(t, err)
	assert.NotContains(t, raw, "secret")

	_, err = uc.Login(ctx, LoginInput{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
}

type sessionRepoMock struct {
	mock.Mock
}

func (m *sessionRepoMock) GetSession(ctx context.Context) (*domain.User, bool) {
	args := m.Called(ctx)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Bool(1)
}

func (m *sessionRepoMock) SetSession(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *sessionRepoMock) ClearSession(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestLoginSurfacesSessionWriteFailure(t *testing.T) {
	ctx := context.Background()
	store := credentials.NewStore(memory.NewStore(), nil)
	require.NoError(t, store.AddUser(ctx, domain.User{Name: "A", Email: "a@x.com", Password: "p"}))

	sessions := &sessionRepoMock{}
	sessions.On("SetSession", ctx, mock.AnythingOfType("domain.User")).Return(assert.AnError)

	uc := New(store, sessions, PlaintextVerifier{}, nil)
	out, err := uc.Login(ctx, LoginInput{Email: "a@x.com", Password: "p"})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInternal))
	assert.Nil(t, out.Navigate)
	sessions.AssertExpectations(t)
}

func TestLogoutSurfacesClearFailure(t *testing.T) {
	ctx := context.Background()
	sessions := &sessionRepoMock{}
	sessions.On("ClearSession", ctx).Return(assert.AnError)

	uc := New(credentials.NewStore(memory.NewStore(), nil), sessions, nil, nil)
	_, err := uc.Logout(ctx)
	assert.ErrorIs(t, err, assert.AnError)
	sessions.AssertExpectations(t)
}
