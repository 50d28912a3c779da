package auth

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fastygo/agrofocus/domain"
	"github.com/fastygo/agrofocus/repository"
)

type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// GuardResult tells a protected view whether it may render.
type GuardResult struct {
	Allowed     bool
	DisplayName string
	User        *domain.User
	Redirect    *domain.Navigation
}

type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	verifier CredentialVerifier
	validate *validator.Validate
	logger   *zap.Logger
}

func New(users repository.UserRepository, sessions repository.SessionRepository, verifier CredentialVerifier, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if verifier == nil {
		verifier = PlaintextVerifier{}
	}
	return &UseCase{
		users:    users,
		sessions: sessions,
		verifier: verifier,
		validate: validator.New(),
		logger:   logger,
	}
}

// Register appends a new user. Only presence of the fields is checked.
func (uc *UseCase) Register(ctx context.Context, in RegisterInput) (domain.Outcome, error) {
	if err := uc.validate.Struct(in); err != nil {
		return domain.Outcome{Message: domain.ErrMissingFields.Message}, domain.WrapError(domain.ErrCodeInvalid, domain.ErrMissingFields.Message, err)
	}

	sealed, err := uc.verifier.Seal(in.Password)
	if err != nil {
		return domain.Outcome{}, domain.WrapError(domain.ErrCodeInternal, "failed to store credentials", err)
	}

	user := domain.User{Name: in.Name, Email: in.Email, Password: sealed}
	if err := uc.users.AddUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			uc.logger.Info("registration rejected, email taken", zap.String("email", in.Email))
			return domain.Outcome{Message: domain.ErrDuplicateEmail.Message}, err
		}
		return domain.Outcome{}, err
	}

	uc.logger.Info("user registered", zap.String("email", in.Email))
	return domain.Outcome{
		Message:  "Registration successful",
		Navigate: domain.Push(domain.ViewLogin),
	}, nil
}

// Login opens a session for the first user whose email and password match.
// A failure never says which of the two was wrong.
func (uc *UseCase) Login(ctx context.Context, in LoginInput) (domain.Outcome, error) {
	failed := domain.Outcome{Message: domain.ErrInvalidCredentials.Message}
	if err := uc.validate.Struct(in); err != nil {
		return failed, domain.ErrInvalidCredentials
	}

	for _, user := range uc.users.ListUsers(ctx) {
		if user.Email != in.Email || !uc.verifier.Verify(user.Password, in.Password) {
			continue
		}
		if err := uc.sessions.SetSession(ctx, user); err != nil {
			return domain.Outcome{}, domain.WrapError(domain.ErrCodeInternal, "failed to persist session", err)
		}
		uc.logger.Info("user logged in", zap.String("email", user.Email))
		return domain.Outcome{Navigate: domain.Push(domain.ViewDashboard)}, nil
	}

	uc.logger.Info("login rejected")
	return failed, domain.ErrInvalidCredentials
}

// Guard runs before a protected view renders.
func (uc *UseCase) Guard(ctx context.Context) GuardResult {
	user, ok := uc.sessions.GetSession(ctx)
	session := domain.Session{IsLoggedIn: ok}
	if ok {
		session.CurrentUser = *user
	}
	if !session.IsActive() {
		return GuardResult{Redirect: domain.Replace(domain.ViewLogin)}
	}
	return GuardResult{
		Allowed:     true,
		DisplayName: session.CurrentUser.DisplayName(),
		User:        &session.CurrentUser,
	}
}

// Logout clears local storage and sends the visitor back to login.
func (uc *UseCase) Logout(ctx context.Context) (domain.Outcome, error) {
	if err := uc.sessions.ClearSession(ctx); err != nil {
		return domain.Outcome{}, domain.WrapError(domain.ErrCodeInternal, "failed to clear session", err)
	}
	uc.logger.Info("session cleared")
	return domain.Outcome{Navigate: domain.Replace(domain.ViewLogin)}, nil
}
