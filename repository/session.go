package repository

import (
	"context"

	"github.com/fastygo/agrofocus/domain"
)

type SessionRepository interface {
	GetSession(ctx context.Context) (*domain.User, bool)
	SetSession(ctx context.Context, user domain.User) error
	ClearSession(ctx context.Context) error
}
