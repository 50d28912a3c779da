package repository

import (
	"context"

	"github.com/fastygo/agrofocus/domain"
)

type UserRepository interface {
	ListUsers(ctx context.Context) []domain.User
	AddUser(ctx context.Context, user domain.User) error
}
