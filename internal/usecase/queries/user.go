package queries

import (
	"context"

	"maison-booking/internal/infra"
	"maison-booking/internal/pkg/errs"
	"maison-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound     = errs.New("user not found")
	ErrUserLookupFailed = errs.New("user lookup failed")
)

type UserReadStore interface {
	FindAuthByEmail(ctx context.Context, email string) (*shared.AuthUserSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	users UserReadStore
}

func NewUserQueries(users UserReadStore) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrUserLookupFailed)
	}
	return view, nil
}
