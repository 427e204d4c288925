package commands

import (
	"context"

	"maison-booking/internal/domain/user"
	"maison-booking/internal/infra"
	"maison-booking/internal/pkg/errs"
	"maison-booking/internal/pkg/jwt"
	"maison-booking/internal/pkg/password"
	"maison-booking/internal/usecase/queries"
	"maison-booking/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user account is inactive")
)

type LoginResult struct {
	AccessToken string
	User        *queries.AuthorizedUserView
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	users      queries.UserReadStore
	jwtService *jwt.Service
	uow        shared.UnitOfWork
}

func NewAuthCommands(users queries.UserReadStore, jwtService *jwt.Service, uow shared.UnitOfWork) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		jwtService: jwtService,
		uow:        uow,
	}
}

func (c *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	snap, err := c.users.FindAuthByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a bad password so probing for accounts fails.
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !snap.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(snap.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	token, err := c.jwtService.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), snap.ID)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &LoginResult{
		AccessToken: token,
		User: &queries.AuthorizedUserView{
			ID:       snap.ID,
			Email:    snap.Email,
			Role:     snap.Role,
			IsActive: snap.IsActive,
		},
	}, nil
}
