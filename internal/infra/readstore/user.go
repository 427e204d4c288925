package readstore

import (
	"context"

	"maison-booking/internal/infra"
	"maison-booking/internal/infra/db"
	"maison-booking/internal/pkg/pgconv"
	"maison-booking/internal/usecase/queries"
	"maison-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const authByEmailQuery = `
SELECT id, email, password_hash, role, is_active
FROM users
WHERE lower(email) = lower($1)`

func (r *UserReadStore) FindAuthByEmail(ctx context.Context, email string) (*shared.AuthUserSnapshot, error) {
	row := r.db.QueryRow(ctx, authByEmailQuery, email)

	var (
		id                        pgtype.UUID
		storedEmail, passwordHash string
		role                      string
		isActive                  bool
	)
	err := row.Scan(&id, &storedEmail, &passwordHash, &role, &isActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return &shared.AuthUserSnapshot{
		ID:           pgconv.UUIDFromPgtype(id),
		Email:        storedEmail,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     isActive,
	}, nil
}

const userByIDQuery = `
SELECT id, email, role, is_active
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.db.QueryRow(ctx, userByIDQuery, pgconv.UUIDToPgtype(id))

	var (
		userID   pgtype.UUID
		email    string
		role     string
		isActive bool
	)
	err := row.Scan(&userID, &email, &role, &isActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.AuthorizedUserView{
		ID:       pgconv.UUIDFromPgtype(userID),
		Email:    email,
		Role:     role,
		IsActive: isActive,
	}, nil
}
