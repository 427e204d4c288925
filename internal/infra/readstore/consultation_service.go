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

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

const listEnabledServicesQuery = `
SELECT id, name, description, duration_min, deposit_cents, sort_order
FROM consultation_services
WHERE enabled
ORDER BY sort_order, name`

func (r *ServiceReadStore) ListEnabled(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, listEnabledServicesQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list consultation services", err)
	}
	defer rows.Close()

	var views []*queries.ServiceView
	for rows.Next() {
		var (
			id           pgtype.UUID
			name         string
			description  pgtype.Text
			durationMin  int32
			depositCents int64
			sortOrder    int32
		)
		if err := rows.Scan(&id, &name, &description, &durationMin, &depositCents, &sortOrder); err != nil {
			return nil, infra.WrapRepoErr("failed to scan consultation service", err)
		}
		views = append(views, &queries.ServiceView{
			ID:           pgconv.UUIDFromPgtype(id),
			Name:         name,
			Description:  pgconv.StringPtrFromPgtype(description),
			DurationMin:  durationMin,
			DepositCents: depositCents,
			SortOrder:    sortOrder,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read consultation services", err)
	}

	return views, nil
}

const serviceSnapshotQuery = `
SELECT id, name, deposit_cents, enabled
FROM consultation_services
WHERE id = $1`

func (r *ServiceReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	row := r.db.QueryRow(ctx, serviceSnapshotQuery, pgconv.UUIDToPgtype(id))

	var (
		serviceID    pgtype.UUID
		name         string
		depositCents int64
		enabled      bool
	)
	err := row.Scan(&serviceID, &name, &depositCents, &enabled)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("consultation service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find consultation service", err)
	}

	return &shared.ServiceSnapshot{
		ID:           pgconv.UUIDFromPgtype(serviceID),
		Name:         name,
		DepositCents: depositCents,
		Enabled:      enabled,
	}, nil
}
