package readstore

import (
	"context"

	"maison-booking/internal/infra"
	"maison-booking/internal/infra/db"
	"maison-booking/internal/pkg/pgconv"
	"maison-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

// Codes are stored upper-case; normalizing in SQL keeps lookups
// insensitive to however the customer typed the code.
const couponByCodeQuery = `
SELECT id, code, amount_off_cents, percent_off, valid_from, valid_to
FROM coupons
WHERE code = upper(btrim($1))`

func (r *CouponReadStore) SnapshotByCode(ctx context.Context, code string) (*shared.CouponSnapshot, error) {
	row := r.db.QueryRow(ctx, couponByCodeQuery, code)

	var (
		id                   pgtype.UUID
		storedCode           string
		amountOffCents       pgtype.Int4
		percentOff           pgtype.Float8
		validFrom, validTo   pgtype.Timestamptz
	)
	err := row.Scan(&id, &storedCode, &amountOffCents, &percentOff, &validFrom, &validTo)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	percent, err := pgconv.Float64PtrFromPgtype(percentOff)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid percent_off value", err)
	}

	return &shared.CouponSnapshot{
		ID:             pgconv.UUIDFromPgtype(id),
		Code:           storedCode,
		AmountOffCents: pgconv.Int32PtrFromPgtype(amountOffCents),
		PercentOff:     percent,
		ValidFrom:      pgconv.TimePtrFromPgtype(validFrom),
		ValidTo:        pgconv.TimePtrFromPgtype(validTo),
	}, nil
}
