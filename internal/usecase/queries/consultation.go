package queries

import (
	"context"

	"maison-booking/internal/pkg/errs"
)

var ErrServiceLookupFailed = errs.New("service lookup failed")

type ServiceReadStore interface {
	ListEnabled(ctx context.Context) ([]*ServiceView, error)
}

type ServiceQueries interface {
	// ListEnabled returns bookable consultation types sorted by sort order.
	ListEnabled(ctx context.Context) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	services ServiceReadStore
}

func NewServiceQueries(services ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{services: services}
}

func (q *serviceQueriesImpl) ListEnabled(ctx context.Context) ([]*ServiceView, error) {
	views, err := q.services.ListEnabled(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrServiceLookupFailed)
	}
	return views, nil
}
