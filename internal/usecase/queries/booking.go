package queries

import (
	"context"

	"hotelbook/internal/domain/pricing"
	"hotelbook/internal/domain/receipt"
	"hotelbook/internal/infra"
	"hotelbook/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrBookingNotFound      = errs.New("booking not found")
	ErrReconciliationFailed = errs.New("reconciliation failed")
)

type BookingQueries interface {
	GetByID(ctx context.Context, id int64) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter) ([]*BookingListItem, error)
	Reconcile(ctx context.Context, id int64) (*ReconciliationView, error)
	ReconcileAll(ctx context.Context) ([]*ReconciliationView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	Search(ctx context.Context, filter BookingFilter) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	engine    *pricing.Engine
	taxRate   decimal.Decimal
}

func NewBookingQueries(readStore BookingReadStore, engine *pricing.Engine, taxRate decimal.Decimal) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
		engine:    engine,
		taxRate:   taxRate,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int64) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter) ([]*BookingListItem, error) {
	return q.readStore.Search(ctx, filter)
}

// Reconcile never mutates the stored total. It only reports whether the
// record still matches current rate and tax settings.
func (q *bookingQueriesImpl) Reconcile(ctx context.Context, id int64) (*ReconciliationView, error) {
	view, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return q.reconcileOne(view.ID, view.Category, view.Nights, view.StoredTotal)
}

// ReconcileAll audits every booking and reports each comparison, diverging
// or not.
func (q *bookingQueriesImpl) ReconcileAll(ctx context.Context) ([]*ReconciliationView, error) {
	items, err := q.readStore.Search(ctx, BookingFilter{})
	if err != nil {
		return nil, err
	}

	views := make([]*ReconciliationView, 0, len(items))
	for _, item := range items {
		view, err := q.reconcileOne(item.ID, item.Category, item.Nights, item.StoredTotal)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (q *bookingQueriesImpl) reconcileOne(id int64, category string, nights int, stored decimal.Decimal) (*ReconciliationView, error) {
	result, err := q.engine.Price(pricing.Category(category), nights, q.taxRate)
	if err != nil {
		return nil, errs.Mark(err, ErrReconciliationFailed)
	}

	comparison := pricing.ReconcileDefault(stored, result.GrandTotal)
	return &ReconciliationView{
		BookingID:  id,
		Reference:  receipt.FormatReferenceID(id),
		Stored:     comparison.Stored,
		Recomputed: comparison.Recomputed,
		Difference: comparison.Difference(),
		Diverges:   comparison.Diverges,
	}, nil
}
