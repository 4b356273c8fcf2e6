package queries

import (
	"context"

	"hotelbook/internal/domain/metrics"
)

type DashboardQueries interface {
	Summary(ctx context.Context) (*DashboardView, error)
}

type StayReadStore interface {
	ListStays(ctx context.Context) ([]metrics.Stay, error)
}

type dashboardQueriesImpl struct {
	readStore StayReadStore
	inventory int
}

func NewDashboardQueries(readStore StayReadStore, totalInventory int) DashboardQueries {
	return &dashboardQueriesImpl{
		readStore: readStore,
		inventory: totalInventory,
	}
}

func (q *dashboardQueriesImpl) Summary(ctx context.Context) (*DashboardView, error) {
	stays, err := q.readStore.ListStays(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := metrics.Aggregate(stays, q.inventory)

	perCategory := make(map[string]int, len(dashboard.PerCategory))
	for category, count := range dashboard.PerCategory {
		perCategory[string(category)] = count
	}

	return &DashboardView{
		TotalBookings:  dashboard.TotalBookings,
		TotalRevenue:   dashboard.TotalRevenue,
		AvailableRooms: dashboard.AvailableRooms,
		PerCategory:    perCategory,
	}, nil
}
