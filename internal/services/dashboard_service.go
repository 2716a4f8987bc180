package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/finboardhq/finboard/internal/apperrors"
	"github.com/finboardhq/finboard/internal/format"
	"github.com/finboardhq/finboard/internal/models"
	"github.com/finboardhq/finboard/internal/repository"
)

// CardData holds the dashboard overview numbers. The amount totals are
// formatted to currency; the counts stay numeric.
type CardData struct {
	NumberOfInvoices  int64  `json:"number_of_invoices"`
	NumberOfCustomers int64  `json:"number_of_customers"`
	TotalPaid         string `json:"total_paid_invoices"`
	TotalPending      string `json:"total_pending_invoices"`
}

// RevenueChart holds the revenue series together with its chart axis labels.
type RevenueChart struct {
	Revenue  []models.Revenue `json:"revenue"`
	YAxis    []string         `json:"y_axis_labels"`
	TopLabel int64            `json:"top_label"`
}

// DashboardService aggregates the queries behind the overview page.
type DashboardService struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	revenue   repository.RevenueRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
	revenue repository.RevenueRepository,
) *DashboardService {
	return &DashboardService{
		invoices:  invoices,
		customers: customers,
		revenue:   revenue,
	}
}

// CardData issues the three independent aggregate queries concurrently and
// joins them before returning. The queries share no state; a failure in any
// one fails the whole operation.
func (s *DashboardService) CardData(ctx context.Context) (*CardData, error) {
	const op = "DashboardService.CardData"

	var (
		invoiceCount  int64
		customerCount int64
		totals        *models.StatusTotals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = s.invoices.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.customers.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.invoices.StatusTotals(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.Database("Failed to fetch card data.").
			Wrap(err).
			WithInternal("%s", op)
	}

	return &CardData{
		NumberOfInvoices:  invoiceCount,
		NumberOfCustomers: customerCount,
		TotalPaid:         format.Currency(totals.Paid),
		TotalPending:      format.Currency(totals.Pending),
	}, nil
}

// Revenue returns the monthly revenue series with Y-axis labels derived
// from the highest month rounded up to the nearest thousand.
func (s *DashboardService) Revenue(ctx context.Context) (*RevenueChart, error) {
	const op = "DashboardService.Revenue"

	rows, err := s.revenue.All(ctx)
	if err != nil {
		return nil, apperrors.Database("Failed to fetch revenue data.").
			Wrap(err).
			WithInternal("%s", op)
	}

	values := make([]int64, len(rows))
	for i, row := range rows {
		values[i] = row.Revenue
	}
	labels, top := format.YAxis(values)

	return &RevenueChart{
		Revenue:  rows,
		YAxis:    labels,
		TopLabel: top,
	}, nil
}
