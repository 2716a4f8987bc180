package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboardhq/finboard/internal/apperrors"
	"github.com/finboardhq/finboard/internal/models"
	"github.com/finboardhq/finboard/internal/repository"
)

// stubInvoiceRepo records the arguments it was called with and returns
// canned results.
type stubInvoiceRepo struct {
	repository.InvoiceRepository

	listQuery  string
	listLimit  int
	listOffset int
	listRows   []models.InvoiceTableRow
	listErr    error

	count     int64
	countErr  error
	totals    *models.StatusTotals
	totalsErr error

	latest []models.LatestInvoice

	invoice *models.Invoice
	getErr  error
}

func (s *stubInvoiceRepo) ListFiltered(_ context.Context, query string, limit, offset int) ([]models.InvoiceTableRow, error) {
	s.listQuery, s.listLimit, s.listOffset = query, limit, offset
	return s.listRows, s.listErr
}

func (s *stubInvoiceRepo) CountFiltered(_ context.Context, _ string) (int64, error) {
	return s.count, s.countErr
}

func (s *stubInvoiceRepo) Count(_ context.Context) (int64, error) {
	return s.count, s.countErr
}

func (s *stubInvoiceRepo) StatusTotals(_ context.Context) (*models.StatusTotals, error) {
	return s.totals, s.totalsErr
}

func (s *stubInvoiceRepo) Latest(_ context.Context, _ int) ([]models.LatestInvoice, error) {
	return s.latest, nil
}

func (s *stubInvoiceRepo) GetByID(_ context.Context, _ string) (*models.Invoice, error) {
	return s.invoice, s.getErr
}

type stubCustomerRepo struct {
	repository.CustomerRepository

	rows  []models.CustomerTableRow
	count int64
	err   error
}

func (s *stubCustomerRepo) ListWithTotals(_ context.Context, _ string) ([]models.CustomerTableRow, error) {
	return s.rows, s.err
}

func (s *stubCustomerRepo) Count(_ context.Context) (int64, error) {
	return s.count, s.err
}

type stubRevenueRepo struct {
	rows []models.Revenue
	err  error
}

func (s *stubRevenueRepo) All(_ context.Context) ([]models.Revenue, error) {
	return s.rows, s.err
}

func TestFilteredInvoicesPaginationOffsets(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		expectedOffset int
	}{
		{name: "first page", page: 1, expectedOffset: 0},
		{name: "third page", page: 3, expectedOffset: 12},
		{name: "zero clamps to first", page: 0, expectedOffset: 0},
		{name: "negative clamps to first", page: -4, expectedOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubInvoiceRepo{}
			svc := NewInvoiceService(repo)

			_, err := svc.FilteredInvoices(context.Background(), "acme", tt.page)
			require.NoError(t, err)

			assert.Equal(t, "acme", repo.listQuery)
			assert.Equal(t, InvoicesPerPage, repo.listLimit)
			assert.Equal(t, tt.expectedOffset, repo.listOffset)
		})
	}
}

func TestFilteredInvoicesWrapsFailures(t *testing.T) {
	cause := errors.New("connection reset")
	svc := NewInvoiceService(&stubInvoiceRepo{listErr: cause})

	_, err := svc.FilteredInvoices(context.Background(), "", 1)
	require.Error(t, err)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeDatabase, appErr.Code)
	assert.Equal(t, "Failed to fetch invoices.", appErr.Message)
	assert.ErrorIs(t, err, cause)
}

func TestInvoicePages(t *testing.T) {
	tests := []struct {
		name     string
		count    int64
		expected int
	}{
		{name: "empty", count: 0, expected: 0},
		{name: "single partial page", count: 5, expected: 1},
		{name: "exact", count: 12, expected: 2},
		{name: "remainder rounds up", count: 13, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewInvoiceService(&stubInvoiceRepo{count: tt.count})

			pages, err := svc.InvoicePages(context.Background(), "")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pages)
		})
	}
}

func TestLatestInvoicesFormatsAmounts(t *testing.T) {
	svc := NewInvoiceService(&stubInvoiceRepo{latest: []models.LatestInvoice{
		{ID: "a", Name: "Amy Burns", Amount: 34577},
		{ID: "b", Name: "Balazs Orban", Amount: 542546},
	}})

	invoices, err := svc.LatestInvoices(context.Background())
	require.NoError(t, err)
	require.Len(t, invoices, 2)

	assert.Equal(t, "$345.77", invoices[0].FormattedAmount)
	assert.Equal(t, "$5,425.46", invoices[1].FormattedAmount)
}

func TestGetByIDConvertsToDollars(t *testing.T) {
	svc := NewInvoiceService(&stubInvoiceRepo{invoice: &models.Invoice{
		ID:         "inv-1",
		CustomerID: "cust-1",
		Amount:     125000,
		Status:     models.InvoiceStatusPaid,
	}})

	detail, err := svc.GetByID(context.Background(), "inv-1")
	require.NoError(t, err)

	assert.Equal(t, 1250.0, detail.Amount)
	assert.Equal(t, models.InvoiceStatusPaid, detail.Status)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewInvoiceService(&stubInvoiceRepo{getErr: repository.ErrNotFound})

	_, err := svc.GetByID(context.Background(), "missing")

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestFilteredCustomersFormatsZeroTotals(t *testing.T) {
	svc := NewCustomerService(&stubCustomerRepo{rows: []models.CustomerTableRow{
		{ID: "c1", Name: "Evil Rabbit", TotalInvoices: 0, TotalPending: 0, TotalPaid: 0},
		{ID: "c2", Name: "Delba de Oliveira", TotalInvoices: 3, TotalPending: 12500, TotalPaid: 857700},
	}})

	rows, err := svc.FilteredCustomers(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// A customer with zero invoices still appears, with zero aggregates.
	assert.Equal(t, int64(0), rows[0].TotalInvoices)
	assert.Equal(t, "$0.00", rows[0].FormattedPending)
	assert.Equal(t, "$0.00", rows[0].FormattedPaid)

	assert.Equal(t, "$125.00", rows[1].FormattedPending)
	assert.Equal(t, "$8,577.00", rows[1].FormattedPaid)
}

func TestCardDataJoinsAllAggregates(t *testing.T) {
	svc := NewDashboardService(
		&stubInvoiceRepo{count: 13, totals: &models.StatusTotals{Paid: 102000, Pending: 25600}},
		&stubCustomerRepo{count: 6},
		&stubRevenueRepo{},
	)

	cards, err := svc.CardData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(13), cards.NumberOfInvoices)
	assert.Equal(t, int64(6), cards.NumberOfCustomers)
	assert.Equal(t, "$1,020.00", cards.TotalPaid)
	assert.Equal(t, "$256.00", cards.TotalPending)
}

func TestCardDataFailsWhenAnyQueryFails(t *testing.T) {
	svc := NewDashboardService(
		&stubInvoiceRepo{count: 13, totalsErr: errors.New("timeout")},
		&stubCustomerRepo{count: 6},
		&stubRevenueRepo{},
	)

	_, err := svc.CardData(context.Background())

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeDatabase, appErr.Code)
	assert.Equal(t, "Failed to fetch card data.", appErr.Message)
}

func TestRevenueChartLabels(t *testing.T) {
	svc := NewDashboardService(
		&stubInvoiceRepo{},
		&stubCustomerRepo{},
		&stubRevenueRepo{rows: []models.Revenue{
			{Month: "Jan", Revenue: 1200},
			{Month: "Feb", Revenue: 4500},
			{Month: "Mar", Revenue: 2300},
		}},
	)

	chart, err := svc.Revenue(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(5000), chart.TopLabel)
	assert.Equal(t, []string{"$5K", "$4K", "$3K", "$2K", "$1K", "$0K"}, chart.YAxis)
}
