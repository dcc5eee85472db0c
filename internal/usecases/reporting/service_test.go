package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/order-reports-api/infrastructure/repository/mocks"
	"github.com/vfg2006/order-reports-api/internal/config"
	"github.com/vfg2006/order-reports-api/internal/domain"
	"github.com/vfg2006/order-reports-api/internal/usecases/site"
)

var acmeSite = &domain.Site{
	ID:          "64f1c2d3e4a5b6c7d8e9f0a1",
	Slug:        "acme",
	DisplayName: "Acme Burgers",
}

func newTestService(t *testing.T) (*Service, *mocks.MockSiteRepository, *mocks.MockOrderRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	siteRepo := mocks.NewMockSiteRepository(ctrl)
	orderRepo := mocks.NewMockOrderRepository(ctrl)

	cfg := &config.Config{
		Reporting: config.Reporting{
			Timezone:          "America/New_York",
			DayLookaheadHours: 6,
		},
	}

	service := &Service{
		cfg:             cfg,
		siteResolver:    site.NewService(siteRepo),
		orderRepository: orderRepo,
		now: func() time.Time {
			return time.Date(2024, 7, 20, 15, 0, 0, 0, time.UTC)
		},
	}

	return service, siteRepo, orderRepo
}

func TestDashboard_CustomWindow(t *testing.T) {
	service, siteRepo, orderRepo := newTestService(t)
	ctx := context.Background()

	siteRepo.EXPECT().GetBySlug(ctx, "acme").Return(acmeSite, nil)

	// Dois pedidos do cliente A no dia 1, um do cliente B no dia 3
	orders := []*domain.Order{
		orderAt(t, "2024-07-01 11:00", "+15550001", "", 1000, "Burger"),
		orderAt(t, "2024-07-01 19:30", "+15550001", "", 500, "Fries"),
		orderAt(t, "2024-07-03 12:00", "+15550002", "", 2000, "Burger"),
	}
	orderRepo.EXPECT().
		ListByWindow(ctx, acmeSite.ID, gomock.Any(), gomock.Any()).
		Return(orders, nil)

	report, err := service.Dashboard(ctx, ReportParams{
		Site: "acme",
		Mode: domain.ModeCustom,
		Custom: &domain.CustomRange{
			StartDate: "2024-07-01",
			EndDate:   "2024-07-03",
		},
	})
	assert.NoError(t, err)

	assert.Equal(t, acmeSite, report.Site)
	assert.Equal(t, domain.ModeCustom, report.Mode)
	assert.Equal(t, "America/New_York", report.Timezone)

	// Três dias, com o dia 2 preenchido com zeros
	assert.Equal(t, []string{"Jul 01", "Jul 02", "Jul 03"}, report.Labels)
	assert.Equal(t, []int{2, 0, 1}, report.Orders)
	assert.Equal(t, []float64{15.00, 0, 20.00}, report.Revenue)
	assert.Equal(t, []int{1, 0, 1}, report.Customers)

	assert.Equal(t, 3, report.Totals.Orders)
	assert.Equal(t, 35.00, report.Totals.Revenue)
	assert.Equal(t, 2, report.Totals.Customers)
	assert.Equal(t, 2, report.Totals.Items)
}

func TestDashboard_WeekModeQueriesPlannedWindow(t *testing.T) {
	service, siteRepo, orderRepo := newTestService(t)
	ctx := context.Background()

	siteRepo.EXPECT().GetBySlug(ctx, "acme").Return(acmeSite, nil)

	// now = 2024-07-20 15:00 UTC = 11:00 em Nova York; a semana cobre os dias
	// locais 14 a 20 de julho
	expectedStart := time.Date(2024, 7, 14, 4, 0, 0, 0, time.UTC)
	expectedEnd := time.Date(2024, 7, 21, 4, 0, 0, 0, time.UTC)

	orderRepo.EXPECT().
		ListByWindow(ctx, acmeSite.ID, expectedStart, expectedEnd).
		Return(nil, nil)

	report, err := service.Dashboard(ctx, ReportParams{Site: "acme", Mode: domain.ModeWeek})
	assert.NoError(t, err)

	assert.Len(t, report.Labels, 7)
	assert.Equal(t, "Sunday", report.Labels[0])
	assert.Equal(t, "Saturday", report.Labels[6])
	assert.Equal(t, expectedStart, report.Window.Start)
	assert.Equal(t, expectedEnd, report.Window.End)
	assert.Equal(t, 0, report.Totals.Orders)
}

func TestDashboard_ValidationErrors(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Dashboard(ctx, ReportParams{Mode: domain.ModeWeek})
	assert.ErrorIs(t, err, ErrSiteRequired)

	_, err = service.Dashboard(ctx, ReportParams{Site: "acme", Mode: domain.Mode("year")})
	assert.ErrorIs(t, err, ErrInvalidMode)

	_, err = service.Dashboard(ctx, ReportParams{Site: "acme", Mode: domain.ModeCustom})
	assert.ErrorIs(t, err, ErrMissingRange)

	_, err = service.Dashboard(ctx, ReportParams{
		Site:   "acme",
		Mode:   domain.ModeCustom,
		Custom: &domain.CustomRange{StartDate: "2024-07-01", EndDate: ""},
	})
	assert.ErrorIs(t, err, ErrMissingRange)
}

func TestDashboard_SiteNotFound(t *testing.T) {
	service, siteRepo, _ := newTestService(t)
	ctx := context.Background()

	siteRepo.EXPECT().GetBySlug(ctx, "ghost").Return(nil, nil)

	_, err := service.Dashboard(ctx, ReportParams{Site: "ghost", Mode: domain.ModeWeek})
	assert.ErrorIs(t, err, site.ErrSiteNotFound)
}

func TestDashboard_RepositoryFailure(t *testing.T) {
	service, siteRepo, orderRepo := newTestService(t)
	ctx := context.Background()

	siteRepo.EXPECT().GetBySlug(ctx, "acme").Return(acmeSite, nil)
	orderRepo.EXPECT().
		ListByWindow(ctx, acmeSite.ID, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := service.Dashboard(ctx, ReportParams{Site: "acme", Mode: domain.ModeWeek})
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestOrdersByRange_KeepsAwaitingPayment(t *testing.T) {
	service, siteRepo, orderRepo := newTestService(t)
	ctx := context.Background()

	siteRepo.EXPECT().GetBySlug(ctx, "acme").Return(acmeSite, nil)

	pending := orderAt(t, "2024-07-01 10:00", "+15550009", "", 9999, "Pizza")
	pending.Status = "awaiting_payment"
	paid := orderAt(t, "2024-07-01 15:00", "+15550011", "", 1200, "Salad")

	orderRepo.EXPECT().
		ListByWindow(ctx, acmeSite.ID, gomock.Any(), gomock.Any()).
		Return([]*domain.Order{pending, paid}, nil)

	report, err := service.OrdersByRange(ctx, ReportParams{
		Site: "acme",
		Mode: domain.ModeCustom,
		Custom: &domain.CustomRange{
			StartDate: "2024-07-01",
			EndDate:   "2024-07-01",
		},
	})
	assert.NoError(t, err)

	// A lista crua não filtra por status
	assert.Equal(t, 2, report.Count)
	assert.Len(t, report.Orders, 2)
}

func TestOrdersByDay_FiltersByLocalDate(t *testing.T) {
	service, siteRepo, orderRepo := newTestService(t)
	ctx := context.Background()

	siteRepo.EXPECT().GetBySlug(ctx, "acme").Return(acmeSite, nil)

	dayStart := time.Date(2024, 7, 1, 4, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2024, 7, 2, 4, 0, 0, 0, time.UTC)

	inDay := orderAt(t, "2024-07-01 23:30", "+15550001", "", 700, "Burger")
	nextDay := orderAt(t, "2024-07-02 01:00", "+15550002", "", 900, "Soda")

	// A consulta é alargada pelo lookahead, mas a pertinência ao dia é
	// decidida pela data local
	orderRepo.EXPECT().
		ListByWindow(ctx, acmeSite.ID, dayStart, dayEnd.Add(6*time.Hour)).
		Return([]*domain.Order{inDay, nextDay}, nil)

	report, err := service.OrdersByDay(ctx, "acme", "2024-07-01")
	assert.NoError(t, err)

	assert.Equal(t, 1, report.Count)
	assert.Equal(t, inDay.ID, report.Orders[0].ID)

	// Os limites da resposta são sempre os do dia exato, sem o lookahead
	assert.Equal(t, dayStart, report.Window.Start)
	assert.Equal(t, dayEnd, report.Window.End)
}

func TestOrdersByDay_InvalidDate(t *testing.T) {
	service, siteRepo, _ := newTestService(t)
	ctx := context.Background()

	siteRepo.EXPECT().GetBySlug(ctx, "acme").Return(acmeSite, nil)

	_, err := service.OrdersByDay(ctx, "acme", "01/07/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestOrdersByDay_SiteRequired(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.OrdersByDay(context.Background(), "", "2024-07-01")
	assert.ErrorIs(t, err, ErrSiteRequired)
}

func TestDashboard_ResolvesCanonicalID(t *testing.T) {
	service, siteRepo, orderRepo := newTestService(t)
	ctx := context.Background()

	siteRepo.EXPECT().GetByID(ctx, acmeSite.ID).Return(acmeSite, nil)
	orderRepo.EXPECT().
		ListByWindow(ctx, acmeSite.ID, gomock.Any(), gomock.Any()).
		Return(nil, nil)

	report, err := service.Dashboard(ctx, ReportParams{Site: acmeSite.ID, Mode: domain.ModeMonth})
	assert.NoError(t, err)
	assert.Len(t, report.Labels, 30)
}
