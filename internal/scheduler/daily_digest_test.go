package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	repomocks "github.com/vfg2006/order-reports-api/infrastructure/repository/mocks"
	"github.com/vfg2006/order-reports-api/internal/domain"
	"github.com/vfg2006/order-reports-api/internal/usecases/reporting"
	reportermocks "github.com/vfg2006/order-reports-api/internal/usecases/reporting/mocks"
)

func newTestDigest(t *testing.T) (*DailyDigestService, *repomocks.MockSiteRepository, *reportermocks.MockReporter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	siteRepo := repomocks.NewMockSiteRepository(ctrl)
	reporter := reportermocks.NewMockReporter(ctrl)

	service := &DailyDigestService{
		scheduler: gocron.NewScheduler(time.UTC),
		config: DailyDigestConfig{
			CronSchedule: "0 7 * * *",
			Enabled:      true,
			Timezone:     "America/New_York",
		},
		siteRepo: siteRepo,
		reporter: reporter,
		now: func() time.Time {
			// 02:30 UTC de 16 de julho = 22:30 de 15 de julho em Nova York:
			// ontem no fuso do relatório é 14 de julho
			return time.Date(2024, 7, 16, 2, 30, 0, 0, time.UTC)
		},
	}

	return service, siteRepo, reporter
}

func TestRunDigest_ReportsPreviousLocalDate(t *testing.T) {
	service, siteRepo, reporter := newTestDigest(t)
	ctx := context.Background()

	sites := []*domain.Site{
		{ID: "64f1c2d3e4a5b6c7d8e9f0a1", Slug: "acme"},
		{ID: "64f1c2d3e4a5b6c7d8e9f0a2", Slug: "casa-da-esquina"},
	}
	siteRepo.EXPECT().List(ctx).Return(sites, nil)

	expectedRange := &domain.CustomRange{StartDate: "2024-07-14", EndDate: "2024-07-14"}

	for _, st := range sites {
		reporter.EXPECT().
			Dashboard(ctx, reporting.ReportParams{
				Site:   st.Slug,
				Mode:   domain.ModeCustom,
				Custom: expectedRange,
			}).
			Return(&domain.DashboardReport{
				Site:   st,
				Totals: domain.TotalsPayload{Orders: 5, Revenue: 120.50, Customers: 4, Items: 7},
			}, nil)
	}

	service.RunDigest(ctx)

	assert.False(t, service.running)
	assert.Equal(t, service.now(), service.lastRunAt)
}

func TestRunDigest_ContinuesAfterSiteFailure(t *testing.T) {
	service, siteRepo, reporter := newTestDigest(t)
	ctx := context.Background()

	sites := []*domain.Site{
		{ID: "64f1c2d3e4a5b6c7d8e9f0a1", Slug: "acme"},
		{ID: "64f1c2d3e4a5b6c7d8e9f0a2", Slug: "casa-da-esquina"},
	}
	siteRepo.EXPECT().List(ctx).Return(sites, nil)

	// A falha no primeiro site não impede o resumo do segundo
	first := reporter.EXPECT().
		Dashboard(ctx, gomock.Any()).
		Return(nil, errors.New("connection refused"))
	reporter.EXPECT().
		Dashboard(ctx, gomock.Any()).
		Return(&domain.DashboardReport{Site: sites[1]}, nil).
		After(first)

	service.RunDigest(ctx)
}

func TestRunDigest_SkipsWhenAlreadyRunning(t *testing.T) {
	service, _, _ := newTestDigest(t)

	service.digestMutex.Lock()
	service.running = true
	service.digestMutex.Unlock()

	// Nenhuma expectativa nos mocks: a execução concorrente retorna cedo
	service.RunDigest(context.Background())
}

func TestRunDigest_ListFailure(t *testing.T) {
	service, siteRepo, _ := newTestDigest(t)
	ctx := context.Background()

	siteRepo.EXPECT().List(ctx).Return(nil, errors.New("connection refused"))

	service.RunDigest(ctx)
	assert.False(t, service.running)
}

func TestStart_DisabledDoesNothing(t *testing.T) {
	service, _, _ := newTestDigest(t)
	service.config.Enabled = false

	err := service.Start(context.Background())
	assert.NoError(t, err)
}

func TestPreviousLocalDate_UnknownTimezone(t *testing.T) {
	service, _, _ := newTestDigest(t)
	service.config.Timezone = "Not/AZone"

	_, err := service.previousLocalDate()
	assert.Error(t, err)
}
