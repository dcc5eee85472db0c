package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-reports-api/infrastructure/repository"
	"github.com/vfg2006/order-reports-api/internal/config"
	"github.com/vfg2006/order-reports-api/internal/domain"
	"github.com/vfg2006/order-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/order-reports-api/pkg/utils"
)

// DailyDigestConfig representa a configuração do agendador do resumo diário
type DailyDigestConfig struct {
	CronSchedule string
	Enabled      bool
	Timezone     string
}

// DailyDigestService agenda e executa o resumo diário de pedidos: para cada
// site, calcula o relatório do dia anterior e registra os totais nos logs.
// Nada é persistido; agregados são sempre recalculados sob demanda
type DailyDigestService struct {
	scheduler   *gocron.Scheduler
	config      DailyDigestConfig
	siteRepo    repository.SiteRepository
	reporter    reporting.Reporter
	digestMutex sync.Mutex
	running     bool
	lastRunAt   time.Time
	now         func() time.Time
}

// NewDailyDigestService cria uma nova instância do serviço de resumo diário
func NewDailyDigestService(
	siteRepo repository.SiteRepository,
	reporter reporting.Reporter,
	appConfig *config.Config,
) *DailyDigestService {
	digestConfig := DailyDigestConfig{
		CronSchedule: appConfig.DailyDigest.CronSchedule,
		Enabled:      appConfig.DailyDigest.Enabled,
		Timezone:     appConfig.Reporting.Timezone,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
		"enabled":       digestConfig.Enabled,
		"timezone":      digestConfig.Timezone,
	}).Info("Configuração do agendador do resumo diário carregada")

	return &DailyDigestService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    digestConfig,
		siteRepo:  siteRepo,
		reporter:  reporter,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *DailyDigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Resumo diário desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do resumo diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunDigest(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo diário: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do resumo diário")
		s.scheduler.Stop()
	}()

	return nil
}

// RunDigest executa o resumo do dia anterior para todos os sites. Execuções
// concorrentes são ignoradas; cada execução ganha um run_id próprio nos logs
func (s *DailyDigestService) RunDigest(ctx context.Context) {
	s.digestMutex.Lock()
	if s.running {
		s.digestMutex.Unlock()
		logrus.Info("Resumo diário já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastRunAt = s.now()
	s.digestMutex.Unlock()

	defer func() {
		s.digestMutex.Lock()
		s.running = false
		s.digestMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}

	logger := logrus.WithField("run_id", runID)

	date, err := s.previousLocalDate()
	if err != nil {
		logger.WithError(err).Error("Erro ao determinar a data do resumo diário")
		return
	}

	sites, err := s.siteRepo.List(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao listar sites para o resumo diário")
		return
	}

	logger.WithFields(logrus.Fields{
		"date":  date,
		"sites": len(sites),
	}).Info("Resumo diário iniciado")

	for _, st := range sites {
		report, err := s.reporter.Dashboard(ctx, reporting.ReportParams{
			Site: st.Slug,
			Mode: domain.ModeCustom,
			Custom: &domain.CustomRange{
				StartDate: date,
				EndDate:   date,
			},
		})
		if err != nil {
			logger.WithFields(logrus.Fields{
				"site":  st.Slug,
				"error": err.Error(),
			}).Error("Erro ao calcular resumo diário do site")
			continue
		}

		logger.WithFields(logrus.Fields{
			"site":      st.Slug,
			"date":      date,
			"orders":    report.Totals.Orders,
			"revenue":   report.Totals.Revenue,
			"customers": report.Totals.Customers,
			"items":     report.Totals.Items,
		}).Info("Resumo diário do site")
	}

	logger.Info("Resumo diário concluído")
}

// previousLocalDate retorna a data de calendário de ontem no fuso do relatório
func (s *DailyDigestService) previousLocalDate() (string, error) {
	loc, err := time.LoadLocation(s.config.Timezone)
	if err != nil {
		return "", fmt.Errorf("fuso horário desconhecido %q: %w", s.config.Timezone, err)
	}

	localNow := s.now().In(loc)
	y, m, d := localNow.Date()

	return time.Date(y, m, d-1, 0, 0, 0, 0, loc).Format(time.DateOnly), nil
}
