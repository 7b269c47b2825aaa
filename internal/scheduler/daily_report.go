package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-reporter/internal/config"
	"github.com/vfg2006/ads-reporter/internal/domain"
	"github.com/vfg2006/ads-reporter/internal/usecases/reporting"
)

// DailyReportConfig representa a configuração do agendador do relatório diário
type DailyReportConfig struct {
	CronSchedule string
	Preset       domain.WindowPreset
	Enabled      bool
}

// DailyReportService agenda a geração do relatório diário e a entrega dos
// segmentos no Telegram
type DailyReportService struct {
	scheduler *gocron.Scheduler
	config    DailyReportConfig
	reporter  reporting.Reporter
	deliverer reporting.Deliverer

	runMutex          sync.Mutex
	runRunning        bool
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
	lastRunStatus     domain.RunStatus
	lastRunError      string
}

// NewDailyReportService cria uma nova instância do agendador do relatório diário
func NewDailyReportService(
	reporter reporting.Reporter,
	deliverer reporting.Deliverer,
	appConfig *config.Config,
) *DailyReportService {
	reportConfig := DailyReportConfig{
		CronSchedule: appConfig.DailyReport.CronSchedule,
		Preset:       domain.WindowPreset(appConfig.DailyReport.Preset),
		Enabled:      appConfig.DailyReport.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"preset":        string(reportConfig.Preset),
		"enabled":       reportConfig.Enabled,
	}).Info("Configuração do agendador do relatório diário carregada")

	return &DailyReportService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reportConfig,
		reporter:  reporter,
		deliverer: deliverer,
	}
}

// Start inicia o agendador
func (s *DailyReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Relatório diário desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDailyReport(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o relatório diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório diário")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualRun dispara uma execução fora do horário agendado
func (s *DailyReportService) TriggerManualRun(ctx context.Context) error {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		return reporting.ErrRunInProgress
	}
	s.runMutex.Unlock()

	go s.runDailyReport(ctx)
	return nil
}

// runDailyReport gera o relatório e entrega os segmentos. Execução
// sobreposta é ignorada; a entrega para na primeira falha para nunca
// publicar segmentos fora de ordem.
func (s *DailyReportService) runDailyReport(ctx context.Context) {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Relatório diário já em andamento, ignorando")
		return
	}
	s.runRunning = true
	s.lastRunStartedAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.lastRunFinishedAt = time.Now()
		s.runMutex.Unlock()
	}()

	logrus.WithField("preset", string(s.config.Preset)).Info("Iniciando geração do relatório diário")

	report, err := s.reporter.GenerateReport(ctx, s.config.Preset)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar o relatório diário")
		s.setLastRunError(err)
		return
	}

	if err := s.deliverer.DeliverSegments(ctx, report.Segments); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"run_id":   report.RunID,
			"segments": len(report.Segments),
		}).Error("Erro ao entregar o relatório diário")
		s.setLastRunError(err)
		return
	}

	s.runMutex.Lock()
	s.lastRunStatus = report.Status
	s.lastRunError = ""
	s.runMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"run_id":   report.RunID,
		"status":   string(report.Status),
		"segments": len(report.Segments),
	}).Info("Relatório diário entregue")
}

func (s *DailyReportService) setLastRunError(err error) {
	s.runMutex.Lock()
	s.lastRunError = err.Error()
	s.runMutex.Unlock()
}

// GetStatus retorna o estado corrente do agendador para a API
func (s *DailyReportService) GetStatus() map[string]interface{} {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := map[string]interface{}{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"preset":        string(s.config.Preset),
		"running":       s.runRunning,
	}

	if !s.lastRunStartedAt.IsZero() {
		status["last_run_started_at"] = s.lastRunStartedAt.Format(time.RFC3339)
	}
	if !s.lastRunFinishedAt.IsZero() {
		status["last_run_finished_at"] = s.lastRunFinishedAt.Format(time.RFC3339)
		status["last_run_status"] = string(s.lastRunStatus)
	}
	if s.lastRunError != "" {
		status["last_run_error"] = s.lastRunError
	}

	return status
}
