package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-reporter/internal/config"
	"github.com/vfg2006/ads-reporter/internal/domain"
	"github.com/vfg2006/ads-reporter/pkg/log"
	"github.com/vfg2006/ads-reporter/pkg/utils"
)

var (
	// ErrRunInProgress indica que já existe uma execução do pipeline ativa
	ErrRunInProgress = errors.New("já existe uma geração de relatório em andamento")
	// ErrNoReport indica que nenhuma execução completou ainda
	ErrNoReport = errors.New("nenhum relatório gerado até o momento")
)

// Service orquestra o pipeline de relatório: lista as contas, processa
// cada uma em paralelo com limite de workers, consolida os resultados na
// ordem de entrada e renderiza os segmentos. Uma execução por vez.
type Service struct {
	cfg      *config.Config
	source   InsightSource
	accounts AccountLister
	renderer *Renderer

	// injetável nos testes para janelas determinísticas
	now func() time.Time

	mutex      sync.Mutex
	running    bool
	lastReport *domain.Report
}

func NewService(cfg *config.Config, source InsightSource, accounts AccountLister) *Service {
	return &Service{
		cfg:      cfg,
		source:   source,
		accounts: accounts,
		renderer: NewRenderer(cfg),
		now:      time.Now,
	}
}

// GenerateReport executa o pipeline completo para o preset informado.
// Falha na listagem de contas é fatal (não há o que paralelizar); falha
// de conta individual vira aviso no relatório, nunca erro daqui.
func (s *Service) GenerateReport(ctx context.Context, preset domain.WindowPreset) (*domain.Report, error) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		return nil, ErrRunInProgress
	}
	s.running = true
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o ID da execução")
	}

	window := domain.ResolvePreset(preset, s.now())
	previousWindow := window.Previous()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_id": runID,
		"since":  window.Since.Format("2006-01-02"),
		"until":  window.Until.Format("2006-01-02"),
	})
	logger.Info("Iniciando geração de relatório")

	accounts, err := s.accounts.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar as contas de anúncio")
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Report.GlobalTimeoutSeconds)*time.Second)
	defer cancel()

	// Cada worker escreve apenas no seu índice, preservando a ordem de
	// entrada sem ordenação posterior.
	results := make([]*domain.AccountReport, len(accounts))

	maxConcurrent := s.cfg.Report.MaxConcurrentAccounts
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	semaphore := make(chan struct{}, maxConcurrent)

	var wg sync.WaitGroup
	for i, account := range accounts {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(index int, account *domain.AdAccount) {
			defer wg.Done()
			defer func() { <-semaphore }()

			results[index] = s.processAccount(ctx, account, window, previousWindow)
		}(i, account)
	}
	wg.Wait()

	report := s.consolidate(runID, window, previousWindow, results)
	report.Segments = s.renderer.RenderSegments(report)

	s.mutex.Lock()
	s.lastReport = report
	s.mutex.Unlock()

	logger.WithFields(log.Fields{
		"status":   string(report.Status),
		"accounts": len(report.Accounts),
		"segments": len(report.Segments),
	}).Info("Relatório gerado")

	return report, nil
}

// LastReport devolve o último relatório consolidado, ou nil
func (s *Service) LastReport() *domain.Report {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.lastReport
}

// processAccount roda a máquina de estados de uma conta. Qualquer falha
// congela a conta em StateFailed com a razão classificada; o pânico de um
// worker não pode derrubar os demais.
func (s *Service) processAccount(
	ctx context.Context,
	account *domain.AdAccount,
	window domain.TimeWindow,
	previousWindow domain.TimeWindow,
) (report *domain.AccountReport) {
	report = &domain.AccountReport{
		Account: account,
		State:   domain.StateIdle,
	}

	defer func() {
		if r := recover(); r != nil {
			log.L.WithFields(log.Fields{
				"account_id": account.ExternalID,
				"panic":      r,
			}).Error("Pânico ao processar conta")
			report.State = domain.StateFailed
			report.FailureReason = domain.FailureRemoteFetch
			report.FailureDetail = "erro inesperado ao processar a conta"
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Report.AccountTimeoutSeconds)*time.Second)
	defer cancel()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"account_id":   account.ExternalID,
		"account_name": account.DisplayName(),
	})

	report.State = domain.StateFetchingCatalog
	catalog, err := BuildCatalog(ctx, s.source, account.ExternalID, s.cfg.ObjectiveCategoryByRaw)
	if err != nil {
		s.failAccount(report, err, logger)
		return report
	}

	report.State = domain.StateFetchingInsights
	rows := make([]*domain.InsightRow, 0)
	for _, batch := range utils.ChunkStrings(catalog.AdIDs(), s.cfg.Report.InsightsBatchLimit) {
		batchRows, err := s.source.FetchInsights(ctx, account.ExternalID, domain.LevelAd, batch, window)
		if err != nil {
			s.failAccount(report, err, logger)
			return report
		}
		rows = append(rows, batchRows...)
	}

	previousRows, err := s.source.FetchInsights(ctx, account.ExternalID, domain.LevelAccount, nil, previousWindow)
	if err != nil {
		s.failAccount(report, err, logger)
		return report
	}

	report.State = domain.StateJoining
	leaves := JoinInsights(catalog, rows, s.cfg.ActionRoleByType)

	report.State = domain.StateAggregating
	report.Campaigns = BuildTree(catalog, leaves)
	report.Totals = TotalsOf(report.Campaigns)
	report.PreviousTotals = accountTotalsFromRows(previousRows, s.cfg.ActionRoleByType)
	report.Comparison = CompareTotals(report.Totals, report.PreviousTotals)
	report.BestAdSet, report.WorstAdSet = RankAdSets(report.Campaigns)

	report.State = domain.StateDone

	logger.WithFields(log.Fields{
		"campaigns": len(report.Campaigns),
		"spend":     report.Totals.Spend,
		"leads":     report.Totals.Leads,
	}).Info("Conta processada")

	return report
}

// failAccount classifica o erro nas quatro razões de falha do relatório
func (s *Service) failAccount(report *domain.AccountReport, err error, logger log.Logger) {
	report.State = domain.StateFailed
	report.FailureDetail = err.Error()

	var rejection *metadomain.APIRejection
	var fetchErr *metadomain.RemoteFetchError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		report.FailureReason = domain.FailureTimeout
	case errors.Is(err, context.Canceled):
		report.FailureReason = domain.FailureCancelled
	case errors.As(err, &rejection):
		report.FailureReason = domain.FailureAPIReject
	case errors.As(err, &fetchErr):
		report.FailureReason = domain.FailureRemoteFetch
	default:
		report.FailureReason = domain.FailureRemoteFetch
	}

	logger.WithError(err).WithFields(log.Fields{
		"reason": string(report.FailureReason),
		"state":  string(report.State),
	}).Error("Falha ao processar conta")
}

// consolidate monta o relatório final a partir dos resultados por conta.
// Os totais gerais somam apenas contas processadas com sucesso.
func (s *Service) consolidate(
	runID string,
	window domain.TimeWindow,
	previousWindow domain.TimeWindow,
	results []*domain.AccountReport,
) *domain.Report {
	report := &domain.Report{
		RunID:          runID,
		Window:         window,
		PreviousWindow: previousWindow,
		Accounts:       results,
		GeneratedAt:    s.now(),
	}

	failed := 0
	withActivity := 0
	for _, account := range results {
		if account.Failed() {
			failed++
			continue
		}
		report.Totals.AddTotals(account.Totals)
		report.PreviousTotals.AddTotals(account.PreviousTotals)
		if account.HasActivity() {
			withActivity++
		}
	}
	report.Comparison = CompareTotals(report.Totals, report.PreviousTotals)

	switch {
	case len(results) > 0 && failed == len(results):
		report.Status = domain.RunFailed
	case failed > 0:
		report.Status = domain.RunPartialFailure
	case withActivity == 0:
		report.Status = domain.RunEmpty
	default:
		report.Status = domain.RunDone
	}

	return report
}
