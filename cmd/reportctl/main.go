package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-reporter/infrastructure/database/postgres"
	"github.com/vfg2006/ads-reporter/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-reporter/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-reporter/infrastructure/integrator/telegram"
	"github.com/vfg2006/ads-reporter/infrastructure/integrator/telegram/telegramclient"
	"github.com/vfg2006/ads-reporter/infrastructure/repository"
	"github.com/vfg2006/ads-reporter/internal/config"
	"github.com/vfg2006/ads-reporter/internal/domain"
	"github.com/vfg2006/ads-reporter/internal/usecases/reporting"
)

type runFlags struct {
	Preset   string
	Accounts string
	Deliver  bool
	Verbose  bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "reportctl",
		Short:         "Geração de relatórios de anúncios pela linha de comando",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.AddCommand(newRunCommand())

	return cmd
}

func newRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Gera o relatório e imprime os segmentos no stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.Preset, "preset", string(domain.PresetYesterday), "Período: today|yesterday|last_7d")
	cmd.Flags().StringVar(&flags.Accounts, "accounts", "", "IDs externos de contas separados por vírgula (ignora o banco)")
	cmd.Flags().BoolVar(&flags.Deliver, "deliver", false, "Entrega os segmentos no Telegram além de imprimir")
	cmd.Flags().BoolVar(&flags.Verbose, "verbose", false, "Habilita logs de debug")

	return cmd
}

// staticLister serve contas passadas por flag, sem tocar o banco
type staticLister struct {
	externalIDs []string
}

func (l *staticLister) ListAccounts(_ []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	accounts := make([]*domain.AdAccount, 0, len(l.externalIDs))
	for _, id := range l.externalIDs {
		accounts = append(accounts, &domain.AdAccount{
			ID:         id,
			ExternalID: id,
			Name:       id,
			Status:     domain.AdAccountStatusActive,
		})
	}
	return accounts, nil
}

func runReport(ctx context.Context, flags *runFlags) error {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.SetLevel(logrus.WarnLevel)
	if flags.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	preset := domain.WindowPreset(flags.Preset)
	switch preset {
	case domain.PresetToday, domain.PresetYesterday, domain.PresetLast7Days:
	default:
		return fmt.Errorf("preset inválido %q; use today|yesterday|last_7d", flags.Preset)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	var lister reporting.AccountLister
	if flags.Accounts != "" {
		ids := make([]string, 0)
		for _, id := range strings.Split(flags.Accounts, ",") {
			if trimmed := strings.TrimSpace(id); trimmed != "" {
				ids = append(ids, trimmed)
			}
		}
		lister = &staticLister{externalIDs: ids}
	} else {
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		defer conn.Close()
		lister = repository.NewAccountRepository(conn)
	}

	metaIntegrator := meta.New(cfg, metaclient.NewClient(cfg))
	service := reporting.NewService(cfg, metaIntegrator, lister)

	report, err := service.GenerateReport(ctx, preset)
	if err != nil {
		return err
	}

	for i, segment := range report.Segments {
		if i > 0 {
			fmt.Println("\n--- segmento ---")
		}
		fmt.Println(segment)
	}

	if flags.Deliver {
		deliverer := telegram.New(cfg, telegramclient.NewClient(cfg))
		if err := deliverer.DeliverSegments(ctx, report.Segments); err != nil {
			return fmt.Errorf("erro ao entregar os segmentos: %w", err)
		}
	}

	if report.Status == domain.RunFailed {
		return fmt.Errorf("nenhuma conta pôde ser processada")
	}

	return nil
}
