package reporting

import (
	"context"

	"github.com/vfg2006/ads-reporter/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// InsightSource é o contrato do cliente de dados remoto. Entidades e
// linhas de métricas vêm já convertidas para o domínio; falhas chegam
// tipadas (RemoteFetchError ou APIRejection do integrator).
type InsightSource interface {
	ListCampaigns(ctx context.Context, accountID string) ([]*domain.Campaign, error)
	ListAdSets(ctx context.Context, accountID string) ([]*domain.AdSet, error)
	ListAds(ctx context.Context, accountID string) ([]*domain.Ad, error)
	FetchInsights(ctx context.Context, accountID string, level domain.InsightLevel, entityIDs []string, window domain.TimeWindow) ([]*domain.InsightRow, error)
}

// AccountLister fornece a lista de contas a processar; satisfeita pelo
// repositório de contas.
type AccountLister interface {
	ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
}

// Deliverer recebe os segmentos prontos, em ordem; satisfeita pelo
// integrator do Telegram.
type Deliverer interface {
	DeliverSegments(ctx context.Context, segments []string) error
}

// Reporter é a interface do orquestrador exposta para a API e o agendador
type Reporter interface {
	GenerateReport(ctx context.Context, preset domain.WindowPreset) (*domain.Report, error)
	LastReport() *domain.Report
}
