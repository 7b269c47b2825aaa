package reporting

import (
	"github.com/vfg2006/ads-reporter/internal/domain"
	"github.com/vfg2006/ads-reporter/pkg/log"
)

// JoinInsights casa as linhas de insight de nível de anúncio com o catálogo
// e devolve as folhas da árvore de agregação. Duas políticas valem aqui:
// linha sem anúncio correspondente no catálogo é descartada com log (nunca
// derruba a conta) e linha com investimento zero não entra no relatório.
func JoinInsights(catalog *domain.Catalog, rows []*domain.InsightRow, roleByType map[string]domain.ActionRole) []*domain.AdNode {
	adByID := catalog.AdByID()

	nodes := make([]*domain.AdNode, 0, len(rows))
	for _, row := range rows {
		ad, ok := adByID[row.EntityID]
		if !ok {
			log.L.WithFields(log.Fields{
				"ad_id": row.EntityID,
				"spend": row.Spend,
			}).Warn("Insight de anúncio fora do catálogo, descartando linha")
			continue
		}

		if row.Spend == 0 {
			continue
		}

		nodes = append(nodes, &domain.AdNode{
			Ad: ad,
			Metrics: domain.MetricSnapshot{
				Spend:  row.Spend,
				Leads:  row.CountActions(roleByType, domain.ActionRoleLead),
				Clicks: row.CountActions(roleByType, domain.ActionRoleClick),
			},
		})
	}

	return nodes
}

// accountTotalsFromRows soma as linhas de nível de conta da janela anterior.
// A exclusão de gasto zero não se aplica: o baseline precisa refletir o
// período inteiro, mesmo que vazio.
func accountTotalsFromRows(rows []*domain.InsightRow, roleByType map[string]domain.ActionRole) domain.AccountTotals {
	totals := domain.AccountTotals{}
	for _, row := range rows {
		totals.Spend += row.Spend
		totals.Leads += row.CountActions(roleByType, domain.ActionRoleLead)
		totals.Clicks += row.CountActions(roleByType, domain.ActionRoleClick)
	}
	return totals
}
