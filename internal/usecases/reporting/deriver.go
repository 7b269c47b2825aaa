package reporting

import (
	"github.com/vfg2006/ads-reporter/internal/domain"
	"github.com/vfg2006/ads-reporter/pkg/utils"
)

// costKindFor escolhe a métrica de custo pela categoria da campanha:
// tráfego mede custo por clique, todo o resto mede custo por lead.
func costKindFor(category domain.ObjectiveCategory) domain.CostKind {
	if category == domain.ObjectiveTraffic {
		return domain.CostPerClick
	}
	return domain.CostPerLead
}

// deriveCost preenche Cost/HasCost de um snapshot já somado. Gasto sem
// nenhum resultado deixa o custo indefinido (HasCost false) em vez de
// dividir por zero; entidade sem custo fica fora do ranqueamento.
func deriveCost(metrics domain.MetricSnapshot, kind domain.CostKind) domain.MetricSnapshot {
	metrics.CostKind = kind
	metrics.Cost = 0
	metrics.HasCost = false

	results := metrics.Results()
	if results > 0 {
		metrics.Cost = utils.RoundWithTwoDecimalPlace(metrics.Spend / float64(results))
		metrics.HasCost = true
	}

	return metrics
}
