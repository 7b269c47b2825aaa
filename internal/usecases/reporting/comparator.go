package reporting

import (
	"github.com/vfg2006/ads-reporter/internal/domain"
	"github.com/vfg2006/ads-reporter/pkg/utils"
)

// Compare calcula a variação entre o período atual e o anterior. Baseline
// zero nunca divide: zero contra zero não tem comparação e valor novo sobre
// baseline zero é marcado como "novo". isCost inverte a leitura do sinal:
// custo caindo é favorável, volume caindo é desfavorável.
func Compare(current, previous float64, isCost bool) domain.Comparison {
	comparison := domain.Comparison{
		Current:  current,
		Previous: previous,
	}

	if previous == 0 {
		if current == 0 {
			comparison.Kind = domain.DeltaNoBaseline
			return comparison
		}
		comparison.Kind = domain.DeltaNew
		comparison.Favorable = !isCost
		return comparison
	}

	comparison.Kind = domain.DeltaPercent
	comparison.Percent = utils.RoundPercent((current - previous) / previous * 100)

	raw := current - previous
	if isCost {
		comparison.Favorable = raw < 0
	} else {
		comparison.Favorable = raw > 0
	}

	return comparison
}

// CompareTotals monta as comparações de nível de conta. Investimento,
// leads e cliques são métricas de volume; nenhum custo misturado é
// comparado no topo.
func CompareTotals(current, previous domain.AccountTotals) domain.AccountComparison {
	return domain.AccountComparison{
		Spend:  Compare(current.Spend, previous.Spend, false),
		Leads:  Compare(float64(current.Leads), float64(previous.Leads), false),
		Clicks: Compare(float64(current.Clicks), float64(previous.Clicks), false),
	}
}
