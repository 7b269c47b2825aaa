package reporting

import (
	"sort"

	"github.com/vfg2006/ads-reporter/internal/domain"
)

// RankAdSets elege o melhor e o pior grupo de anúncios da conta pelo custo
// por resultado. Grupos sem custo definido não concorrem. Com um único
// candidato só o melhor é devolvido; melhor e pior nunca são o mesmo grupo.
func RankAdSets(campaigns []*domain.CampaignNode) (best, worst *domain.AdSetNode) {
	candidates := make([]*domain.AdSetNode, 0)
	for _, campaign := range campaigns {
		for _, adSet := range campaign.AdSets {
			if adSet.Metrics.HasCost {
				candidates = append(candidates, adSet)
			}
		}
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Metrics.Cost != candidates[j].Metrics.Cost {
			return candidates[i].Metrics.Cost < candidates[j].Metrics.Cost
		}
		return candidates[i].AdSet.ID < candidates[j].AdSet.ID
	})

	best = candidates[0]
	if len(candidates) > 1 {
		worst = candidates[len(candidates)-1]
	}

	return best, worst
}
