package reporting

import (
	"sort"

	"github.com/vfg2006/ads-reporter/internal/domain"
)

// BuildTree agrupa as folhas em grupos e campanhas e deriva as métricas de
// baixo para cima. Custos agregados são sempre recalculados a partir das
// somas de gasto e resultado, nunca pela média dos custos dos filhos.
// Grupos e campanhas sem nenhum anúncio com gasto não aparecem na árvore.
func BuildTree(catalog *domain.Catalog, leaves []*domain.AdNode) []*domain.CampaignNode {
	adSetNodes := make(map[string]*domain.AdSetNode)
	for _, leaf := range leaves {
		adSet := catalog.AdSets[leaf.Ad.AdSetID]
		campaign := catalog.Campaigns[adSet.CampaignID]
		kind := costKindFor(campaign.Category)

		leaf.Metrics = deriveCost(leaf.Metrics, kind)

		node, ok := adSetNodes[adSet.ID]
		if !ok {
			node = &domain.AdSetNode{AdSet: adSet}
			adSetNodes[adSet.ID] = node
		}
		node.Ads = append(node.Ads, leaf)
		node.Metrics.Spend += leaf.Metrics.Spend
		node.Metrics.Leads += leaf.Metrics.Leads
		node.Metrics.Clicks += leaf.Metrics.Clicks
	}

	campaignNodes := make(map[string]*domain.CampaignNode)
	for _, adSetNode := range adSetNodes {
		campaign := catalog.Campaigns[adSetNode.AdSet.CampaignID]
		kind := costKindFor(campaign.Category)

		adSetNode.Metrics = deriveCost(adSetNode.Metrics, kind)
		sortAds(adSetNode.Ads)

		node, ok := campaignNodes[campaign.ID]
		if !ok {
			node = &domain.CampaignNode{Campaign: campaign}
			campaignNodes[campaign.ID] = node
		}
		node.AdSets = append(node.AdSets, adSetNode)
		node.Metrics.Spend += adSetNode.Metrics.Spend
		node.Metrics.Leads += adSetNode.Metrics.Leads
		node.Metrics.Clicks += adSetNode.Metrics.Clicks
	}

	campaigns := make([]*domain.CampaignNode, 0, len(campaignNodes))
	for _, node := range campaignNodes {
		node.Metrics = deriveCost(node.Metrics, costKindFor(node.Campaign.Category))
		sortAdSets(node.AdSets)
		campaigns = append(campaigns, node)
	}
	sortCampaigns(campaigns)

	return campaigns
}

// TotalsOf soma os totais de conta a partir das campanhas agregadas
func TotalsOf(campaigns []*domain.CampaignNode) domain.AccountTotals {
	totals := domain.AccountTotals{}
	for _, campaign := range campaigns {
		totals.Add(campaign.Metrics)
	}
	return totals
}

// Ordenação determinística por nome (desempate por ID) para que o mesmo
// conjunto de dados sempre gere o mesmo relatório.
func sortCampaigns(nodes []*domain.CampaignNode) {
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Campaign.Name != nodes[j].Campaign.Name {
			return nodes[i].Campaign.Name < nodes[j].Campaign.Name
		}
		return nodes[i].Campaign.ID < nodes[j].Campaign.ID
	})
}

func sortAdSets(nodes []*domain.AdSetNode) {
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].AdSet.Name != nodes[j].AdSet.Name {
			return nodes[i].AdSet.Name < nodes[j].AdSet.Name
		}
		return nodes[i].AdSet.ID < nodes[j].AdSet.ID
	})
}

func sortAds(nodes []*domain.AdNode) {
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Ad.Name != nodes[j].Ad.Name {
			return nodes[i].Ad.Name < nodes[j].Ad.Name
		}
		return nodes[i].Ad.ID < nodes[j].Ad.ID
	})
}
