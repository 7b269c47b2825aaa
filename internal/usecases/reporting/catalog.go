package reporting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-reporter/internal/domain"
	"github.com/vfg2006/ads-reporter/pkg/log"
)

// BuildCatalog busca campanhas, grupos e anúncios ativos da conta e monta
// o catálogo referencial usado no join. Grupos cuja campanha não veio na
// listagem e anúncios cujo grupo não veio são descartados aqui — linha de
// métrica sem dono nunca chega ao relatório.
func BuildCatalog(ctx context.Context, source InsightSource, accountID string, objectiveCategoryByRaw map[string]domain.ObjectiveCategory) (*domain.Catalog, error) {
	campaigns, err := source.ListCampaigns(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar campanhas da conta")
	}

	adSets, err := source.ListAdSets(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar grupos de anúncio da conta")
	}

	ads, err := source.ListAds(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar anúncios da conta")
	}

	catalog := &domain.Catalog{
		Campaigns: make(map[string]*domain.Campaign, len(campaigns)),
		AdSets:    make(map[string]*domain.AdSet, len(adSets)),
	}

	for _, campaign := range campaigns {
		campaign.Category = categorizeObjective(campaign.RawObjective, objectiveCategoryByRaw)
		catalog.Campaigns[campaign.ID] = campaign
	}

	for _, adSet := range adSets {
		if _, ok := catalog.Campaigns[adSet.CampaignID]; !ok {
			log.L.WithFields(log.Fields{
				"account_id":  accountID,
				"adset_id":    adSet.ID,
				"campaign_id": adSet.CampaignID,
			}).Warn("Grupo de anúncio sem campanha correspondente, descartando")
			continue
		}
		catalog.AdSets[adSet.ID] = adSet
	}

	for _, ad := range ads {
		adSet, ok := catalog.AdSets[ad.AdSetID]
		if !ok {
			log.L.WithFields(log.Fields{
				"account_id": accountID,
				"ad_id":      ad.ID,
				"adset_id":   ad.AdSetID,
			}).Warn("Anúncio sem grupo correspondente, descartando")
			continue
		}
		ad.CampaignID = adSet.CampaignID
		catalog.Ads = append(catalog.Ads, ad)
	}

	return catalog, nil
}

// categorizeObjective resolve o objetivo bruto da campanha para a categoria
// que decide a métrica de custo. Objetivo desconhecido cai em OTHER, nunca
// derruba a conta.
func categorizeObjective(rawObjective string, objectiveCategoryByRaw map[string]domain.ObjectiveCategory) domain.ObjectiveCategory {
	if category, ok := objectiveCategoryByRaw[rawObjective]; ok {
		return category
	}

	log.L.WithFields(log.Fields{
		"objective": rawObjective,
	}).Warn("Objetivo de campanha sem categoria mapeada, usando OTHER")
	return domain.ObjectiveOther
}
