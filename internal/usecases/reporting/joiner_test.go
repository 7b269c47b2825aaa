package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-reporter/internal/domain"
	"github.com/vfg2006/ads-reporter/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Campaigns: map[string]*domain.Campaign{
			"c1": {ID: "c1", Name: "Leads Agosto", RawObjective: "OUTCOME_ENGAGEMENT", Category: domain.ObjectiveLeadGeneration},
			"c2": {ID: "c2", Name: "Tráfego Site", RawObjective: "OUTCOME_TRAFFIC", Category: domain.ObjectiveTraffic},
		},
		AdSets: map[string]*domain.AdSet{
			"as1": {ID: "as1", Name: "Grupo A", CampaignID: "c1"},
			"as2": {ID: "as2", Name: "Grupo B", CampaignID: "c1"},
			"as3": {ID: "as3", Name: "Grupo C", CampaignID: "c2"},
		},
		Ads: []*domain.Ad{
			{ID: "ad1", Name: "Criativo 1", AdSetID: "as1", CampaignID: "c1"},
			{ID: "ad2", Name: "Criativo 2", AdSetID: "as1", CampaignID: "c1"},
			{ID: "ad3", Name: "Criativo 3", AdSetID: "as2", CampaignID: "c1"},
			{ID: "ad4", Name: "Criativo 4", AdSetID: "as3", CampaignID: "c2"},
		},
	}
}

func TestJoinInsights(t *testing.T) {
	t.Run("descarta linha fora do catálogo sem falhar", func(t *testing.T) {
		catalog := testCatalog()
		rows := []*domain.InsightRow{
			{EntityID: "ad1", Level: domain.LevelAd, Spend: 10.0},
			{EntityID: "fantasma", Level: domain.LevelAd, Spend: 99.0},
		}

		leaves := JoinInsights(catalog, rows, domain.DefaultActionRoleMap)

		require.Len(t, leaves, 1)
		assert.Equal(t, "ad1", leaves[0].Ad.ID)
	})

	t.Run("exclui linha com investimento zero", func(t *testing.T) {
		catalog := testCatalog()
		rows := []*domain.InsightRow{
			{EntityID: "ad1", Level: domain.LevelAd, Spend: 0, Actions: []domain.ActionCount{{Type: "lead", Count: 3}}},
			{EntityID: "ad2", Level: domain.LevelAd, Spend: 5.5},
		}

		leaves := JoinInsights(catalog, rows, domain.DefaultActionRoleMap)

		require.Len(t, leaves, 1)
		assert.Equal(t, "ad2", leaves[0].Ad.ID)
	})

	t.Run("conta leads e cliques pelos papéis mapeados", func(t *testing.T) {
		catalog := testCatalog()
		rows := []*domain.InsightRow{
			{
				EntityID: "ad1",
				Level:    domain.LevelAd,
				Spend:    42.0,
				Actions: []domain.ActionCount{
					{Type: "onsite_conversion.messaging_conversation_started_7d", Count: 4},
					{Type: "lead", Count: 2},
					{Type: "link_click", Count: 30},
					{Type: "post_engagement", Count: 100},
				},
			},
		}

		leaves := JoinInsights(catalog, rows, domain.DefaultActionRoleMap)

		require.Len(t, leaves, 1)
		assert.Equal(t, 6, leaves[0].Metrics.Leads)
		assert.Equal(t, 30, leaves[0].Metrics.Clicks)
		assert.Equal(t, 42.0, leaves[0].Metrics.Spend)
	})
}

func TestAccountTotalsFromRows(t *testing.T) {
	rows := []*domain.InsightRow{
		{EntityID: "act_1", Level: domain.LevelAccount, Spend: 0, Actions: []domain.ActionCount{{Type: "lead", Count: 1}}},
		{EntityID: "act_1", Level: domain.LevelAccount, Spend: 12.5, Actions: []domain.ActionCount{{Type: "link_click", Count: 8}}},
	}

	totals := accountTotalsFromRows(rows, domain.DefaultActionRoleMap)

	// baseline inclui linhas com gasto zero, diferente do join
	assert.Equal(t, 12.5, totals.Spend)
	assert.Equal(t, 1, totals.Leads)
	assert.Equal(t, 8, totals.Clicks)
}
