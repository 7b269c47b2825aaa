package reporting

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-reporter/internal/domain"
	"github.com/vfg2006/ads-reporter/internal/usecases/reporting/mocks"
)

func TestBuildCatalog(t *testing.T) {
	t.Run("descarta grupo sem campanha e anúncio sem grupo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockInsightSource(ctrl)

		source.EXPECT().ListCampaigns(gomock.Any(), "act_1").Return([]*domain.Campaign{
			{ID: "c1", Name: "Campanha", RawObjective: "OUTCOME_ENGAGEMENT"},
		}, nil)
		source.EXPECT().ListAdSets(gomock.Any(), "act_1").Return([]*domain.AdSet{
			{ID: "as1", Name: "Com dona", CampaignID: "c1"},
			{ID: "as2", Name: "Órfão", CampaignID: "c-inexistente"},
		}, nil)
		source.EXPECT().ListAds(gomock.Any(), "act_1").Return([]*domain.Ad{
			{ID: "ad1", Name: "Válido", AdSetID: "as1"},
			{ID: "ad2", Name: "Órfão direto", AdSetID: "as-inexistente"},
			{ID: "ad3", Name: "Órfão em cascata", AdSetID: "as2"},
		}, nil)

		catalog, err := BuildCatalog(context.Background(), source, "act_1", domain.DefaultObjectiveCategoryMap)

		require.NoError(t, err)
		assert.Len(t, catalog.AdSets, 1)
		require.Len(t, catalog.Ads, 1)
		assert.Equal(t, "ad1", catalog.Ads[0].ID)
		// o anúncio herda a campanha resolvida pelo grupo
		assert.Equal(t, "c1", catalog.Ads[0].CampaignID)
	})

	t.Run("objetivo desconhecido cai em OTHER sem derrubar a conta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockInsightSource(ctrl)

		source.EXPECT().ListCampaigns(gomock.Any(), "act_1").Return([]*domain.Campaign{
			{ID: "c1", Name: "Estranha", RawObjective: "OBJETIVO_NOVO_DA_API"},
		}, nil)
		source.EXPECT().ListAdSets(gomock.Any(), "act_1").Return(nil, nil)
		source.EXPECT().ListAds(gomock.Any(), "act_1").Return(nil, nil)

		catalog, err := BuildCatalog(context.Background(), source, "act_1", domain.DefaultObjectiveCategoryMap)

		require.NoError(t, err)
		assert.Equal(t, domain.ObjectiveOther, catalog.Campaigns["c1"].Category)
	})

	t.Run("falha em qualquer listagem interrompe o catálogo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockInsightSource(ctrl)

		source.EXPECT().ListCampaigns(gomock.Any(), "act_1").Return(nil, nil)
		source.EXPECT().ListAdSets(gomock.Any(), "act_1").Return(nil, errors.New("rate limit"))

		_, err := BuildCatalog(context.Background(), source, "act_1", domain.DefaultObjectiveCategoryMap)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "grupos de anúncio")
	})
}
