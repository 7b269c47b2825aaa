package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-reporter/infrastructure/integrator/meta/domain"
)

type ResponseAdSets struct {
	Data   []metadomain.AdSet `json:"data"`
	Paging metadomain.Paging  `json:"paging"`
}

// ListAdSets busca todos os conjuntos de anúncios ativos da conta
func (c *MetaClient) ListAdSets(ctx context.Context, accountID string) ([]metadomain.AdSet, error) {
	baseURL := fmt.Sprintf("%s/act_%s/adsets", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,campaign_id,effective_status")
	params.Add("filtering", `[{"field":"adset.effective_status","operator":"IN","value":["ACTIVE"]}]`)
	params.Add("limit", strconv.Itoa(c.Cfg.Meta.PageSize))
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	nextURL := baseURL + "?" + params.Encode()

	adSets := make([]metadomain.AdSet, 0)

	for nextURL != "" {
		body, err := c.get(ctx, nextURL)
		if err != nil {
			return nil, err
		}

		var response ResponseAdSets
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON de conjuntos de anúncios")
			return nil, err
		}

		adSets = append(adSets, response.Data...)
		nextURL = response.Paging.Next
	}

	return adSets, nil
}
