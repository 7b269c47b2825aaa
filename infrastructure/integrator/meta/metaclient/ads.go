package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-reporter/infrastructure/integrator/meta/domain"
)

type ResponseAds struct {
	Data   []metadomain.Ad   `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// ListAds busca todos os anúncios ativos da conta com o criativo associado
func (c *MetaClient) ListAds(ctx context.Context, accountID string) ([]metadomain.Ad, error) {
	baseURL := fmt.Sprintf("%s/act_%s/ads", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,adset_id,campaign_id,creative{thumbnail_url},effective_status")
	params.Add("filtering", `[{"field":"ad.effective_status","operator":"IN","value":["ACTIVE"]}]`)
	params.Add("limit", strconv.Itoa(c.Cfg.Meta.PageSize))
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	nextURL := baseURL + "?" + params.Encode()

	ads := make([]metadomain.Ad, 0)

	for nextURL != "" {
		body, err := c.get(ctx, nextURL)
		if err != nil {
			return nil, err
		}

		var response ResponseAds
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON de anúncios")
			return nil, err
		}

		ads = append(ads, response.Data...)
		nextURL = response.Paging.Next
	}

	return ads, nil
}
