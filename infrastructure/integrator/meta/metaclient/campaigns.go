package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-reporter/infrastructure/integrator/meta/domain"
)

type ResponseCampaigns struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// ListCampaigns busca todas as campanhas ativas da conta, seguindo as
// páginas até esgotar. Só campanhas com effective_status ACTIVE entram.
func (c *MetaClient) ListCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, error) {
	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,objective,status,effective_status")
	params.Add("filtering", `[{"field":"campaign.effective_status","operator":"IN","value":["ACTIVE"]}]`)
	params.Add("limit", strconv.Itoa(c.Cfg.Meta.PageSize))
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	nextURL := baseURL + "?" + params.Encode()

	campaigns := make([]metadomain.Campaign, 0)

	for nextURL != "" {
		body, err := c.get(ctx, nextURL)
		if err != nil {
			return nil, err
		}

		var response ResponseCampaigns
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON de campanhas")
			return nil, err
		}

		campaigns = append(campaigns, response.Data...)
		nextURL = response.Paging.Next
	}

	return campaigns, nil
}
