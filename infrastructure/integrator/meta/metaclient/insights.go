package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-reporter/internal/domain"
)

type ResponseInsights struct {
	Data   []metadomain.InsightEntry `json:"data"`
	Paging metadomain.Paging         `json:"paging"`
}

var insightFieldsByLevel = map[domain.InsightLevel]string{
	domain.LevelAccount:  "account_id,spend,actions,clicks,impressions,ctr",
	domain.LevelCampaign: "campaign_id,spend,actions,clicks,impressions,ctr",
	domain.LevelAdSet:    "adset_id,campaign_id,spend,actions,clicks,impressions,ctr",
	domain.LevelAd:       "ad_id,adset_id,campaign_id,spend,actions,clicks,impressions,ctr",
}

var filterFieldByLevel = map[domain.InsightLevel]string{
	domain.LevelCampaign: "campaign.id",
	domain.LevelAdSet:    "adset.id",
	domain.LevelAd:       "ad.id",
}

// ListInsights busca as linhas de métricas da conta no nível pedido, para a
// janela [since, until] com limites de dia inclusivos. entityIDs vazio
// significa a conta inteira; com IDs, o chamador é responsável por respeitar
// o limite de filtro por chamada — listas maiores são rejeitadas aqui.
func (c *MetaClient) ListInsights(
	ctx context.Context,
	accountID string,
	level domain.InsightLevel,
	entityIDs []string,
	window domain.TimeWindow,
) ([]metadomain.InsightEntry, error) {
	if len(entityIDs) > c.Cfg.Report.InsightsBatchLimit {
		return nil, fmt.Errorf(
			"filtro de insights com %d IDs excede o limite de %d por chamada",
			len(entityIDs),
			c.Cfg.Report.InsightsBatchLimit,
		)
	}

	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	timeRange := fmt.Sprintf(
		`{"since":"%s","until":"%s"}`,
		window.Since.Format(time.DateOnly),
		window.Until.Format(time.DateOnly),
	)

	params := url.Values{}
	params.Add("fields", insightFieldsByLevel[level])
	params.Add("level", string(level))
	params.Add("time_range", timeRange)
	params.Add("limit", strconv.Itoa(c.Cfg.Meta.PageSize))
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	if len(entityIDs) > 0 {
		filtering, err := buildIDFilter(level, entityIDs)
		if err != nil {
			return nil, err
		}
		params.Add("filtering", filtering)
	}

	nextURL := baseURL + "?" + params.Encode()

	entries := make([]metadomain.InsightEntry, 0)

	for nextURL != "" {
		body, err := c.get(ctx, nextURL)
		if err != nil {
			return nil, err
		}

		var response ResponseInsights
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON de insights")
			return nil, err
		}

		entries = append(entries, response.Data...)
		nextURL = response.Paging.Next
	}

	return entries, nil
}

func buildIDFilter(level domain.InsightLevel, entityIDs []string) (string, error) {
	field, ok := filterFieldByLevel[level]
	if !ok {
		return "", fmt.Errorf("nível %s não aceita filtro por IDs", level)
	}

	filter := []map[string]any{
		{
			"field":    field,
			"operator": "IN",
			"value":    entityIDs,
		},
	}

	encoded, err := json.Marshal(filter)
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}
