package meta

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-reporter/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-reporter/internal/config"
	"github.com/vfg2006/ads-reporter/internal/domain"
)

// MetaIntegrator adapta o Graph API para as entidades do domínio.
// Os números chegam como strings e são convertidos aqui; valores
// inválidos viram zero com aviso no log, nunca derrubam a conta.
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) ListCampaigns(ctx context.Context, accountID string) ([]*domain.Campaign, error) {
	raw, err := s.Client.ListCampaigns(ctx, accountID)
	if err != nil {
		return nil, err
	}

	campaigns := make([]*domain.Campaign, 0, len(raw))
	for _, campaign := range raw {
		campaigns = append(campaigns, &domain.Campaign{
			ID:           campaign.ID,
			Name:         campaign.Name,
			RawObjective: campaign.Objective,
		})
	}

	return campaigns, nil
}

func (s *MetaIntegrator) ListAdSets(ctx context.Context, accountID string) ([]*domain.AdSet, error) {
	raw, err := s.Client.ListAdSets(ctx, accountID)
	if err != nil {
		return nil, err
	}

	adSets := make([]*domain.AdSet, 0, len(raw))
	for _, adSet := range raw {
		adSets = append(adSets, &domain.AdSet{
			ID:         adSet.ID,
			Name:       adSet.Name,
			CampaignID: adSet.CampaignID,
		})
	}

	return adSets, nil
}

func (s *MetaIntegrator) ListAds(ctx context.Context, accountID string) ([]*domain.Ad, error) {
	raw, err := s.Client.ListAds(ctx, accountID)
	if err != nil {
		return nil, err
	}

	ads := make([]*domain.Ad, 0, len(raw))
	for _, ad := range raw {
		ads = append(ads, &domain.Ad{
			ID:                   ad.ID,
			Name:                 ad.Name,
			AdSetID:              ad.AdSetID,
			CampaignID:           ad.CampaignID,
			CreativeThumbnailURL: ad.Creative.ThumbnailURL,
		})
	}

	return ads, nil
}

func (s *MetaIntegrator) FetchInsights(
	ctx context.Context,
	accountID string,
	level domain.InsightLevel,
	entityIDs []string,
	window domain.TimeWindow,
) ([]*domain.InsightRow, error) {
	raw, err := s.Client.ListInsights(ctx, accountID, level, entityIDs, window)
	if err != nil {
		return nil, err
	}

	rows := make([]*domain.InsightRow, 0, len(raw))
	for i := range raw {
		rows = append(rows, factoryInsightRow(&raw[i], level))
	}

	return rows, nil
}

func factoryInsightRow(entry *metadomain.InsightEntry, level domain.InsightLevel) *domain.InsightRow {
	row := &domain.InsightRow{
		Level:       level,
		AdSetID:     entry.AdSetID,
		CampaignID:  entry.CampaignID,
		Spend:       parseFloat(entry.Spend, "spend"),
		Clicks:      parseInt(entry.Clicks, "clicks"),
		Impressions: parseInt(entry.Impressions, "impressions"),
		CTR:         parseFloat(entry.CTR, "ctr"),
	}

	switch level {
	case domain.LevelAd:
		row.EntityID = entry.AdID
	case domain.LevelAdSet:
		row.EntityID = entry.AdSetID
	case domain.LevelCampaign:
		row.EntityID = entry.CampaignID
	default:
		row.EntityID = entry.AccountID
	}

	row.Actions = make([]domain.ActionCount, 0, len(entry.Actions))
	for _, action := range entry.Actions {
		row.Actions = append(row.Actions, domain.ActionCount{
			Type:  action.ActionType,
			Count: parseInt(action.Value, "action value"),
		})
	}

	return row
}

func parseFloat(value, field string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: erro ao converter valor para float")
		return 0
	}

	return parsed
}

func parseInt(value, field string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: erro ao converter valor para inteiro")
		return 0
	}

	return parsed
}
