package metaclient

import (
	"context"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-reporter/internal/config"
	"github.com/vfg2006/ads-reporter/internal/domain"
)

// as respostas de insights podem ser grandes; jsoniter decodifica mais
// rápido mantendo compatibilidade com a stdlib
var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	ListCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, error)
	ListAdSets(ctx context.Context, accountID string) ([]metadomain.AdSet, error)
	ListAds(ctx context.Context, accountID string) ([]metadomain.Ad, error)
	ListInsights(ctx context.Context, accountID string, level domain.InsightLevel, entityIDs []string, window domain.TimeWindow) ([]metadomain.InsightEntry, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// get executa a requisição e classifica a falha: erro de transporte vira
// RemoteFetchError, resposta não-200 com payload estruturado vira APIRejection.
func (c *MetaClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &metadomain.RemoteFetchError{URL: url, Err: err}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &metadomain.RemoteFetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &metadomain.RemoteFetchError{URL: url, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		rejection := &metadomain.APIRejection{StatusCode: resp.StatusCode}

		var errResp metadomain.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil {
			rejection.Details = errResp.Error
		} else {
			rejection.Details = metadomain.ErrorDetails{Message: string(body)}
		}

		return nil, rejection
	}

	return body, nil
}
