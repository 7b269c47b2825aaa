package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-reporter/internal/config"
	"github.com/vfg2006/ads-reporter/internal/domain"
)

func testClient(serverURL string) *MetaClient {
	cfg := &config.Config{
		Meta: config.Meta{
			URL:         serverURL,
			AccessToken: "test-token",
			PageSize:    100,
		},
		Report: config.Report{InsightsBatchLimit: 500},
	}
	return &MetaClient{Cfg: cfg, HTTPClient: http.DefaultClient}
}

func TestListCampaignsPagination(t *testing.T) {
	calls := 0
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")

		switch calls {
		case 1:
			assert.Equal(t, "/act_123/campaigns", r.URL.Path)
			assert.Contains(t, r.URL.Query().Get("filtering"), "ACTIVE")
			fmt.Fprintf(w, `{
				"data": [{"id": "c1", "name": "Primeira", "objective": "OUTCOME_ENGAGEMENT"}],
				"paging": {"next": "%s/act_123/campaigns?after=abc"}
			}`, server.URL)
		case 2:
			assert.Equal(t, "abc", r.URL.Query().Get("after"))
			fmt.Fprint(w, `{"data": [{"id": "c2", "name": "Segunda", "objective": "OUTCOME_TRAFFIC"}], "paging": {}}`)
		}
	}))
	defer server.Close()

	campaigns, err := testClient(server.URL).ListCampaigns(context.Background(), "123")

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "c1", campaigns[0].ID)
	assert.Equal(t, "c2", campaigns[1].ID)
}

func TestGetErrorClassification(t *testing.T) {
	t.Run("resposta estruturada vira APIRejection com detalhes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error": {"message": "User request limit reached", "type": "OAuthException", "code": 17, "fbtrace_id": "AbCdEf"}}`)
		}))
		defer server.Close()

		_, err := testClient(server.URL).ListCampaigns(context.Background(), "123")
		require.Error(t, err)

		var rejection *metadomain.APIRejection
		require.True(t, errors.As(err, &rejection))
		assert.Equal(t, http.StatusBadRequest, rejection.StatusCode)
		assert.Equal(t, 17, rejection.Details.Code)
		assert.True(t, rejection.IsRateLimit())
		assert.False(t, rejection.IsPermission())
	})

	t.Run("token inválido é erro de permissão", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error": {"message": "Invalid OAuth access token", "type": "OAuthException", "code": 190}}`)
		}))
		defer server.Close()

		_, err := testClient(server.URL).ListAds(context.Background(), "123")

		var rejection *metadomain.APIRejection
		require.True(t, errors.As(err, &rejection))
		assert.True(t, rejection.IsPermission())
	})

	t.Run("falha de transporte vira RemoteFetchError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // conexão recusada

		_, err := testClient(server.URL).ListAdSets(context.Background(), "123")
		require.Error(t, err)

		var fetchErr *metadomain.RemoteFetchError
		assert.True(t, errors.As(err, &fetchErr))
	})

	t.Run("contexto cancelado propaga o erro do contexto", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := testClient(server.URL).ListCampaigns(ctx, "123")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestListInsights(t *testing.T) {
	t.Run("lote acima do limite é rejeitado sem chamada remota", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("nenhuma chamada remota esperada")
		}))
		defer server.Close()

		ids := make([]string, 501)
		for i := range ids {
			ids[i] = fmt.Sprintf("ad%d", i)
		}

		window := domain.ResolvePreset(domain.PresetYesterday, time.Now())
		_, err := testClient(server.URL).ListInsights(context.Background(), "123", domain.LevelAd, ids, window)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "excede o limite")
	})

	t.Run("filtro de IDs usa o campo do nível pedido", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			filtering := r.URL.Query().Get("filtering")
			assert.Contains(t, filtering, `"ad.id"`)
			assert.Contains(t, filtering, `"IN"`)
			assert.Contains(t, filtering, "ad1")
			assert.Equal(t, "ad", r.URL.Query().Get("level"))
			fmt.Fprint(w, `{"data": [{"ad_id": "ad1", "spend": "12.34", "clicks": "5"}], "paging": {}}`)
		}))
		defer server.Close()

		window := domain.ResolvePreset(domain.PresetYesterday, time.Now())
		entries, err := testClient(server.URL).ListInsights(context.Background(), "123", domain.LevelAd, []string{"ad1", "ad2"}, window)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "12.34", entries[0].Spend)
	})

	t.Run("nível de conta não envia filtro de IDs", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.Query().Get("filtering"))
			assert.NotEmpty(t, r.URL.Query().Get("time_range"))
			fmt.Fprint(w, `{"data": [], "paging": {}}`)
		}))
		defer server.Close()

		window := domain.ResolvePreset(domain.PresetYesterday, time.Now())
		entries, err := testClient(server.URL).ListInsights(context.Background(), "123", domain.LevelAccount, nil, window)

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("resposta vazia é sucesso, não erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"data": [], "paging": {}}`)
		}))
		defer server.Close()

		window := domain.ResolvePreset(domain.PresetYesterday, time.Now())
		entries, err := testClient(server.URL).ListInsights(context.Background(), "123", domain.LevelAccount, nil, window)

		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}
