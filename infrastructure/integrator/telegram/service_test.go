package telegram

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-reporter/internal/config"
)

// fakeClient registra as mensagens enviadas e falha no índice configurado
type fakeClient struct {
	sent    []string
	failAt  int
	current int
}

func (c *fakeClient) SendMessage(_ context.Context, _ string, text string) error {
	c.current++
	if c.failAt > 0 && c.current == c.failAt {
		return errors.New("telegram fora do ar")
	}
	c.sent = append(c.sent, text)
	return nil
}

func testIntegrator(client *fakeClient) *TelegramIntegrator {
	cfg := &config.Config{
		Telegram: config.Telegram{ChatID: "-100123"},
	}
	return New(cfg, client)
}

func TestDeliverSegments(t *testing.T) {
	t.Run("entrega todos os segmentos na ordem do documento", func(t *testing.T) {
		client := &fakeClient{}
		segments := []string{"parte 1", "parte 2", "parte 3"}

		err := testIntegrator(client).DeliverSegments(context.Background(), segments)

		require.NoError(t, err)
		assert.Equal(t, segments, client.sent)
	})

	t.Run("falha interrompe a entrega sem enviar os segmentos seguintes", func(t *testing.T) {
		client := &fakeClient{failAt: 2}
		segments := []string{"parte 1", "parte 2", "parte 3"}

		err := testIntegrator(client).DeliverSegments(context.Background(), segments)

		require.Error(t, err)
		assert.Equal(t, []string{"parte 1"}, client.sent)
	})

	t.Run("sem segmentos não envia nada", func(t *testing.T) {
		client := &fakeClient{}

		err := testIntegrator(client).DeliverSegments(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, client.sent)
	})
}
