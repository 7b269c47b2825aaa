package telegramclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-reporter/internal/config"
)

func testClient(serverURL string) Client {
	cfg := &config.Config{
		Telegram: config.Telegram{
			BaseURL:  serverURL,
			BotToken: "test-token",
		},
	}
	return &TelegramClient{Cfg: cfg, HTTPClient: http.DefaultClient}
}

func TestSendMessage(t *testing.T) {
	t.Run("envia HTML para o endpoint do bot", func(t *testing.T) {
		var gotPath, gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			fmt.Fprint(w, `{"ok": true}`)
		}))
		defer server.Close()

		err := testClient(server.URL).SendMessage(context.Background(), "-100123", "<b>Relatório</b>")

		require.NoError(t, err)
		assert.Equal(t, "/bottest-token/sendMessage", gotPath)
		assert.Contains(t, gotBody, `"parse_mode":"HTML"`)
		assert.Contains(t, gotBody, `"chat_id":"-100123"`)
	})

	t.Run("resposta não-ok vira erro com a descrição", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"ok": false, "error_code": 400, "description": "Bad Request: message is too long"}`)
		}))
		defer server.Close()

		err := testClient(server.URL).SendMessage(context.Background(), "-100123", "texto")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "message is too long")
	})
}
