package telegramclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-reporter/internal/config"
)

type Client interface {
	SendMessage(ctx context.Context, chatID string, text string) error
}

type TelegramClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &TelegramClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// SendMessage envia uma mensagem HTML para o chat informado
func (c *TelegramClient) SendMessage(ctx context.Context, chatID string, text string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", c.Cfg.Telegram.BaseURL, c.Cfg.Telegram.BotToken)

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao enviar mensagem ao Telegram")
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var response sendMessageResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar resposta do Telegram")
		return err
	}

	if !response.OK {
		return fmt.Errorf(
			"telegram recusou a mensagem: code=%d description=%s",
			response.ErrorCode,
			response.Description,
		)
	}

	return nil
}
