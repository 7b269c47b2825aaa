package telegram

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-reporter/infrastructure/integrator/telegram/telegramclient"
	"github.com/vfg2006/ads-reporter/internal/config"
)

// TelegramIntegrator entrega os segmentos do relatório na ordem recebida.
// O pipeline não sabe nada sobre IDs de mensagem, edição ou exclusão;
// esse controle é todo da camada de entrega.
type TelegramIntegrator struct {
	cfg    *config.Config
	Client telegramclient.Client
}

func New(cfg *config.Config, client telegramclient.Client) *TelegramIntegrator {
	return &TelegramIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// DeliverSegments envia os segmentos em sequência para o chat configurado.
// Uma falha interrompe a entrega: enviar fora de ordem quebraria o relatório.
func (s *TelegramIntegrator) DeliverSegments(ctx context.Context, segments []string) error {
	for i, segment := range segments {
		if err := s.Client.SendMessage(ctx, s.cfg.Telegram.ChatID, segment); err != nil {
			logrus.WithFields(logrus.Fields{
				"segment":        i + 1,
				"total_segments": len(segments),
				"error":          err.Error(),
			}).Error("Erro ao entregar segmento do relatório")
			return err
		}
	}

	logrus.WithField("total_segments", len(segments)).Info("Relatório entregue com sucesso")

	return nil
}
