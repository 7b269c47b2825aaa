package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-reporter/internal/scheduler"
	"github.com/vfg2006/ads-reporter/internal/usecases/reporting"
	"github.com/vfg2006/ads-reporter/pkg/apiErrors"
)

// CronJobServices contém os agendadores expostos para execução manual
type CronJobServices struct {
	DailyReportService *scheduler.DailyReportService
}

// RunDailyReportJob dispara manualmente a geração e entrega do relatório diário
func RunDailyReportJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.DailyReportService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador do relatório diário não disponível", nil)
			return
		}

		// o contexto da requisição morre com a resposta; a execução manual
		// roda em segundo plano com contexto próprio
		if err := services.DailyReportService.TriggerManualRun(context.Background()); err != nil {
			if errors.Is(err, reporting.ErrRunInProgress) {
				apiErrors.WriteError(w, apiErrors.ErrReportRunning, "Relatório diário já em andamento", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao disparar relatório diário manualmente")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao disparar o relatório diário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		response := map[string]string{"message": "Relatório diário iniciado"}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Error("Erro ao serializar resposta do cron")
		}
	}
}

// GetCronStatus retorna o estado do agendador do relatório diário
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.DailyReportService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador do relatório diário não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(services.DailyReportService.GetStatus()); err != nil {
			logrus.WithError(err).Error("Erro ao serializar status do cron")
		}
	}
}
