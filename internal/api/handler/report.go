package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-reporter/internal/domain"
	"github.com/vfg2006/ads-reporter/internal/usecases/reporting"
	"github.com/vfg2006/ads-reporter/pkg/apiErrors"
)

// validPresets são os períodos aceitos pelo parâmetro preset
var validPresets = map[domain.WindowPreset]bool{
	domain.PresetToday:     true,
	domain.PresetYesterday: true,
	domain.PresetLast7Days: true,
}

// RunReport gera um relatório sob demanda e devolve o resultado completo.
// A geração é síncrona: o chamador recebe o relatório consolidado ou o
// conflito caso outra execução esteja em andamento.
func RunReport(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		preset := domain.PresetYesterday
		if raw := r.URL.Query().Get("preset"); raw != "" {
			preset = domain.WindowPreset(raw)
			if !validPresets[preset] {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Preset de período inválido", raw)
				return
			}
		}

		report, err := reporter.GenerateReport(r.Context(), preset)
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar relatório sob demanda")

			switch {
			case errors.Is(err, reporting.ErrRunInProgress):
				apiErrors.WriteError(w, apiErrors.ErrReportRunning, "Geração de relatório já em andamento", nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrAccountListing, "Não foi possível iniciar a geração do relatório", err.Error())
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.WithError(err).Error("Erro ao serializar relatório")
		}
	}
}

// GetLastReport devolve o último relatório consolidado em memória
func GetLastReport(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := reporter.LastReport()
		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Nenhum relatório gerado até o momento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.WithError(err).Error("Erro ao serializar relatório")
		}
	}
}

// GetLastReportSegments devolve só os segmentos renderizados do último relatório
func GetLastReportSegments(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := reporter.LastReport()
		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Nenhum relatório gerado até o momento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		response := map[string]interface{}{
			"run_id":   report.RunID,
			"status":   string(report.Status),
			"segments": report.Segments,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Error("Erro ao serializar segmentos do relatório")
		}
	}
}
