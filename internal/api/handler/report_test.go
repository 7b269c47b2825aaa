package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-reporter/internal/domain"
	"github.com/vfg2006/ads-reporter/internal/usecases/reporting"
	"github.com/vfg2006/ads-reporter/internal/usecases/reporting/mocks"
)

func TestRunReport(t *testing.T) {
	t.Run("gera o relatório com o preset informado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := mocks.NewMockReporter(ctrl)

		report := &domain.Report{RunID: "Abc123", Status: domain.RunDone}
		reporter.EXPECT().GenerateReport(gomock.Any(), domain.PresetLast7Days).Return(report, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/reports/run?preset=last_7d", nil)
		recorder := httptest.NewRecorder()

		RunReport(reporter).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var decoded domain.Report
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
		assert.Equal(t, "Abc123", decoded.RunID)
	})

	t.Run("preset inválido é rejeitado com 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := mocks.NewMockReporter(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/reports/run?preset=last_month", nil)
		recorder := httptest.NewRecorder()

		RunReport(reporter).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("execução em andamento responde 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := mocks.NewMockReporter(ctrl)

		reporter.EXPECT().
			GenerateReport(gomock.Any(), domain.PresetYesterday).
			Return(nil, reporting.ErrRunInProgress)

		req := httptest.NewRequest(http.MethodPost, "/v1/reports/run", nil)
		recorder := httptest.NewRecorder()

		RunReport(reporter).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestGetLastReport(t *testing.T) {
	t.Run("sem relatório responde 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := mocks.NewMockReporter(ctrl)

		reporter.EXPECT().LastReport().Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/last", nil)
		recorder := httptest.NewRecorder()

		GetLastReport(reporter).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("devolve o último relatório consolidado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := mocks.NewMockReporter(ctrl)

		reporter.EXPECT().LastReport().Return(&domain.Report{RunID: "Abc123", Status: domain.RunPartialFailure})

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/last", nil)
		recorder := httptest.NewRecorder()

		GetLastReport(reporter).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "partial_failure")
	})
}
