package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-reporter/internal/domain"
	"github.com/vfg2006/ads-reporter/internal/usecases/account"
	"github.com/vfg2006/ads-reporter/pkg/apiErrors"
)

// AdAccountList lista todas as contas cadastradas
func AdAccountList(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.ListAccounts()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar contas de anúncio")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar contas de anúncio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			logrus.WithError(err).Error("Erro ao serializar contas de anúncio")
		}
	}
}

type upsertAccountRequest struct {
	ExternalID string  `json:"external_id"`
	Name       string  `json:"name"`
	Nickname   *string `json:"nickname"`
	Status     string  `json:"status"`
}

// UpsertAdAccount cadastra ou atualiza uma conta pelo external_id
func UpsertAdAccount(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request upsertAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if request.ExternalID == "" || request.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "external_id e name são obrigatórios", nil)
			return
		}

		saved, err := service.UpsertAccount(&domain.AdAccount{
			ExternalID: request.ExternalID,
			Name:       request.Name,
			Nickname:   request.Nickname,
			Status:     domain.AdAccountStatus(request.Status),
		})
		if err != nil {
			logrus.WithError(err).Error("Erro ao cadastrar conta de anúncio")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao cadastrar conta de anúncio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(saved); err != nil {
			logrus.WithError(err).Error("Erro ao serializar conta de anúncio")
		}
	}
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateAdAccountStatus ativa ou desativa uma conta no cadastro
func UpdateAdAccountStatus(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não informado", nil)
			return
		}

		var request updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.UpdateStatus(accountID, domain.AdAccountStatus(request.Status)); err != nil {
			logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao atualizar status da conta")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao atualizar status da conta", err.Error())
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
