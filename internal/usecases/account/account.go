package account

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-reporter/infrastructure/repository"
	"github.com/vfg2006/ads-reporter/internal/domain"
	"github.com/vfg2006/ads-reporter/pkg/log"
	"github.com/vfg2006/ads-reporter/pkg/utils"
)

//go:generate mockgen -source=account.go -destination=mocks/account.go -package=mocks

// AccountService expõe o cadastro de contas de anúncio para a API
type AccountService interface {
	ListAccounts() ([]*domain.AdAccount, error)
	UpsertAccount(account *domain.AdAccount) (*domain.AdAccount, error)
	UpdateStatus(accountID string, status domain.AdAccountStatus) error
}

type service struct {
	repo repository.AccountRepository
}

func New(repo repository.AccountRepository) AccountService {
	return &service{repo: repo}
}

// ListAccounts lista todas as contas cadastradas, ativas e inativas
func (s *service) ListAccounts() ([]*domain.AdAccount, error) {
	accounts, err := s.repo.ListAccounts(nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar as contas de anúncio")
	}
	return accounts, nil
}

// UpsertAccount cadastra ou atualiza uma conta pelo external_id
func (s *service) UpsertAccount(account *domain.AdAccount) (*domain.AdAccount, error) {
	if account.ExternalID == "" {
		return nil, errors.New("external_id é obrigatório")
	}
	if account.Name == "" {
		return nil, errors.New("name é obrigatório")
	}
	if account.Status == "" {
		account.Status = domain.AdAccountStatusActive
	}
	if account.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar o ID da conta")
		}
		account.ID = id
	}

	if err := s.repo.SaveOrUpdate([]*domain.AdAccount{account}); err != nil {
		return nil, errors.Wrap(err, "erro ao salvar a conta de anúncio")
	}

	log.L.WithFields(log.Fields{
		"account_id":  account.ID,
		"external_id": account.ExternalID,
	}).Info("Conta de anúncio cadastrada")

	return s.repo.GetAccountByExternalID(account.ExternalID)
}

// UpdateStatus ativa ou desativa uma conta no cadastro
func (s *service) UpdateStatus(accountID string, status domain.AdAccountStatus) error {
	if status != domain.AdAccountStatusActive && status != domain.AdAccountStatusInactive {
		return errors.Errorf("status inválido: %s", status)
	}

	if err := s.repo.UpdateStatus(accountID, status); err != nil {
		return errors.Wrap(err, "erro ao atualizar o status da conta")
	}

	return nil
}
