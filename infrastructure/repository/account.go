package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-reporter/infrastructure/database/postgres"
	"github.com/vfg2006/ads-reporter/internal/domain"
)

const accountsTable = "accounts a"

//go:generate mockgen -source=account.go -destination=mocks/account.go -package=mocks
type AccountRepository interface {
	GetAccountByExternalID(accountExternalID string) (*domain.AdAccount, error)
	ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	SaveOrUpdate(accounts []*domain.AdAccount) error
	UpdateStatus(accountID string, status domain.AdAccountStatus) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByExternalID(accountExternalID string) (*domain.AdAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("a.id, a.external_id, a.name, a.nickname, a.status").
		From(accountsTable).
		Where(squirrel.Eq{"a.external_id": accountExternalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := a.conn.QueryRow(accountsSQL, accountsArgs...)

	acc := &domain.AdAccount{}
	if err := row.Scan(
		&acc.ID,
		&acc.ExternalID,
		&acc.Name,
		&acc.Nickname,
		&acc.Status,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar conta por external_id")
	}

	return acc, nil
}

// ListAccounts lista as contas do registro na ordem de apelido. A ordem
// define a ordem dos segmentos do relatório, então precisa ser estável.
func (a *accountRepository) ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	queryBuilder := squirrel.
		Select("a.id, a.external_id, a.name, a.nickname, a.status").
		From(accountsTable).
		OrderBy("a.nickname ASC, a.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao listar contas")
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)

	for rows.Next() {
		acc := &domain.AdAccount{}
		if err := rows.Scan(
			&acc.ID,
			&acc.ExternalID,
			&acc.Name,
			&acc.Nickname,
			&acc.Status,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao deserializar conta")
		}

		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (r *accountRepository) SaveOrUpdate(accounts []*domain.AdAccount) error {
	if len(accounts) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("accounts").
		Columns("id", "external_id", "name", "nickname", "status").
		PlaceholderFormat(squirrel.Dollar)

	for _, account := range accounts {
		query = query.Values(
			account.ID,
			account.ExternalID,
			account.Name,
			account.Nickname,
			account.Status,
		)
	}

	query = query.Suffix(`
			ON CONFLICT (external_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				nickname = COALESCE(accounts.nickname, EXCLUDED.nickname)
		`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return errors.Wrapf(pqErr, "database error (code: %s)", pqErr.Code)
		}
		return errors.Wrap(err, "failed to execute query")
	}

	return nil
}

func (a *accountRepository) UpdateStatus(accountID string, status domain.AdAccountStatus) error {
	if accountID == "" {
		return errors.New("ID is required")
	}

	sqlQuery, args, err := squirrel.
		Update("accounts").
		Set("status", status).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = a.conn.Exec(sqlQuery, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar status da conta")
	}

	return nil
}
