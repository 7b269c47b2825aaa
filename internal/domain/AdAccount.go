package domain

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// AdAccount é uma conta de anúncio registrada para geração de relatórios.
// Imutável durante uma execução do pipeline.
type AdAccount struct {
	ID         string          `json:"id"`
	ExternalID string          `json:"external_id"`
	Name       string          `json:"name"`
	Nickname   *string         `json:"nickname"`
	Status     AdAccountStatus `json:"status"`
}

// DisplayName devolve o apelido quando definido, senão o nome da conta
func (a *AdAccount) DisplayName() string {
	if a.Nickname != nil && *a.Nickname != "" {
		return *a.Nickname
	}
	return a.Name
}
