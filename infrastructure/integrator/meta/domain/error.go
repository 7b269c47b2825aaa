package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// RemoteFetchError indica falha de transporte antes de qualquer resposta
// estruturada da API. É a única classe de falha considerada repetível.
type RemoteFetchError struct {
	URL string
	Err error
}

func (e *RemoteFetchError) Error() string {
	return fmt.Sprintf("falha de transporte ao chamar %s: %v", e.URL, e.Err)
}

func (e *RemoteFetchError) Unwrap() error {
	return e.Err
}

// APIRejection indica uma resposta 4xx/5xx com payload de erro estruturado.
// Não é repetida automaticamente; é exibida ao usuário como linha de aviso.
type APIRejection struct {
	StatusCode int
	Details    ErrorDetails
}

func (e *APIRejection) Error() string {
	return fmt.Sprintf(
		"api do meta rejeitou a requisição: status=%d type=%s code=%d subcode=%d fbtrace_id=%s: %s",
		e.StatusCode,
		e.Details.Type,
		e.Details.Code,
		e.Details.ErrorSubcode,
		e.Details.FBTraceID,
		e.Details.Message,
	)
}

// IsRateLimit verifica os códigos de limitação de chamadas do Graph API
func (e *APIRejection) IsRateLimit() bool {
	switch e.Details.Code {
	case 4, 17, 32, 613:
		return true
	}
	return false
}

// IsPermission verifica erros de permissão ou token
func (e *APIRejection) IsPermission() bool {
	if e.Details.Code == 10 || e.Details.Code == 190 {
		return true
	}
	return e.Details.Code >= 200 && e.Details.Code <= 299
}

// IsTransient verifica os códigos de erro transitório do Graph API
func (e *APIRejection) IsTransient() bool {
	return e.Details.Code == 1 || e.Details.Code == 2 || e.StatusCode >= 500
}
