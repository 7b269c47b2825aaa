package domain

import "time"

// AccountRunState é o estado terminal ou corrente de uma conta no pipeline
type AccountRunState string

const (
	StateIdle             AccountRunState = "idle"
	StateFetchingCatalog  AccountRunState = "fetching_catalog"
	StateFetchingInsights AccountRunState = "fetching_insights"
	StateJoining          AccountRunState = "joining"
	StateAggregating      AccountRunState = "aggregating"
	StateDone             AccountRunState = "done"
	StateFailed           AccountRunState = "failed"
)

// FailureReason explica por que uma conta terminou em StateFailed
type FailureReason string

const (
	FailureRemoteFetch FailureReason = "remote_fetch"
	FailureAPIReject   FailureReason = "api_rejection"
	FailureTimeout     FailureReason = "timeout"
	FailureCancelled   FailureReason = "cancelled"
)

// AccountReport é o resultado de uma conta processada como unidade independente
type AccountReport struct {
	Account *AdAccount `json:"account"`

	State         AccountRunState `json:"state"`
	FailureReason FailureReason   `json:"failure_reason,omitempty"`
	FailureDetail string          `json:"failure_detail,omitempty"`

	Campaigns []*CampaignNode `json:"-"`

	Totals         AccountTotals     `json:"totals"`
	PreviousTotals AccountTotals     `json:"previous_totals"`
	Comparison     AccountComparison `json:"comparison"`

	BestAdSet  *AdSetNode `json:"-"`
	WorstAdSet *AdSetNode `json:"-"`
}

// Failed indica que a conta terminou com falha
func (r *AccountReport) Failed() bool {
	return r.State == StateFailed
}

// HasActivity indica se a conta teve gasto reportável no período
func (r *AccountReport) HasActivity() bool {
	return !r.Failed() && !r.Totals.IsEmpty()
}

// RunStatus é o estado final de uma execução completa do pipeline
type RunStatus string

const (
	// RunDone indica que todas as contas processaram com sucesso
	RunDone RunStatus = "done"
	// RunPartialFailure indica falhas isoladas; é conclusão normal
	RunPartialFailure RunStatus = "partial_failure"
	// RunEmpty indica execução válida sem nenhuma atividade
	RunEmpty RunStatus = "empty"
	// RunFailed indica que todas as contas falharam
	RunFailed RunStatus = "failed"
)

// Report é o resultado completo de uma execução do pipeline, com os
// segmentos prontos para entrega. Descartado após a renderização;
// nenhum histórico é persistido entre execuções.
type Report struct {
	RunID          string           `json:"run_id"`
	Status         RunStatus        `json:"status"`
	Window         TimeWindow       `json:"window"`
	PreviousWindow TimeWindow       `json:"previous_window"`
	Accounts       []*AccountReport `json:"accounts"`
	Totals         AccountTotals    `json:"totals"`
	PreviousTotals AccountTotals    `json:"previous_totals"`
	Comparison     AccountComparison `json:"comparison"`
	Segments       []string         `json:"segments"`
	GeneratedAt    time.Time        `json:"generated_at"`
}
