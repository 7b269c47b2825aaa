package domain

// CostKind identifica a métrica de custo aplicada a uma entidade
type CostKind string

const (
	CostPerLead  CostKind = "CPL"
	CostPerClick CostKind = "CPC"
)

// MetricSnapshot são as métricas derivadas de um nó da árvore de entidades.
// Cost só é válido quando HasCost é verdadeiro; o custo nunca é NaN.
type MetricSnapshot struct {
	Spend    float64  `json:"spend"`
	Leads    int      `json:"leads"`
	Clicks   int      `json:"clicks"`
	CostKind CostKind `json:"cost_kind"`
	Cost     float64  `json:"cost"`
	HasCost  bool     `json:"has_cost"`
}

// Results devolve a contagem usada como denominador do custo
func (m MetricSnapshot) Results() int {
	if m.CostKind == CostPerClick {
		return m.Clicks
	}
	return m.Leads
}

// AdNode é a folha da árvore de agregação
type AdNode struct {
	Ad      *Ad
	Metrics MetricSnapshot
}

type AdSetNode struct {
	AdSet   *AdSet
	Metrics MetricSnapshot
	Ads     []*AdNode
}

type CampaignNode struct {
	Campaign *Campaign
	Metrics  MetricSnapshot
	AdSets   []*AdSetNode
}

// AccountTotals é o resumo de nível de conta. No topo da árvore leads e
// cliques são reportados separadamente em vez de um custo único misturado.
type AccountTotals struct {
	Spend  float64 `json:"spend"`
	Leads  int     `json:"leads"`
	Clicks int     `json:"clicks"`
}

// Add acumula os valores de um snapshot nos totais
func (t *AccountTotals) Add(m MetricSnapshot) {
	t.Spend += m.Spend
	t.Leads += m.Leads
	t.Clicks += m.Clicks
}

// AddTotals acumula outros totais (usado no resumo geral do relatório)
func (t *AccountTotals) AddTotals(other AccountTotals) {
	t.Spend += other.Spend
	t.Leads += other.Leads
	t.Clicks += other.Clicks
}

// IsEmpty indica ausência de atividade reportável
func (t AccountTotals) IsEmpty() bool {
	return t.Spend == 0 && t.Leads == 0 && t.Clicks == 0
}
