package domain

// DeltaKind classifica a comparação entre período atual e anterior
type DeltaKind string

const (
	// DeltaNew indica baseline zero com valor atual positivo
	DeltaNew DeltaKind = "new"
	// DeltaNoBaseline indica zero contra zero; nada é renderizado
	DeltaNoBaseline DeltaKind = "no_baseline"
	// DeltaPercent indica variação percentual calculável
	DeltaPercent DeltaKind = "percent"
)

// Comparison é o resultado de uma comparação período a período.
// Favorable é derivado explicitamente de (métrica de custo, sinal):
// custo subindo é desfavorável mesmo com percentual positivo. O
// renderizador escolhe o indicador apenas a partir de Favorable,
// nunca do sinal cru.
type Comparison struct {
	Kind      DeltaKind `json:"kind"`
	Percent   int       `json:"percent"`
	Favorable bool      `json:"favorable"`
	Current   float64   `json:"current"`
	Previous  float64   `json:"previous"`
}

// AccountComparison agrupa as comparações de nível de conta
type AccountComparison struct {
	Spend  Comparison `json:"spend"`
	Leads  Comparison `json:"leads"`
	Clicks Comparison `json:"clicks"`
}
