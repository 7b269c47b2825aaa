package domain

import "time"

// InsightLevel indica qual tipo de entidade uma linha de insight mede
type InsightLevel string

const (
	LevelAccount  InsightLevel = "account"
	LevelCampaign InsightLevel = "campaign"
	LevelAdSet    InsightLevel = "adset"
	LevelAd       InsightLevel = "ad"
)

// ActionRole classifica um action_type cru para fins de contagem
type ActionRole string

const (
	ActionRoleLead    ActionRole = "lead"
	ActionRoleClick   ActionRole = "click"
	ActionRoleIgnored ActionRole = "ignored"
)

// KnownActionRoles lista os papéis aceitos na validação da configuração
var KnownActionRoles = []ActionRole{ActionRoleLead, ActionRoleClick, ActionRoleIgnored}

// DefaultActionRoleMap mapeia action_type cru para o papel interno.
// A ação de conversa iniciada é o proxy de lead padrão; link_click é a
// fonte canônica de cliques para CPC (o campo "clicks" da API conta
// todos os cliques, inclusive sociais, e não entra em denominador).
var DefaultActionRoleMap = map[string]ActionRole{
	"onsite_conversion.messaging_conversation_started_7d": ActionRoleLead,
	"lead":       ActionRoleLead,
	"link_click": ActionRoleClick,
}

// ActionCount é uma contagem de ações de conversão de um tipo cru
type ActionCount struct {
	Type  string `json:"action_type"`
	Count int    `json:"value"`
}

// InsightRow é uma linha de métricas de uma entidade em uma janela de tempo.
// Efêmera: consumida pelo join e nunca retida.
type InsightRow struct {
	EntityID    string        `json:"entity_id"`
	Level       InsightLevel  `json:"level"`
	AdSetID     string        `json:"adset_id"`
	CampaignID  string        `json:"campaign_id"`
	Spend       float64       `json:"spend"`
	Actions     []ActionCount `json:"actions"`
	Clicks      int           `json:"clicks"`
	Impressions int           `json:"impressions"`
	CTR         float64       `json:"ctr"`
}

// CountActions soma as contagens das ações cujo papel no mapa é role
func (r *InsightRow) CountActions(roleByType map[string]ActionRole, role ActionRole) int {
	total := 0
	for _, action := range r.Actions {
		if roleByType[action.Type] == role {
			total += action.Count
		}
	}
	return total
}

// WindowPreset é um atalho de período resolvido localmente para uma janela
type WindowPreset string

const (
	PresetToday     WindowPreset = "today"
	PresetYesterday WindowPreset = "yesterday"
	PresetLast7Days WindowPreset = "last_7d"
)

// TimeWindow é uma janela [Since, Until] com limites de dia inclusivos
type TimeWindow struct {
	Since time.Time `json:"since"`
	Until time.Time `json:"until"`
}

// Days devolve a quantidade de dias cobertos pela janela (inclusivo)
func (w TimeWindow) Days() int {
	return int(w.Until.Sub(w.Since).Hours()/24) + 1
}

// Previous devolve a janela imediatamente anterior, com a mesma duração
func (w TimeWindow) Previous() TimeWindow {
	days := w.Days()
	return TimeWindow{
		Since: w.Since.AddDate(0, 0, -days),
		Until: w.Since.AddDate(0, 0, -1),
	}
}

// ResolvePreset converte um preset em janela concreta relativa a now
func ResolvePreset(preset WindowPreset, now time.Time) TimeWindow {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch preset {
	case PresetToday:
		return TimeWindow{Since: day, Until: day}
	case PresetLast7Days:
		return TimeWindow{Since: day.AddDate(0, 0, -7), Until: day.AddDate(0, 0, -1)}
	default: // yesterday
		yesterday := day.AddDate(0, 0, -1)
		return TimeWindow{Since: yesterday, Until: yesterday}
	}
}
