package reporting

import (
	"fmt"
	"strings"

	"github.com/vfg2006/ads-reporter/internal/config"
	"github.com/vfg2006/ads-reporter/internal/domain"
)

const sectionDivider = "────────────────────"

// Renderer monta o documento final do relatório em HTML do Telegram e o
// divide em segmentos dentro do limite de uma mensagem. Cada linha é
// autocontida: tags de formatação abrem e fecham na mesma linha, então a
// quebra por linha nunca deixa tag órfã.
type Renderer struct {
	MessageLimit        int
	SignificancePercent int
	IncludeAds          bool

	// Faixas de custo para o selo dos grupos; zero desliga os selos
	CheapCostLimit     float64
	ExpensiveCostLimit float64
}

func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{
		MessageLimit:        cfg.Telegram.MessageLimit,
		SignificancePercent: cfg.Report.SignificancePercent,
		IncludeAds:          cfg.Report.IncludeAds,
		CheapCostLimit:      cfg.Report.CheapCostLimit,
		ExpensiveCostLimit:  cfg.Report.ExpensiveCostLimit,
	}
}

// RenderSegments renderiza o relatório completo e devolve os segmentos
// prontos para entrega, na ordem do documento.
func (r *Renderer) RenderSegments(report *domain.Report) []string {
	return ChunkLines(r.RenderLines(report), r.MessageLimit)
}

// RenderLines monta as linhas do documento: cabeçalho, resumo geral,
// seções por conta na ordem de entrada e avisos de falha no rodapé.
func (r *Renderer) RenderLines(report *domain.Report) []string {
	lines := []string{
		fmt.Sprintf("<b>📈 Relatório de desempenho — %s</b>", formatWindow(report.Window)),
	}

	if report.Status == domain.RunEmpty {
		lines = append(lines, "", "✅ Nenhuma conta teve atividade no período.")
		lines = append(lines, r.failureLines(report.Accounts)...)
		return lines
	}

	if report.Status == domain.RunFailed {
		lines = append(lines, "", "🚨 Nenhuma conta pôde ser processada.")
		lines = append(lines, r.failureLines(report.Accounts)...)
		return lines
	}

	lines = append(lines,
		sectionDivider,
		"<b>📊 Resumo geral</b>",
		fmt.Sprintf("● Investimento: %s%s", money(report.Totals.Spend), r.deltaSuffix(report.Comparison.Spend)),
		fmt.Sprintf("● Leads: %d%s", report.Totals.Leads, r.deltaSuffix(report.Comparison.Leads)),
		fmt.Sprintf("● Cliques: %d%s", report.Totals.Clicks, r.deltaSuffix(report.Comparison.Clicks)),
	)

	for _, account := range report.Accounts {
		if account.Failed() || !account.HasActivity() {
			continue
		}
		lines = append(lines, r.accountLines(account)...)
	}

	lines = append(lines, r.failureLines(report.Accounts)...)

	return lines
}

func (r *Renderer) accountLines(account *domain.AccountReport) []string {
	lines := []string{
		sectionDivider,
		fmt.Sprintf("<b>🏢 Conta: <u>%s</u></b>", escapeHTML(account.Account.DisplayName())),
		fmt.Sprintf("● Investimento: %s%s", money(account.Totals.Spend), r.deltaSuffix(account.Comparison.Spend)),
		fmt.Sprintf("● Leads: %d%s", account.Totals.Leads, r.deltaSuffix(account.Comparison.Leads)),
		fmt.Sprintf("● Cliques: %d%s", account.Totals.Clicks, r.deltaSuffix(account.Comparison.Clicks)),
	}

	for _, campaign := range account.Campaigns {
		lines = append(lines, fmt.Sprintf(
			"<b>📣 %s</b> | %s | %d resultados | %s",
			escapeHTML(campaign.Campaign.Name),
			costLine(campaign.Metrics),
			campaign.Metrics.Results(),
			money(campaign.Metrics.Spend),
		))

		for _, adSet := range campaign.AdSets {
			lines = append(lines, fmt.Sprintf(
				"  ▸ %s — %s%s (%d resultados, %s)",
				escapeHTML(adSet.AdSet.Name),
				costLine(adSet.Metrics),
				r.costBadge(adSet.Metrics),
				adSet.Metrics.Results(),
				money(adSet.Metrics.Spend),
			))

			if !r.IncludeAds {
				continue
			}
			for _, ad := range adSet.Ads {
				lines = append(lines, fmt.Sprintf(
					"    – %s — %s (%s)",
					escapeHTML(ad.Ad.Name),
					costLine(ad.Metrics),
					money(ad.Metrics.Spend),
				))
			}
		}
	}

	if account.BestAdSet != nil {
		lines = append(lines, fmt.Sprintf(
			"🏆 Melhor grupo: %s (%s)",
			escapeHTML(account.BestAdSet.AdSet.Name),
			costLine(account.BestAdSet.Metrics),
		))
	}
	if account.WorstAdSet != nil {
		lines = append(lines, fmt.Sprintf(
			"🔻 Pior grupo: %s (%s)",
			escapeHTML(account.WorstAdSet.AdSet.Name),
			costLine(account.WorstAdSet.Metrics),
		))
	}

	return lines
}

// failureLines gera uma linha de aviso por conta com falha, no rodapé do
// documento, para que falha isolada nunca suma silenciosamente.
func (r *Renderer) failureLines(accounts []*domain.AccountReport) []string {
	lines := make([]string, 0)
	for _, account := range accounts {
		if !account.Failed() {
			continue
		}
		lines = append(lines, fmt.Sprintf(
			"⚠️ Conta %s não processada: %s",
			escapeHTML(account.Account.DisplayName()),
			failureLabel(account.FailureReason),
		))
	}
	if len(lines) > 0 {
		lines = append([]string{sectionDivider}, lines...)
	}
	return lines
}

// deltaSuffix traduz uma comparação em sufixo de linha. O indicador vem
// exclusivamente de Favorable e só aparece quando a variação passa do
// limiar de significância; "novo" marca baseline zero; zero contra zero
// não rende sufixo.
func (r *Renderer) deltaSuffix(c domain.Comparison) string {
	switch c.Kind {
	case domain.DeltaNoBaseline:
		return ""
	case domain.DeltaNew:
		return " (novo)"
	}

	indicator := ""
	if c.Percent >= r.SignificancePercent || c.Percent <= -r.SignificancePercent {
		if c.Favorable {
			indicator = "📈 "
		} else {
			indicator = "📉 "
		}
	}

	return fmt.Sprintf(" (%s%+d%%)", indicator, c.Percent)
}

// ChunkLines divide as linhas em segmentos de até limit caracteres, sem
// nunca quebrar dentro de uma linha. A concatenação dos segmentos com "\n"
// reconstrói o documento original. Linha isolada maior que o limite vira
// segmento próprio em vez de ser truncada.
func ChunkLines(lines []string, limit int) []string {
	segments := make([]string, 0, 1)
	var current strings.Builder

	for _, line := range lines {
		if current.Len() > 0 && current.Len()+1+len(line) > limit {
			segments = append(segments, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte('\n')
		}
		current.WriteString(line)
	}

	if current.Len() > 0 {
		segments = append(segments, current.String())
	}

	return segments
}

// costBadge classifica o custo por resultado do grupo nas faixas
// configuradas. Limites zerados desligam os selos.
func (r *Renderer) costBadge(m domain.MetricSnapshot) string {
	if r.CheapCostLimit <= 0 || r.ExpensiveCostLimit <= 0 || !m.HasCost {
		return ""
	}
	switch {
	case m.Cost <= r.CheapCostLimit:
		return " 🟢"
	case m.Cost >= r.ExpensiveCostLimit:
		return " 🔴"
	default:
		return " 🟡"
	}
}

func costLine(m domain.MetricSnapshot) string {
	if !m.HasCost {
		return fmt.Sprintf("%s indefinido", string(m.CostKind))
	}
	return fmt.Sprintf("%s %s", string(m.CostKind), money(m.Cost))
}

func money(value float64) string {
	return fmt.Sprintf("R$ %.2f", value)
}

func formatWindow(window domain.TimeWindow) string {
	if window.Since.Equal(window.Until) {
		return window.Since.Format("02/01/2006")
	}
	return fmt.Sprintf("%s a %s", window.Since.Format("02/01/2006"), window.Until.Format("02/01/2006"))
}

func failureLabel(reason domain.FailureReason) string {
	switch reason {
	case domain.FailureRemoteFetch:
		return "falha de conexão com a API"
	case domain.FailureAPIReject:
		return "requisição rejeitada pela API"
	case domain.FailureTimeout:
		return "tempo limite excedido"
	case domain.FailureCancelled:
		return "processamento cancelado"
	}
	return "erro desconhecido"
}

// escapeHTML protege nomes vindos da API contra quebra do parse_mode HTML
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
