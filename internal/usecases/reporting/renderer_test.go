package reporting

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-reporter/internal/domain"
)

func TestChunkLines(t *testing.T) {
	t.Run("concatenar os segmentos reconstrói o documento", func(t *testing.T) {
		lines := make([]string, 0, 300)
		for i := 0; i < 300; i++ {
			lines = append(lines, fmt.Sprintf("● Linha %03d com conteúdo suficiente para encher mensagens", i))
		}
		document := strings.Join(lines, "\n")
		require.Greater(t, len(document), 9000)

		segments := ChunkLines(lines, 4096)

		require.Greater(t, len(segments), 2)
		assert.Equal(t, document, strings.Join(segments, "\n"))
	})

	t.Run("nenhum segmento passa do limite", func(t *testing.T) {
		lines := make([]string, 0, 100)
		for i := 0; i < 100; i++ {
			lines = append(lines, strings.Repeat("x", 90))
		}

		for _, segment := range ChunkLines(lines, 1000) {
			assert.LessOrEqual(t, len(segment), 1000)
		}
	})

	t.Run("nunca quebra dentro de uma linha", func(t *testing.T) {
		lines := []string{"primeira linha", "segunda linha", "terceira linha"}

		segments := ChunkLines(lines, 30)

		for _, segment := range segments {
			for _, line := range strings.Split(segment, "\n") {
				assert.Contains(t, lines, line)
			}
		}
	})

	t.Run("linha maior que o limite vira segmento próprio, sem truncar", func(t *testing.T) {
		long := strings.Repeat("y", 50)
		segments := ChunkLines([]string{"curta", long, "curta"}, 20)

		require.Len(t, segments, 3)
		assert.Equal(t, long, segments[1])
	})

	t.Run("documento vazio não gera segmentos", func(t *testing.T) {
		assert.Empty(t, ChunkLines(nil, 4096))
	})
}

func testReport(status domain.RunStatus, accounts []*domain.AccountReport) *domain.Report {
	day := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	report := &domain.Report{
		RunID:          "Abc123",
		Status:         status,
		Window:         domain.TimeWindow{Since: day, Until: day},
		PreviousWindow: domain.TimeWindow{Since: day.AddDate(0, 0, -1), Until: day.AddDate(0, 0, -1)},
		Accounts:       accounts,
	}
	for _, account := range accounts {
		if !account.Failed() {
			report.Totals.AddTotals(account.Totals)
			report.PreviousTotals.AddTotals(account.PreviousTotals)
		}
	}
	report.Comparison = CompareTotals(report.Totals, report.PreviousTotals)
	return report
}

func activeAccount(name string) *domain.AccountReport {
	catalog := testCatalog()
	leaves := []*domain.AdNode{
		{Ad: catalog.Ads[0], Metrics: domain.MetricSnapshot{Spend: 10.0, Leads: 5}},
		{Ad: catalog.Ads[2], Metrics: domain.MetricSnapshot{Spend: 30.0, Leads: 5}},
	}
	account := &domain.AccountReport{
		Account:   &domain.AdAccount{ID: "1", ExternalID: "act_1", Name: name},
		State:     domain.StateDone,
		Campaigns: BuildTree(catalog, leaves),
	}
	account.Totals = TotalsOf(account.Campaigns)
	account.PreviousTotals = domain.AccountTotals{Spend: 20.0, Leads: 20}
	account.Comparison = CompareTotals(account.Totals, account.PreviousTotals)
	account.BestAdSet, account.WorstAdSet = RankAdSets(account.Campaigns)
	return account
}

func TestRenderLines(t *testing.T) {
	renderer := &Renderer{MessageLimit: 4096, SignificancePercent: 5}

	t.Run("relatório vazio rende mensagem única de inatividade", func(t *testing.T) {
		lines := renderer.RenderLines(testReport(domain.RunEmpty, nil))

		document := strings.Join(lines, "\n")
		assert.Contains(t, document, "Nenhuma conta teve atividade")
	})

	t.Run("indicador segue a favorabilidade, não o sinal cru", func(t *testing.T) {
		report := testReport(domain.RunDone, []*domain.AccountReport{activeAccount("Clínica Sorriso")})

		document := strings.Join(renderer.RenderLines(report), "\n")

		// investimento dobrou (desejável) e leads caíram 50%
		assert.Contains(t, document, "Investimento: R$ 40.00 (📈 +100%)")
		assert.Contains(t, document, "Leads: 10 (📉 -50%)")
	})

	t.Run("variação abaixo do limiar fica sem indicador", func(t *testing.T) {
		report := testReport(domain.RunDone, nil)
		report.Status = domain.RunDone
		report.Totals = domain.AccountTotals{Spend: 103.0}
		report.PreviousTotals = domain.AccountTotals{Spend: 100.0}
		report.Comparison = CompareTotals(report.Totals, report.PreviousTotals)

		document := strings.Join(renderer.RenderLines(report), "\n")

		assert.Contains(t, document, "Investimento: R$ 103.00 (+3%)")
		assert.NotContains(t, document, "(📈 +3%)")
	})

	t.Run("baseline zero rende novo, zero contra zero não rende nada", func(t *testing.T) {
		report := testReport(domain.RunDone, nil)
		report.Totals = domain.AccountTotals{Spend: 50.0}
		report.Comparison = CompareTotals(report.Totals, report.PreviousTotals)

		document := strings.Join(renderer.RenderLines(report), "\n")

		assert.Contains(t, document, "Investimento: R$ 50.00 (novo)")
		assert.Contains(t, document, "Leads: 0\n")
	})

	t.Run("conta com falha vira linha de aviso no rodapé", func(t *testing.T) {
		failed := &domain.AccountReport{
			Account:       &domain.AdAccount{ID: "2", ExternalID: "act_2", Name: "Conta Quebrada"},
			State:         domain.StateFailed,
			FailureReason: domain.FailureAPIReject,
		}
		report := testReport(domain.RunPartialFailure, []*domain.AccountReport{activeAccount("Conta Boa"), failed})

		document := strings.Join(renderer.RenderLines(report), "\n")

		assert.Contains(t, document, "Conta Boa")
		assert.Contains(t, document, "⚠️ Conta Conta Quebrada não processada: requisição rejeitada pela API")
	})

	t.Run("custo indefinido nunca aparece como número", func(t *testing.T) {
		catalog := testCatalog()
		leaves := []*domain.AdNode{
			{Ad: catalog.Ads[0], Metrics: domain.MetricSnapshot{Spend: 15.0}},
		}
		account := &domain.AccountReport{
			Account:   &domain.AdAccount{ID: "1", ExternalID: "act_1", Name: "Sem Resultado"},
			State:     domain.StateDone,
			Campaigns: BuildTree(catalog, leaves),
		}
		account.Totals = TotalsOf(account.Campaigns)
		report := testReport(domain.RunDone, []*domain.AccountReport{account})

		document := strings.Join(renderer.RenderLines(report), "\n")

		assert.Contains(t, document, "CPL indefinido")
		assert.NotContains(t, document, "NaN")
	})

	t.Run("tags de formatação abrem e fecham na mesma linha", func(t *testing.T) {
		report := testReport(domain.RunDone, []*domain.AccountReport{activeAccount("Conta <Especial> & Cia")})

		for _, line := range renderer.RenderLines(report) {
			assert.Equal(t, strings.Count(line, "<b>"), strings.Count(line, "</b>"), line)
			assert.Equal(t, strings.Count(line, "<u>"), strings.Count(line, "</u>"), line)
		}
	})

	t.Run("nomes vindos da API são escapados", func(t *testing.T) {
		report := testReport(domain.RunDone, []*domain.AccountReport{activeAccount("Conta <Especial> & Cia")})

		document := strings.Join(renderer.RenderLines(report), "\n")

		assert.Contains(t, document, "Conta &lt;Especial&gt; &amp; Cia")
	})

	t.Run("selo de custo segue as faixas configuradas", func(t *testing.T) {
		report := testReport(domain.RunDone, []*domain.AccountReport{activeAccount("Conta")})

		banded := &Renderer{MessageLimit: 4096, SignificancePercent: 5, CheapCostLimit: 3.0, ExpensiveCostLimit: 5.0}
		document := strings.Join(banded.RenderLines(report), "\n")

		// CPL 2.00 fica na faixa barata, CPL 6.00 acima da faixa cara
		assert.Contains(t, document, "CPL R$ 2.00 🟢")
		assert.Contains(t, document, "CPL R$ 6.00 🔴")
	})

	t.Run("faixas zeradas desligam os selos", func(t *testing.T) {
		report := testReport(domain.RunDone, []*domain.AccountReport{activeAccount("Conta")})

		document := strings.Join(renderer.RenderLines(report), "\n")

		assert.NotContains(t, document, "🟢")
		assert.NotContains(t, document, "🔴")
		assert.NotContains(t, document, "🟡")
	})

	t.Run("anúncios só aparecem quando habilitados", func(t *testing.T) {
		report := testReport(domain.RunDone, []*domain.AccountReport{activeAccount("Conta")})

		compact := strings.Join(renderer.RenderLines(report), "\n")
		verbose := strings.Join((&Renderer{MessageLimit: 4096, SignificancePercent: 5, IncludeAds: true}).RenderLines(report), "\n")

		assert.NotContains(t, compact, "Criativo 1")
		assert.Contains(t, verbose, "Criativo 1")
	})
}
