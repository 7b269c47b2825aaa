package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeWindowPrevious(t *testing.T) {
	t.Run("janela de um dia anda um dia para trás", func(t *testing.T) {
		day := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
		window := TimeWindow{Since: day, Until: day}

		previous := window.Previous()

		assert.Equal(t, day.AddDate(0, 0, -1), previous.Since)
		assert.Equal(t, day.AddDate(0, 0, -1), previous.Until)
	})

	t.Run("janela de sete dias anda sete dias, sem sobreposição", func(t *testing.T) {
		since := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
		until := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
		window := TimeWindow{Since: since, Until: until}

		previous := window.Previous()

		assert.Equal(t, 7, window.Days())
		assert.Equal(t, 7, previous.Days())
		assert.Equal(t, since.AddDate(0, 0, -7), previous.Since)
		assert.True(t, previous.Until.Before(window.Since))
	})
}

func TestResolvePreset(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

	t.Run("yesterday é o dia anterior completo", func(t *testing.T) {
		window := ResolvePreset(PresetYesterday, now)

		expected := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, expected, window.Since)
		assert.Equal(t, expected, window.Until)
	})

	t.Run("today é o dia corrente", func(t *testing.T) {
		window := ResolvePreset(PresetToday, now)

		expected := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, expected, window.Since)
		assert.Equal(t, expected, window.Until)
	})

	t.Run("last_7d termina ontem", func(t *testing.T) {
		window := ResolvePreset(PresetLast7Days, now)

		assert.Equal(t, time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), window.Until)
		assert.Equal(t, time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC), window.Since)
	})
}

func TestCountActions(t *testing.T) {
	row := &InsightRow{
		Actions: []ActionCount{
			{Type: "lead", Count: 2},
			{Type: "link_click", Count: 10},
			{Type: "post_engagement", Count: 99},
		},
	}

	assert.Equal(t, 2, row.CountActions(DefaultActionRoleMap, ActionRoleLead))
	assert.Equal(t, 10, row.CountActions(DefaultActionRoleMap, ActionRoleClick))
	// tipo fora do mapa não conta em papel nenhum
	assert.Equal(t, 0, row.CountActions(DefaultActionRoleMap, ActionRoleIgnored))
}
