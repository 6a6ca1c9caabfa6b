package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriodPresets(t *testing.T) {
	// quarta-feira
	agora := time.Date(2024, time.June, 5, 15, 30, 0, 0, time.UTC)

	casos := []struct {
		nome   string
		period string
		inicio time.Time
	}{
		{"padrão é hoje", "", dia(2024, time.June, 5)},
		{"today", PeriodToday, dia(2024, time.June, 5)},
		{"week começa na segunda", PeriodWeek, dia(2024, time.June, 3)},
		{"month começa no dia 1", PeriodMonth, dia(2024, time.June, 1)},
		{"last7days", PeriodLast7Days, dia(2024, time.May, 30)},
		{"last15days", PeriodLast15Days, dia(2024, time.May, 22)},
		{"last30days", PeriodLast30Days, dia(2024, time.May, 7)},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			inicio, fim, err := ResolvePeriod(caso.period, "", "", agora)
			require.NoError(t, err)
			assert.Equal(t, caso.inicio, inicio)
			assert.Equal(t, 2024, fim.Year())
			assert.Equal(t, time.June, fim.Month())
			assert.Equal(t, 5, fim.Day())
			assert.Equal(t, 23, fim.Hour())
		})
	}
}

func TestResolvePeriodSemanaNaSegunda(t *testing.T) {
	segunda := time.Date(2024, time.June, 3, 8, 0, 0, 0, time.UTC)
	inicio, _, err := ResolvePeriod(PeriodWeek, "", "", segunda)
	require.NoError(t, err)
	assert.Equal(t, dia(2024, time.June, 3), inicio)
}

func TestResolvePeriodCustom(t *testing.T) {
	agora := time.Date(2024, time.June, 5, 12, 0, 0, 0, time.UTC)

	inicio, fim, err := ResolvePeriod(PeriodCustom, "2024-01-10", "2024-02-20", agora)
	require.NoError(t, err)
	assert.Equal(t, dia(2024, time.January, 10), inicio)
	assert.Equal(t, 20, fim.Day())
	assert.Equal(t, time.February, fim.Month())
}

func TestResolvePeriodCustomInvalido(t *testing.T) {
	agora := time.Now()

	_, _, err := ResolvePeriod(PeriodCustom, "", "", agora)
	assert.ErrorIs(t, err, ErrMissingCustomRange)

	_, _, err = ResolvePeriod(PeriodCustom, "10/01/2024", "2024-02-20", agora)
	assert.Error(t, err)

	_, _, err = ResolvePeriod(PeriodCustom, "2024-02-20", "2024-01-10", agora)
	assert.Error(t, err)
}

func TestResolvePeriodDesconhecido(t *testing.T) {
	_, _, err := ResolvePeriod("fortnight", "", "", time.Now())
	assert.Error(t, err)
}
