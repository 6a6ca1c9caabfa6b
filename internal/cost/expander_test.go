package cost

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dia(ano int, mes time.Month, d int) *time.Time {
	t := time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestExpandInstallmentsMensal(t *testing.T) {
	c := Cost{
		Description:       "Aluguel do consultório",
		Type:              TypeFixed,
		Value:             600,
		Recurrence:        RecurrenceInstallments,
		Frequency:         FrequencyMonthly,
		TotalInstallments: 6,
		FirstDueDate:      dia(2024, time.March, 15),
	}

	parcelas, err := ExpandInstallments(c)
	require.NoError(t, err)
	require.Len(t, parcelas, 6)

	for i, p := range parcelas {
		assert.Equal(t, i+1, p.Number)
		assert.InDelta(t, 100, p.Amount, 0.001) // 600 / 6
		assert.Equal(t, c.FirstDueDate.AddDate(0, i, 0), p.DueDate)
	}
	assert.Equal(t, time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC), parcelas[5].DueDate)
}

func TestExpandInstallmentsTrimestral(t *testing.T) {
	c := Cost{
		Type:              TypeFixed,
		Value:             1200,
		Recurrence:        RecurrenceInstallments,
		Frequency:         FrequencyQuarterly,
		TotalInstallments: 4,
		FirstDueDate:      dia(2024, time.January, 10),
	}

	parcelas, err := ExpandInstallments(c)
	require.NoError(t, err)
	require.Len(t, parcelas, 4)

	meses := []time.Month{time.January, time.April, time.July, time.October}
	for i, p := range parcelas {
		assert.InDelta(t, 300, p.Amount, 0.001)
		assert.Equal(t, meses[i], p.DueDate.Month())
	}
}

func TestExpandInstallmentsAnual(t *testing.T) {
	c := Cost{
		Type:              TypeFixed,
		Value:             900,
		Recurrence:        RecurrenceInstallments,
		Frequency:         FrequencyYearly,
		TotalInstallments: 3,
		FirstDueDate:      dia(2024, time.June, 1),
	}

	parcelas, err := ExpandInstallments(c)
	require.NoError(t, err)
	require.Len(t, parcelas, 3)
	assert.Equal(t, 2024, parcelas[0].DueDate.Year())
	assert.Equal(t, 2025, parcelas[1].DueDate.Year())
	assert.Equal(t, 2026, parcelas[2].DueDate.Year())
}

func TestExpandInstallmentsSomaFechaComValor(t *testing.T) {
	c := Cost{
		Type:              TypeFixed,
		Value:             1000,
		Recurrence:        RecurrenceInstallments,
		Frequency:         FrequencyMonthly,
		TotalInstallments: 3,
		FirstDueDate:      dia(2024, time.January, 1),
	}

	parcelas, err := ExpandInstallments(c)
	require.NoError(t, err)

	var soma float64
	for _, p := range parcelas {
		soma += p.Amount
	}
	assert.InDelta(t, c.Value, soma, 0.01)
}

func TestExpandInstallmentsIgnoraOutrasRecorrencias(t *testing.T) {
	for _, rec := range []string{RecurrenceNone, RecurrenceIndefinite} {
		parcelas, err := ExpandInstallments(Cost{Type: TypeFixed, Value: 100, Recurrence: rec})
		assert.NoError(t, err)
		assert.Nil(t, parcelas)
	}
}

func TestExpandInstallmentsValidacoes(t *testing.T) {
	_, err := ExpandInstallments(Cost{
		Type:              TypeFixed,
		Value:             100,
		Recurrence:        RecurrenceInstallments,
		Frequency:         FrequencyMonthly,
		TotalInstallments: 0,
		FirstDueDate:      dia(2024, time.January, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidInstallments)

	_, err = ExpandInstallments(Cost{
		Type:              TypeFixed,
		Value:             100,
		Recurrence:        RecurrenceInstallments,
		Frequency:         FrequencyMonthly,
		TotalInstallments: 2,
	})
	assert.ErrorIs(t, err, ErrMissingFirstDueDate)

	_, err = ExpandInstallments(Cost{
		Type:              TypeFixed,
		Value:             100,
		Recurrence:        RecurrenceInstallments,
		Frequency:         "WEEKLY",
		TotalInstallments: 2,
		FirstDueDate:      dia(2024, time.January, 1),
	})
	assert.Error(t, err)
}
