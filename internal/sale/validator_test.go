package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSplitsReconciliacao(t *testing.T) {
	tests := []struct {
		name   string
		total  float64
		splits []PaymentSplitRequest
		valido bool
	}{
		{
			name:  "venda simples fecha",
			total: 1000,
			splits: []PaymentSplitRequest{
				{PaymentMethod: MethodCashPix, Amount: 1000, Installments: 1},
			},
			valido: true,
		},
		{
			name:  "split misto fecha",
			total: 1000,
			splits: []PaymentSplitRequest{
				{PaymentMethod: MethodCashPix, Amount: 400, Installments: 1},
				{PaymentMethod: MethodCreditCard, Amount: 600, Installments: 2},
			},
			valido: true,
		},
		{
			name:  "diferença dentro da tolerância",
			total: 1000,
			splits: []PaymentSplitRequest{
				{PaymentMethod: MethodCashPix, Amount: 1000.009, Installments: 1},
			},
			valido: true,
		},
		{
			name:  "soma menor que o total",
			total: 1000,
			splits: []PaymentSplitRequest{
				{PaymentMethod: MethodCashPix, Amount: 400, Installments: 1},
				{PaymentMethod: MethodCreditCard, Amount: 500, Installments: 2},
			},
			valido: false,
		},
		{
			name:  "diferença acima da tolerância",
			total: 1000,
			splits: []PaymentSplitRequest{
				{PaymentMethod: MethodCashPix, Amount: 1000.02, Installments: 1},
			},
			valido: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSplits(tt.total, tt.splits)
			if tt.valido {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateSplitsErroCarregaValores(t *testing.T) {
	err := ValidateSplits(1000, []PaymentSplitRequest{
		{PaymentMethod: MethodCashPix, Amount: 400, Installments: 1},
		{PaymentMethod: MethodCreditCard, Amount: 500, Installments: 2},
	})
	require.Error(t, err)

	var recErr *ReconciliationError
	require.ErrorAs(t, err, &recErr)
	assert.InDelta(t, 1000, recErr.Expected, 0.001)
	assert.InDelta(t, 900, recErr.Computed, 0.001)
	assert.Contains(t, err.Error(), "900.00")
	assert.Contains(t, err.Error(), "1000.00")
}

func TestValidateSplitsDetalhamentoIncompleto(t *testing.T) {
	valor := 300.0
	err := ValidateSplits(900, []PaymentSplitRequest{
		{
			PaymentMethod: MethodCreditCard,
			Amount:        900,
			Installments:  3,
			InstallmentDetails: []InstallmentDetail{
				{Amount: &valor},
				{Amount: &valor},
			},
		},
	})
	require.Error(t, err)

	var schErr *IncompleteScheduleError
	require.ErrorAs(t, err, &schErr)
	assert.Equal(t, 3, schErr.Declared)
	assert.Equal(t, 2, schErr.Supplied)
}

func TestValidateSplitsDetalhamentoOmitido(t *testing.T) {
	// detalhamento vazio é permitido; o agendador completa com os padrões
	err := ValidateSplits(900, []PaymentSplitRequest{
		{PaymentMethod: MethodCreditCard, Amount: 900, Installments: 3},
	})
	assert.NoError(t, err)
}

func TestValidateSplitsSemFormaDePagamento(t *testing.T) {
	err := ValidateSplits(1000, nil)
	assert.ErrorIs(t, err, ErrNoSplits)
}

func TestValidateSplitsParcelasInvalidas(t *testing.T) {
	err := ValidateSplits(1000, []PaymentSplitRequest{
		{PaymentMethod: MethodCashPix, Amount: 1000, Installments: 0},
	})
	assert.Error(t, err)
}
