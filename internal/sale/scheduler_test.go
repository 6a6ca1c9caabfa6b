package sale

import (
	"testing"
	"time"

	"github.com/ClinicaFlow/api-financeiro/internal/cardfeerule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildScheduleVendaSimplesDinheiro(t *testing.T) {
	split := PaymentSplitRequest{PaymentMethod: MethodCashPix, Amount: 1000, Installments: 1}

	parcelas := BuildSchedule(split, dia(2024, time.January, 1), cardfeerule.Fallback())

	require.Len(t, parcelas, 1)
	assert.Equal(t, 1, parcelas[0].Number)
	assert.InDelta(t, 1000, parcelas[0].NetAmount, 0.001)
	assert.Equal(t, StatusPending, parcelas[0].Status)
	assert.Empty(t, parcelas[0].Note)
	assert.Nil(t, parcelas[0].DueDate) // sem stub, forma não-cartão fica sem data
}

func TestBuildScheduleCredito3x(t *testing.T) {
	split := PaymentSplitRequest{PaymentMethod: MethodCreditCard, Amount: 900, Installments: 3}
	res := cardfeerule.Resolution{Found: true, FeePercentage: 5, ReceivingDays: 30}

	parcelas := BuildSchedule(split, dia(2024, time.January, 1), res)

	require.Len(t, parcelas, 3)
	esperadas := []time.Time{
		dia(2024, time.January, 31),
		dia(2024, time.March, 1),
		dia(2024, time.March, 31),
	}
	for i, p := range parcelas {
		assert.Equal(t, i+1, p.Number)
		assert.InDelta(t, 285, p.NetAmount, 0.001) // 300 × (1 − 0.05)
		require.NotNil(t, p.DueDate)
		assert.Equal(t, esperadas[i], *p.DueDate)
		assert.Equal(t, "Taxa de 5.00% aplicada. Valor bruto: R$ 300.00", p.Note)
	}
}

func TestBuildScheduleRecebiveisMonotonicos(t *testing.T) {
	split := PaymentSplitRequest{PaymentMethod: MethodCreditCard, Amount: 1200, Installments: 6}
	res := cardfeerule.Resolution{Found: true, FeePercentage: 3.5, ReceivingDays: 14}
	base := dia(2024, time.June, 10)

	parcelas := BuildSchedule(split, base, res)

	require.Len(t, parcelas, 6)
	primeira := *parcelas[0].DueDate
	assert.Equal(t, base.AddDate(0, 0, 14), primeira)
	for i, p := range parcelas {
		require.NotNil(t, p.DueDate)
		assert.Equal(t, primeira.AddDate(0, 0, 30*i), *p.DueDate)
	}
}

func TestBuildScheduleStubTemPrecedencia(t *testing.T) {
	valorStub := 500.0
	dataStub := dia(2024, time.February, 20)
	split := PaymentSplitRequest{
		PaymentMethod: MethodCreditCard,
		Amount:        900,
		Installments:  2,
		InstallmentDetails: []InstallmentDetail{
			{Amount: &valorStub, DueDate: &dataStub},
			{},
		},
	}
	res := cardfeerule.Resolution{Found: true, FeePercentage: 10, ReceivingDays: 30}
	base := dia(2024, time.January, 1)

	parcelas := BuildSchedule(split, base, res)

	require.Len(t, parcelas, 2)
	// data e valor explícitos ganham dos derivados
	assert.Equal(t, dataStub, *parcelas[0].DueDate)
	assert.InDelta(t, 450, parcelas[0].NetAmount, 0.001) // 500 − 10%
	assert.Equal(t, "Taxa de 10.00% aplicada. Valor bruto: R$ 500.00", parcelas[0].Note)
	// parcela sem stub volta à derivação
	assert.Equal(t, base.AddDate(0, 0, 60), *parcelas[1].DueDate)
	assert.InDelta(t, 405, parcelas[1].NetAmount, 0.001) // 450 − 10%
}

func TestBuildScheduleSemRegraCaiNoFallback(t *testing.T) {
	split := PaymentSplitRequest{PaymentMethod: MethodCreditCard, Amount: 600, Installments: 2}
	base := dia(2024, time.May, 2)

	parcelas := BuildSchedule(split, base, cardfeerule.Fallback())

	require.Len(t, parcelas, 2)
	var soma float64
	for i, p := range parcelas {
		soma += p.NetAmount
		assert.Empty(t, p.Note) // taxa zero não gera nota
		assert.Equal(t, base.AddDate(0, 0, cardfeerule.DefaultReceivingDays+30*i), *p.DueDate)
	}
	assert.InDelta(t, 600, soma, 0.001)
}

func TestBuildScheduleCompletudeESoma(t *testing.T) {
	split := PaymentSplitRequest{PaymentMethod: MethodCreditCard, Amount: 700, Installments: 7}
	res := cardfeerule.Resolution{Found: true, FeePercentage: 4, ReceivingDays: 30}

	parcelas := BuildSchedule(split, dia(2024, time.August, 1), res)

	require.Len(t, parcelas, split.Installments)
	var liquido float64
	for _, p := range parcelas {
		liquido += p.NetAmount
	}
	// soma líquida = bruto − taxas totais
	assert.InDelta(t, 700*(1-0.04), liquido, 0.001)
}

func TestBuildScheduleNaoCartaoComStubDeData(t *testing.T) {
	d1 := dia(2024, time.March, 5)
	d2 := dia(2024, time.April, 5)
	split := PaymentSplitRequest{
		PaymentMethod: MethodBankSlip,
		Amount:        400,
		Installments:  2,
		InstallmentDetails: []InstallmentDetail{
			{DueDate: &d1},
			{DueDate: &d2},
		},
	}

	parcelas := BuildSchedule(split, dia(2024, time.March, 1), cardfeerule.Fallback())

	require.Len(t, parcelas, 2)
	assert.Equal(t, d1, *parcelas[0].DueDate)
	assert.Equal(t, d2, *parcelas[1].DueDate)
	assert.InDelta(t, 200, parcelas[0].NetAmount, 0.001)
	assert.InDelta(t, 200, parcelas[1].NetAmount, 0.001)
}
