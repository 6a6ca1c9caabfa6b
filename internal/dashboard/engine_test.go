package dashboard

import (
	"testing"
	"time"

	"github.com/ClinicaFlow/api-financeiro/internal/appointment"
	"github.com/ClinicaFlow/api-financeiro/internal/cardfeerule"
	"github.com/ClinicaFlow/api-financeiro/internal/collaborator"
	"github.com/ClinicaFlow/api-financeiro/internal/procedure"
	"github.com/ClinicaFlow/api-financeiro/internal/quote"
	"github.com/ClinicaFlow/api-financeiro/internal/sale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeStatsReceitaLiquida(t *testing.T) {
	in := Input{
		Start:   dia(2024, time.May, 1),
		End:     dia(2024, time.May, 31),
		Now:     dia(2024, time.June, 1),
		TaxRate: 6,
		Sales: []sale.Sale{
			{
				TotalAmount: 1000,
				SaleDate:    dia(2024, time.May, 10),
				Items: []sale.SaleItem{
					{ProcedureID: 1, CollaboratorID: 1, Quantity: 2, UnitPrice: 500},
				},
				Splits: []sale.PaymentSplit{
					{Method: sale.MethodCreditCard, CardOperator: "Stone", Amount: 1000, Installments: 3},
				},
			},
		},
		Procedures: map[uint]procedure.Procedure{
			1: {ID: 1, Name: "Limpeza", SupplyCost: 5, SupplyQuantity: 2},
		},
		Collaborators: map[uint]collaborator.Collaborator{
			1: {ID: 1, Role: "Dentista", CommissionType: collaborator.CommissionPercentage, CommissionValue: 10, HourlyRate: 120},
		},
		FeeRules: []cardfeerule.CardFeeRule{
			{CardOperator: "Stone", CardType: cardfeerule.CardTypeCredit, InstallmentCount: 3, FeePercentage: 5, ReceivingDays: 30, IsActive: true},
		},
	}

	stats := ComputeStats(in)

	assert.InDelta(t, 1000, stats.Financial.GrossRevenue, 0.001)
	assert.InDelta(t, 20, stats.Financial.SupplyCosts, 0.001)    // 5 × 2 × 2
	assert.InDelta(t, 100, stats.Financial.LaborCosts, 0.001)    // 500 × 10% × 2
	assert.InDelta(t, 60, stats.Financial.EstimatedTaxes, 0.001) // 1000 × 6%
	assert.InDelta(t, 50, stats.Financial.CardFees, 0.001)       // 1000 × 5%
	assert.InDelta(t, 770, stats.Financial.NetRevenue, 0.001)
}

func TestComputeStatsComissaoFixa(t *testing.T) {
	in := Input{
		Sales: []sale.Sale{
			{
				TotalAmount: 600,
				Items: []sale.SaleItem{
					{ProcedureID: 2, CollaboratorID: 3, Quantity: 3, UnitPrice: 200},
				},
			},
		},
		Collaborators: map[uint]collaborator.Collaborator{
			3: {ID: 3, CommissionType: collaborator.CommissionFixed, CommissionValue: 40},
		},
		Procedures: map[uint]procedure.Procedure{},
	}

	stats := ComputeStats(in)
	assert.InDelta(t, 120, stats.Financial.LaborCosts, 0.001) // 40 × 3
}

func TestComputeStatsTaxaDeCartaoSemRegra(t *testing.T) {
	in := Input{
		Sales: []sale.Sale{
			{
				TotalAmount: 500,
				Splits: []sale.PaymentSplit{
					{Method: sale.MethodCreditCard, CardOperator: "Rede", Amount: 500, Installments: 12},
				},
			},
		},
	}

	stats := ComputeStats(in)
	// faixa não configurada resolve para taxa zero, não bloqueia o cálculo
	assert.Zero(t, stats.Financial.CardFees)
}

func TestComputeStatsDebitoNaoEntraNasTaxas(t *testing.T) {
	in := Input{
		Sales: []sale.Sale{
			{
				TotalAmount: 500,
				Splits: []sale.PaymentSplit{
					{Method: sale.MethodDebitCard, CardOperator: "Stone", Amount: 500, Installments: 1},
				},
			},
		},
		FeeRules: []cardfeerule.CardFeeRule{
			{CardOperator: "Stone", CardType: cardfeerule.CardTypeDebit, InstallmentCount: 1, FeePercentage: 1.5, ReceivingDays: 1, IsActive: true},
		},
	}

	stats := ComputeStats(in)
	assert.Zero(t, stats.Financial.CardFees)
}

func TestComputeStatsPeriodoVazio(t *testing.T) {
	stats := ComputeStats(Input{Now: dia(2024, time.June, 1)})

	assert.Zero(t, stats.Financial.GrossRevenue)
	assert.Zero(t, stats.Financial.NetRevenue)
	assert.Zero(t, stats.Operations.AverageTicket)
	assert.Zero(t, stats.Conversion.Rate)
	assert.Zero(t, stats.Receivables.Total)
	assert.NotNil(t, stats.Charts.PaymentMethodDistribution)
	assert.NotNil(t, stats.Charts.RevenueTrend)
	assert.Empty(t, stats.TopProcedures)
}

func TestComputeStatsAgingAPartirDeAgora(t *testing.T) {
	agora := dia(2024, time.June, 1)
	in := Input{
		Now: agora,
		PendingReceivables: []sale.Receivable{
			{NetAmount: 100, DueDate: agora.AddDate(0, 0, 10)}, // 0–30
			{NetAmount: 200, DueDate: agora.AddDate(0, 0, 30)}, // 0–30
			{NetAmount: 300, DueDate: agora.AddDate(0, 0, 45)}, // 31–60
			{NetAmount: 400, DueDate: agora.AddDate(0, 0, 75)}, // 61–90
			{NetAmount: 999, DueDate: agora.AddDate(0, 0, 120)}, // fora das faixas
		},
	}

	stats := ComputeStats(in)

	assert.InDelta(t, 300, stats.Receivables.Days0To30.Amount, 0.001)
	assert.Equal(t, 2, stats.Receivables.Days0To30.Count)
	assert.InDelta(t, 300, stats.Receivables.Days31To60.Amount, 0.001)
	assert.InDelta(t, 400, stats.Receivables.Days61To90.Amount, 0.001)
	assert.InDelta(t, 1000, stats.Receivables.Total, 0.001)
}

func TestComputeStatsConversaoDeOrcamentos(t *testing.T) {
	in := Input{
		Quotes: []quote.Quote{
			{Status: quote.StatusAccepted},
			{Status: quote.StatusSent},
			{Status: quote.StatusRejected},
			{Status: quote.StatusAccepted},
		},
	}

	stats := ComputeStats(in)
	assert.Equal(t, 4, stats.Conversion.TotalQuotes)
	assert.Equal(t, 2, stats.Conversion.AcceptedQuotes)
	assert.InDelta(t, 50, stats.Conversion.Rate, 0.001)
}

func TestComputeStatsTopProcedimentos(t *testing.T) {
	vendas := []sale.Sale{
		{Items: []sale.SaleItem{
			{ProcedureID: 1, Quantity: 5, UnitPrice: 100},
			{ProcedureID: 2, Quantity: 2, UnitPrice: 300},
		}},
		{Items: []sale.SaleItem{
			{ProcedureID: 2, Quantity: 4, UnitPrice: 300},
			{ProcedureID: 3, Quantity: 1, UnitPrice: 900},
		}},
	}
	in := Input{
		Sales: vendas,
		Procedures: map[uint]procedure.Procedure{
			1: {ID: 1, Name: "Limpeza"},
			2: {ID: 2, Name: "Clareamento"},
			3: {ID: 3, Name: "Implante"},
		},
	}

	stats := ComputeStats(in)

	require.Len(t, stats.TopProcedures, 3)
	assert.Equal(t, "Clareamento", stats.TopProcedures[0].Name) // 6 unidades
	assert.Equal(t, 6, stats.TopProcedures[0].Quantity)
	assert.InDelta(t, 1800, stats.TopProcedures[0].Revenue, 0.001)
	assert.Equal(t, "Limpeza", stats.TopProcedures[1].Name)
}

func TestComputeStatsDistribuicaoComCampoLegado(t *testing.T) {
	in := Input{
		Sales: []sale.Sale{
			{
				TotalAmount: 300,
				Splits: []sale.PaymentSplit{
					{Method: sale.MethodCashPix, Amount: 300, Installments: 1},
				},
			},
			// venda antiga sem splits: cai no campo legado de forma única
			{TotalAmount: 200, PaymentMethod: sale.MethodBankSlip},
		},
	}

	stats := ComputeStats(in)

	assert.InDelta(t, 300, stats.Charts.PaymentMethodDistribution["Dinheiro/Pix"], 0.001)
	assert.InDelta(t, 200, stats.Charts.PaymentMethodDistribution["Boleto"], 0.001)
}

func TestComputeStatsOperacoesEPacientes(t *testing.T) {
	in := Input{
		Sales: []sale.Sale{
			{TotalAmount: 400},
			{TotalAmount: 600},
		},
		Appointments: map[string]int64{
			appointment.StatusCompleted: 8,
			appointment.StatusScheduled: 3,
			appointment.StatusCancelled: 1,
		},
		NewPatients:   5,
		TotalPatients: 50,
	}

	stats := ComputeStats(in)

	assert.Equal(t, int64(12), stats.Operations.TotalSessions)
	assert.Equal(t, int64(8), stats.Operations.CompletedSessions)
	assert.Equal(t, int64(1), stats.Operations.CancelledSessions)
	assert.Equal(t, 2, stats.Operations.TotalSales)
	assert.InDelta(t, 500, stats.Operations.AverageTicket, 0.001)

	assert.Equal(t, int64(5), stats.Patients.New)
	assert.InDelta(t, 10, stats.Patients.Rate, 0.001)
}

func TestComputeStatsCustoPorFuncao(t *testing.T) {
	in := Input{
		Collaborators: map[uint]collaborator.Collaborator{
			1: {ID: 1, Role: "Dentista", HourlyRate: 100},
			2: {ID: 2, Role: "Dentista", HourlyRate: 140},
			3: {ID: 3, Role: "Recepção", HourlyRate: 30},
		},
	}

	stats := ComputeStats(in)

	require.Len(t, stats.ProfessionalCosts, 2)
	assert.Equal(t, "Dentista", stats.ProfessionalCosts[0].Role)
	assert.Equal(t, 2, stats.ProfessionalCosts[0].Collaborators)
	assert.InDelta(t, 120, stats.ProfessionalCosts[0].AverageHourlyRate, 0.001)
	assert.Equal(t, "Recepção", stats.ProfessionalCosts[1].Role)
}
