package dashboard

import (
	"sort"
	"time"

	"github.com/ClinicaFlow/api-financeiro/internal/appointment"
	"github.com/ClinicaFlow/api-financeiro/internal/cardfeerule"
	"github.com/ClinicaFlow/api-financeiro/internal/collaborator"
	"github.com/ClinicaFlow/api-financeiro/internal/procedure"
	"github.com/ClinicaFlow/api-financeiro/internal/quote"
	"github.com/ClinicaFlow/api-financeiro/internal/sale"
)

// Input reúne os dados do período já consultados pelos repositórios. O motor
// em si é puro. PendingReceivables é a exceção de escopo deliberada: cobre o
// workspace inteiro, não o período, porque a visão de recebíveis olha para
// frente independentemente da janela do relatório.
type Input struct {
	Start   time.Time
	End     time.Time
	Now     time.Time
	TaxRate float64 // percentual estimado de impostos sobre a receita bruta

	Sales              []sale.Sale
	Procedures         map[uint]procedure.Procedure
	Collaborators      map[uint]collaborator.Collaborator
	FeeRules           []cardfeerule.CardFeeRule
	Quotes             []quote.Quote
	PendingReceivables []sale.Receivable
	Appointments       map[string]int64
	NewPatients        int64
	TotalPatients      int64
	MonthlyRevenue     []MonthRevenue
}

// Financial é o bloco de reconhecimento de receita do período.
type Financial struct {
	GrossRevenue   float64 `json:"grossRevenue"`
	SupplyCosts    float64 `json:"supplyCosts"`
	LaborCosts     float64 `json:"laborCosts"`
	EstimatedTaxes float64 `json:"estimatedTaxes"`
	CardFees       float64 `json:"cardFees"`
	NetRevenue     float64 `json:"netRevenue"`
}

// Operations são as contagens operacionais do período.
type Operations struct {
	TotalSessions     int64   `json:"totalSessions"`
	CompletedSessions int64   `json:"completedSessions"`
	CancelledSessions int64   `json:"cancelledSessions"`
	TotalSales        int     `json:"totalSales"`
	AverageTicket     float64 `json:"averageTicket"`
}

// Conversion é a taxa de conversão de orçamentos criados no período.
type Conversion struct {
	TotalQuotes    int     `json:"totalQuotes"`
	AcceptedQuotes int     `json:"acceptedQuotes"`
	Rate           float64 `json:"rate"`
}

// AgingBucket é uma faixa de vencimento de recebíveis.
type AgingBucket struct {
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// ReceivablesAging são as faixas 0–30/31–60/61–90 dias contadas a partir de
// agora, sobre todas as parcelas pendentes do workspace.
type ReceivablesAging struct {
	Days0To30  AgingBucket `json:"days0to30"`
	Days31To60 AgingBucket `json:"days31to60"`
	Days61To90 AgingBucket `json:"days61to90"`
	Total      float64     `json:"total"`
}

// PatientsBlock são os indicadores de pacientes do período.
type PatientsBlock struct {
	New   int64   `json:"new"`
	Total int64   `json:"total"`
	Rate  float64 `json:"rate"`
}

// MonthRevenue é um ponto da tendência de 6 meses.
type MonthRevenue struct {
	Month string  `json:"month"` // AAAA-MM
	Total float64 `json:"total"`
}

// Charts agrupa as séries para os gráficos do dashboard.
type Charts struct {
	RevenueTrend              []MonthRevenue     `json:"revenueTrend"`
	PaymentMethodDistribution map[string]float64 `json:"paymentMethodDistribution"`
}

// TopProcedure é uma linha do ranking de procedimentos.
type TopProcedure struct {
	ProcedureID uint    `json:"procedureId"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

// RoleCost é o custo-hora médio por função dos colaboradores ativos.
type RoleCost struct {
	Role              string  `json:"role"`
	Collaborators     int     `json:"collaborators"`
	AverageHourlyRate float64 `json:"averageHourlyRate"`
}

// Stats é a resposta completa de GET /dashboard.
type Stats struct {
	Financial         Financial        `json:"financial"`
	Operations        Operations       `json:"operations"`
	Conversion        Conversion       `json:"conversion"`
	Receivables       ReceivablesAging `json:"receivables"`
	Patients          PatientsBlock    `json:"patients"`
	Charts            Charts           `json:"charts"`
	TopProcedures     []TopProcedure   `json:"topProcedures"`
	ProfessionalCosts []RoleCost       `json:"professionalCosts"`
}

// ComputeStats deriva a receita líquida e os demais indicadores do período:
// netRevenue = grossRevenue − supplyCosts − laborCosts − estimatedTaxes −
// cardFees. Período sem movimento produz blocos zerados, nunca erro.
func ComputeStats(in Input) Stats {
	var stats Stats

	// ----- financeiro -----
	for _, venda := range in.Sales {
		stats.Financial.GrossRevenue += venda.TotalAmount

		for _, item := range venda.Items {
			if proc, ok := in.Procedures[item.ProcedureID]; ok {
				stats.Financial.SupplyCosts += proc.SupplyCost * proc.SupplyQuantity * float64(item.Quantity)
			}
			if col, ok := in.Collaborators[item.CollaboratorID]; ok {
				switch col.CommissionType {
				case collaborator.CommissionPercentage:
					stats.Financial.LaborCosts += item.UnitPrice * col.CommissionValue / 100 * float64(item.Quantity)
				case collaborator.CommissionFixed:
					stats.Financial.LaborCosts += col.CommissionValue * float64(item.Quantity)
				}
			}
		}

		for _, split := range venda.Splits {
			if split.Method != sale.MethodCreditCard {
				continue
			}
			res := cardfeerule.ResolveFrom(in.FeeRules, split.CardOperator, cardfeerule.CardTypeCredit, split.Installments)
			stats.Financial.CardFees += split.Amount * res.FeePercentage / 100
		}
	}
	stats.Financial.EstimatedTaxes = stats.Financial.GrossRevenue * in.TaxRate / 100
	stats.Financial.NetRevenue = stats.Financial.GrossRevenue -
		stats.Financial.SupplyCosts -
		stats.Financial.LaborCosts -
		stats.Financial.EstimatedTaxes -
		stats.Financial.CardFees

	// ----- operações -----
	for _, total := range in.Appointments {
		stats.Operations.TotalSessions += total
	}
	stats.Operations.CompletedSessions = in.Appointments[appointment.StatusCompleted]
	stats.Operations.CancelledSessions = in.Appointments[appointment.StatusCancelled]
	stats.Operations.TotalSales = len(in.Sales)
	if len(in.Sales) > 0 {
		stats.Operations.AverageTicket = stats.Financial.GrossRevenue / float64(len(in.Sales))
	}

	// ----- conversão de orçamentos -----
	stats.Conversion.TotalQuotes = len(in.Quotes)
	for _, q := range in.Quotes {
		if q.Status == quote.StatusAccepted {
			stats.Conversion.AcceptedQuotes++
		}
	}
	if stats.Conversion.TotalQuotes > 0 {
		stats.Conversion.Rate = float64(stats.Conversion.AcceptedQuotes) / float64(stats.Conversion.TotalQuotes) * 100
	}

	// ----- aging de recebíveis (a partir de agora, workspace inteiro) -----
	for _, rec := range in.PendingReceivables {
		dias := int(rec.DueDate.Sub(in.Now).Hours() / 24)
		switch {
		case dias < 0 || dias > 90:
			continue
		case dias <= 30:
			stats.Receivables.Days0To30.Amount += rec.NetAmount
			stats.Receivables.Days0To30.Count++
		case dias <= 60:
			stats.Receivables.Days31To60.Amount += rec.NetAmount
			stats.Receivables.Days31To60.Count++
		default:
			stats.Receivables.Days61To90.Amount += rec.NetAmount
			stats.Receivables.Days61To90.Count++
		}
	}
	stats.Receivables.Total = stats.Receivables.Days0To30.Amount +
		stats.Receivables.Days31To60.Amount +
		stats.Receivables.Days61To90.Amount

	// ----- pacientes -----
	stats.Patients.New = in.NewPatients
	stats.Patients.Total = in.TotalPatients
	if in.TotalPatients > 0 {
		stats.Patients.Rate = float64(in.NewPatients) / float64(in.TotalPatients) * 100
	}

	// ----- gráficos -----
	stats.Charts.RevenueTrend = in.MonthlyRevenue
	if stats.Charts.RevenueTrend == nil {
		stats.Charts.RevenueTrend = []MonthRevenue{}
	}
	stats.Charts.PaymentMethodDistribution = paymentDistribution(in.Sales)

	stats.TopProcedures = topProcedures(in.Sales, in.Procedures)
	stats.ProfessionalCosts = roleCosts(in.Collaborators)
	return stats
}

// paymentDistribution abre a receita por forma de pagamento: usa os splits
// quando existem e cai no campo legado de forma única quando não.
func paymentDistribution(vendas []sale.Sale) map[string]float64 {
	dist := map[string]float64{}
	for _, venda := range vendas {
		if len(venda.Splits) > 0 {
			for _, split := range venda.Splits {
				dist[sale.MethodLabel(split.Method)] += split.Amount
			}
			continue
		}
		if venda.PaymentMethod != "" {
			dist[sale.MethodLabel(venda.PaymentMethod)] += venda.TotalAmount
		}
	}
	return dist
}

// topProcedures ranqueia os 5 procedimentos mais vendidos por quantidade.
func topProcedures(vendas []sale.Sale, procedimentos map[uint]procedure.Procedure) []TopProcedure {
	porProcedimento := map[uint]*TopProcedure{}
	for _, venda := range vendas {
		for _, item := range venda.Items {
			linha, ok := porProcedimento[item.ProcedureID]
			if !ok {
				linha = &TopProcedure{ProcedureID: item.ProcedureID}
				if proc, ok := procedimentos[item.ProcedureID]; ok {
					linha.Name = proc.Name
				}
				porProcedimento[item.ProcedureID] = linha
			}
			linha.Quantity += item.Quantity
			linha.Revenue += item.UnitPrice * float64(item.Quantity)
		}
	}

	ranking := make([]TopProcedure, 0, len(porProcedimento))
	for _, linha := range porProcedimento {
		ranking = append(ranking, *linha)
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Quantity != ranking[j].Quantity {
			return ranking[i].Quantity > ranking[j].Quantity
		}
		return ranking[i].ProcedureID < ranking[j].ProcedureID
	})
	if len(ranking) > 5 {
		ranking = ranking[:5]
	}
	return ranking
}

// roleCosts agrupa o custo-hora médio por função.
func roleCosts(colaboradores map[uint]collaborator.Collaborator) []RoleCost {
	type acumulado struct {
		soma  float64
		total int
	}
	porFuncao := map[string]*acumulado{}
	for _, col := range colaboradores {
		funcao := col.Role
		if funcao == "" {
			funcao = "Sem função"
		}
		acc, ok := porFuncao[funcao]
		if !ok {
			acc = &acumulado{}
			porFuncao[funcao] = acc
		}
		acc.soma += col.HourlyRate
		acc.total++
	}

	custos := make([]RoleCost, 0, len(porFuncao))
	for funcao, acc := range porFuncao {
		custos = append(custos, RoleCost{
			Role:              funcao,
			Collaborators:     acc.total,
			AverageHourlyRate: acc.soma / float64(acc.total),
		})
	}
	sort.Slice(custos, func(i, j int) bool { return custos[i].Role < custos[j].Role })
	return custos
}
