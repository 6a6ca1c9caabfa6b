package cashflow

import (
	"time"

	"github.com/ClinicaFlow/api-financeiro/internal/cost"
	"github.com/ClinicaFlow/api-financeiro/internal/sale"
)

const dayLayout = "2006-01-02"

// Input reúne tudo que o agregador precisa, já consultado pelos repositórios.
// A agregação em si é pura: sem acesso a banco, sem relógio.
type Input struct {
	Start       time.Time
	End         time.Time
	Receivables []sale.Receivable // parcelas com vencimento no intervalo
	Costs       []cost.Cost       // definições ativas do workspace
	CostEntries []cost.Expense    // lançamentos parcelados com vencimento no intervalo
	Sales       []sale.Sale       // vendas do intervalo, com splits
}

// Summary são os totais do período.
type Summary struct {
	TotalReceivables float64 `json:"totalReceivables"`
	TotalExpenses    float64 `json:"totalExpenses"`
	NetCashFlow      float64 `json:"netCashFlow"`
}

// ExpenseEntry é uma despesa aplicável ao período. DueDate nulo indica despesa
// sem data própria (aplicável ao período como um todo), que entra nos totais
// mas não na série diária.
type ExpenseEntry struct {
	CostID      uint       `json:"costId"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Amount      float64    `json:"amount"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// DailyFlow é o ponto da série diária.
type DailyFlow struct {
	Date        string  `json:"date"`
	Receivables float64 `json:"receivables"`
	Expenses    float64 `json:"expenses"`
	NetFlow     float64 `json:"netFlow"`
}

// Breakdowns agrupa despesas por categoria e recebíveis por forma de
// pagamento.
type Breakdowns struct {
	ExpensesByCategory  map[string]float64 `json:"expensesByCategory"`
	ReceivablesByMethod map[string]float64 `json:"receivablesByMethod"`
}

// MethodMix é a abertura à vista × parcelado de uma forma de pagamento.
type MethodMix struct {
	AtOnce      float64 `json:"atOnce"`
	Installment float64 `json:"installment"`
	Total       float64 `json:"total"`
	Percentage  float64 `json:"percentage"`
}

// PaymentAnalysis é a análise sobre as vendas do período (não sobre as
// parcelas): quanto entrou à vista (1 parcela) versus parcelado.
type PaymentAnalysis struct {
	AtOnceTotal           float64              `json:"atOnceTotal"`
	InstallmentTotal      float64              `json:"installmentTotal"`
	Total                 float64              `json:"total"`
	AtOncePercentage      float64              `json:"atOncePercentage"`
	InstallmentPercentage float64              `json:"installmentPercentage"`
	ByMethod              map[string]MethodMix `json:"byMethod"`
}

// Report é a resposta completa de GET /fluxo-caixa.
type Report struct {
	Summary         Summary           `json:"summary"`
	Receivables     []sale.Receivable `json:"receivables"`
	Expenses        []ExpenseEntry    `json:"expenses"`
	DailyCashFlow   []DailyFlow       `json:"dailyCashFlow"`
	Breakdowns      Breakdowns        `json:"breakdowns"`
	PaymentAnalysis PaymentAnalysis   `json:"paymentAnalysis"`
}

func sameOrAfter(a, b time.Time) bool { return !a.Before(b) }
func sameOrBefore(a, b time.Time) bool { return !a.After(b) }

// Aggregate monta o relatório de fluxo de caixa em duas fases estritas:
// primeiro os valores fixos (recebíveis, custos fixos e lançamentos datados),
// depois os custos percentuais, resolvidos contra o total de vendas já somado.
// Intervalo sem movimento produz agregados zerados, nunca erro.
func Aggregate(in Input) Report {
	inicio := truncateDay(in.Start)
	fim := truncateDay(in.End)

	report := Report{
		Receivables: in.Receivables,
		Expenses:    []ExpenseEntry{},
		Breakdowns: Breakdowns{
			ExpensesByCategory:  map[string]float64{},
			ReceivablesByMethod: map[string]float64{},
		},
	}
	if report.Receivables == nil {
		report.Receivables = []sale.Receivable{}
	}

	// ----- fase 1: recebíveis e custos de valor fixo -----

	for _, rec := range in.Receivables {
		report.Summary.TotalReceivables += rec.NetAmount
		report.Breakdowns.ReceivablesByMethod[sale.MethodLabel(rec.Method)] += rec.NetAmount
	}

	for _, entrada := range in.CostEntries {
		due := entrada.DueDate
		report.Expenses = append(report.Expenses, ExpenseEntry{
			CostID:      entrada.CostID,
			Description: entrada.Description,
			Category:    categoryLabel(entrada.Category, entrada.Custom),
			Amount:      entrada.Amount,
			DueDate:     &due,
		})
	}

	visto := map[uint]bool{}
	for _, e := range in.CostEntries {
		visto[e.CostID] = true
	}

	for _, c := range in.Costs {
		if !c.IsActive || c.Type == cost.TypePercentage {
			continue
		}
		switch c.Recurrence {
		case cost.RecurrenceNone:
			if c.PaymentDate != nil {
				dia := truncateDay(*c.PaymentDate)
				if sameOrAfter(dia, inicio) && sameOrBefore(dia, fim) {
					report.Expenses = append(report.Expenses, entryFor(c, c.Value, c.PaymentDate))
				}
				continue
			}
			// sem data de pagamento: aplicável ao período consultado
			report.Expenses = append(report.Expenses, entryFor(c, c.Value, nil))
		case cost.RecurrenceIndefinite:
			// um lançamento por período consultado; o dedup evita dupla
			// contagem quando a definição também casou por outro predicado
			if visto[c.ID] {
				continue
			}
			visto[c.ID] = true
			report.Expenses = append(report.Expenses, entryFor(c, c.Value, nil))
		}
	}

	// total de vendas do período, base dos custos percentuais
	var totalVendas float64
	for _, v := range in.Sales {
		totalVendas += v.TotalAmount
	}

	// ----- fase 2: custos percentuais sobre a receita do período -----

	pctVisto := map[uint]bool{}
	for _, c := range in.Costs {
		if !c.IsActive || c.Type != cost.TypePercentage || pctVisto[c.ID] {
			continue
		}
		pctVisto[c.ID] = true
		report.Expenses = append(report.Expenses, entryFor(c, c.Value/100*totalVendas, nil))
	}

	for _, despesa := range report.Expenses {
		report.Summary.TotalExpenses += despesa.Amount
		report.Breakdowns.ExpensesByCategory[despesa.Category] += despesa.Amount
	}
	report.Summary.NetCashFlow = report.Summary.TotalReceivables - report.Summary.TotalExpenses

	report.DailyCashFlow = dailySeries(inicio, fim, in.Receivables, report.Expenses)
	report.PaymentAnalysis = analyzePayments(in.Sales)
	return report
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func categoryLabel(category, custom string) string {
	if custom != "" {
		return custom
	}
	return category
}

func entryFor(c cost.Cost, amount float64, due *time.Time) ExpenseEntry {
	return ExpenseEntry{
		CostID:      c.ID,
		Description: c.Description,
		Category:    c.CategoryLabel(),
		Amount:      amount,
		DueDate:     due,
	}
}

// dailySeries produz um ponto por dia do intervalo, inclusive nas pontas,
// mesmo quando não há movimento.
func dailySeries(inicio, fim time.Time, recebiveis []sale.Receivable, despesas []ExpenseEntry) []DailyFlow {
	recPorDia := map[string]float64{}
	for _, rec := range recebiveis {
		recPorDia[rec.DueDate.Format(dayLayout)] += rec.NetAmount
	}
	despPorDia := map[string]float64{}
	for _, d := range despesas {
		if d.DueDate == nil {
			continue
		}
		despPorDia[d.DueDate.Format(dayLayout)] += d.Amount
	}

	serie := []DailyFlow{}
	for dia := inicio; !dia.After(fim); dia = dia.AddDate(0, 0, 1) {
		chave := dia.Format(dayLayout)
		ponto := DailyFlow{
			Date:        chave,
			Receivables: recPorDia[chave],
			Expenses:    despPorDia[chave],
		}
		ponto.NetFlow = ponto.Receivables - ponto.Expenses
		serie = append(serie, ponto)
	}
	return serie
}

// analyzePayments abre as vendas do período em à vista (1 parcela) versus
// parcelado, no total e por forma de pagamento.
func analyzePayments(vendas []sale.Sale) PaymentAnalysis {
	analise := PaymentAnalysis{ByMethod: map[string]MethodMix{}}
	for _, venda := range vendas {
		for _, split := range venda.Splits {
			rotulo := sale.MethodLabel(split.Method)
			mix := analise.ByMethod[rotulo]
			if split.Installments <= 1 {
				analise.AtOnceTotal += split.Amount
				mix.AtOnce += split.Amount
			} else {
				analise.InstallmentTotal += split.Amount
				mix.Installment += split.Amount
			}
			mix.Total = mix.AtOnce + mix.Installment
			analise.ByMethod[rotulo] = mix
		}
	}
	analise.Total = analise.AtOnceTotal + analise.InstallmentTotal
	if analise.Total > 0 {
		analise.AtOncePercentage = analise.AtOnceTotal / analise.Total * 100
		analise.InstallmentPercentage = analise.InstallmentTotal / analise.Total * 100
		for rotulo, mix := range analise.ByMethod {
			mix.Percentage = mix.Total / analise.Total * 100
			analise.ByMethod[rotulo] = mix
		}
	}
	return analise
}
