package cost

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFirstDueDate indica custo parcelado sem data da primeira parcela.
	ErrMissingFirstDueDate = errors.New("custo parcelado exige firstDueDate")
	// ErrInvalidInstallments indica quantidade de parcelas fora do mínimo.
	ErrInvalidInstallments = errors.New("custo parcelado exige totalInstallments >= 1")
)

// MonthsPerPeriod devolve o passo em meses entre parcelas para a frequência.
func MonthsPerPeriod(frequency string) (int, error) {
	switch frequency {
	case FrequencyMonthly:
		return 1, nil
	case FrequencyQuarterly:
		return 3, nil
	case FrequencyYearly:
		return 12, nil
	}
	return 0, fmt.Errorf("frequência desconhecida: %q", frequency)
}

// ExpandInstallments materializa os lançamentos de um custo parcelado.
// A expansão é feita integralmente na criação do custo, nunca na consulta:
// valor por parcela = valor fixo / quantidade, vencimentos somando
// (índice × meses da frequência) à primeira data.
//
// Custos sem recorrência parcelada não geram lançamentos aqui: o não
// recorrente é o próprio lançamento e o recorrente indefinido é resolvido por
// período pelo agregador.
func ExpandInstallments(c Cost) ([]CostInstallment, error) {
	if c.Recurrence != RecurrenceInstallments {
		return nil, nil
	}
	if c.TotalInstallments < 1 {
		return nil, ErrInvalidInstallments
	}
	if c.FirstDueDate == nil {
		return nil, ErrMissingFirstDueDate
	}
	meses, err := MonthsPerPeriod(c.Frequency)
	if err != nil {
		return nil, err
	}

	valorParcela := c.Value / float64(c.TotalInstallments)
	parcelas := make([]CostInstallment, 0, c.TotalInstallments)
	for i := 0; i < c.TotalInstallments; i++ {
		parcelas = append(parcelas, CostInstallment{
			Number:  i + 1,
			Amount:  valorParcela,
			DueDate: c.FirstDueDate.AddDate(0, i*meses, 0),
			Status:  "PENDING",
		})
	}
	return parcelas, nil
}
