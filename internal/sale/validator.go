package sale

import (
	"errors"
	"fmt"
	"math"
)

// ReconciliationTolerance é a tolerância absoluta entre a soma dos splits e o
// total da venda.
const ReconciliationTolerance = 0.01

// ErrNoSplits indica checkout sem nenhuma forma de pagamento.
var ErrNoSplits = errors.New("a venda precisa de pelo menos uma forma de pagamento")

// ReconciliationError indica que a soma das formas de pagamento não fecha com
// o total da venda. Carrega os dois valores para a mensagem ser acionável.
type ReconciliationError struct {
	Expected float64
	Computed float64
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("soma das formas de pagamento (R$ %.2f) difere do total da venda (R$ %.2f)", e.Computed, e.Expected)
}

// IncompleteScheduleError indica que o detalhamento de parcelas informado não
// bate com a quantidade de parcelas declarada no split.
type IncompleteScheduleError struct {
	Method   string
	Declared int
	Supplied int
}

func (e *IncompleteScheduleError) Error() string {
	return fmt.Sprintf("split %s declara %d parcela(s) mas informou %d detalhe(s)", e.Method, e.Declared, e.Supplied)
}

// ValidateSplits é o portão de validação executado antes de qualquer
// persistência. Garante que a soma dos splits fecha com o total (±0.01) e que
// um detalhamento de parcelas, quando informado, cobre todas as parcelas.
// Detalhamento omitido é permitido: o agendador completa com os padrões.
func ValidateSplits(totalAmount float64, splits []PaymentSplitRequest) error {
	if len(splits) == 0 {
		return ErrNoSplits
	}

	var soma float64
	for _, s := range splits {
		if s.Installments < 1 {
			return fmt.Errorf("split %s com quantidade de parcelas inválida: %d", s.PaymentMethod, s.Installments)
		}
		if n := len(s.InstallmentDetails); n > 0 && n != s.Installments {
			return &IncompleteScheduleError{Method: s.PaymentMethod, Declared: s.Installments, Supplied: n}
		}
		soma += s.Amount
	}

	if math.Abs(soma-totalAmount) > ReconciliationTolerance {
		return &ReconciliationError{Expected: totalAmount, Computed: soma}
	}
	return nil
}
