package quote

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrAcceptedTerminal indica tentativa de sair do estado ACCEPTED.
	ErrAcceptedTerminal = errors.New("orçamento aceito não pode mudar de status")
	// ErrQuoteConverted indica operação bloqueada por orçamento já convertido em venda.
	ErrQuoteConverted = errors.New("orçamento já convertido em venda")
	// ErrQuoteNotAccepted indica conversão de orçamento que ainda não foi aceito.
	ErrQuoteNotAccepted = errors.New("apenas orçamentos aceitos podem ser convertidos em venda")
)

func validStatus(s string) bool {
	switch s {
	case StatusPending, StatusSent, StatusAccepted, StatusRejected, StatusExpired:
		return true
	}
	return false
}

// Transition aplica a mudança de status respeitando a máquina
// PENDING → SENT → {ACCEPTED | REJECTED | EXPIRED}. Antes da aceitação as
// transições são reversíveis; ACCEPTED é terminal e só é alcançável a partir
// de SENT.
//
// Entrar em SENT/ACCEPTED/REJECTED carimba a data correspondente apenas se
// ainda não estiver preenchida: repetir a transição não sobrescreve o carimbo.
func Transition(q *Quote, to string, now time.Time) error {
	if !validStatus(to) {
		return fmt.Errorf("status desconhecido: %q", to)
	}
	if q.Status == StatusAccepted && to != StatusAccepted {
		return ErrAcceptedTerminal
	}
	if to == StatusAccepted && q.Status != StatusSent && q.Status != StatusAccepted {
		return fmt.Errorf("orçamento %s não pode ser aceito sem ter sido enviado", q.Status)
	}

	q.Status = to
	switch to {
	case StatusSent:
		if q.SentDate == nil {
			q.SentDate = &now
		}
	case StatusAccepted:
		if q.AcceptedDate == nil {
			q.AcceptedDate = &now
		}
	case StatusRejected:
		if q.RejectedDate == nil {
			q.RejectedDate = &now
		}
	}
	return nil
}

// ApplyDiscount calcula o valor final e preenche as duas formas do desconto a
// partir da informada. Percentual e fixo são mutuamente deriváveis sobre o
// total dos itens.
func ApplyDiscount(q *Quote) error {
	total := q.ItemsTotal()
	switch q.DiscountType {
	case "", DiscountFixed:
		if q.DiscountType == "" && q.DiscountFixed == 0 && q.DiscountPercent != 0 {
			// payload informou apenas o percentual
			q.DiscountType = DiscountPercent
			return ApplyDiscount(q)
		}
		q.FinalAmount = total - q.DiscountFixed
		if total > 0 {
			q.DiscountPercent = q.DiscountFixed / total * 100
		}
	case DiscountPercent:
		q.DiscountFixed = total * q.DiscountPercent / 100
		q.FinalAmount = total - q.DiscountFixed
	default:
		return fmt.Errorf("tipo de desconto desconhecido: %q", q.DiscountType)
	}
	if q.FinalAmount < 0 {
		return errors.New("desconto maior que o total dos itens")
	}
	return nil
}
