package cardfeerule

// DefaultReceivingDays é a janela de recebimento usada quando nenhuma regra
// cobre a faixa de parcelamento consultada.
const DefaultReceivingDays = 30

// Resolution é o resultado da consulta à tabela de taxas. Quando Found é
// false, a liquidação segue com taxa zero e janela padrão: faixa não
// configurada não pode bloquear a venda.
type Resolution struct {
	Found         bool    `json:"found"`
	FeePercentage float64 `json:"feePercentage"`
	ReceivingDays int     `json:"receivingDays"`
}

// Fallback é a resolução aplicada na ausência de regra configurada.
func Fallback() Resolution {
	return Resolution{Found: false, FeePercentage: 0, ReceivingDays: DefaultReceivingDays}
}

// ResolveFrom procura a regra ativa de (operadora, tipo, parcelas) em uma
// lista já carregada. O casamento de parcelas é exato; não há interpolação
// entre faixas.
func ResolveFrom(rules []CardFeeRule, operator, cardType string, installments int) Resolution {
	for _, r := range rules {
		if !r.IsActive {
			continue
		}
		if r.CardOperator == operator && r.CardType == cardType && r.InstallmentCount == installments {
			return Resolution{Found: true, FeePercentage: r.FeePercentage, ReceivingDays: r.ReceivingDays}
		}
	}
	return Fallback()
}

// Resolver consulta a tabela de taxas persistida.
type Resolver struct {
	Repo *Repository
}

func NewResolver(repo *Repository) *Resolver {
	return &Resolver{Repo: repo}
}

// Resolve busca a regra exata no banco. Ausência de regra não é erro.
func (rs *Resolver) Resolve(workspaceID uint, operator, cardType string, installments int) (Resolution, error) {
	rule, err := rs.Repo.FindRule(workspaceID, operator, cardType, installments)
	if err != nil {
		return Fallback(), err
	}
	if rule == nil {
		return Fallback(), nil
	}
	return Resolution{Found: true, FeePercentage: rule.FeePercentage, ReceivingDays: rule.ReceivingDays}, nil
}
