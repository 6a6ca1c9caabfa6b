package quote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionFluxoCompleto(t *testing.T) {
	agora := time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC)
	q := &Quote{Status: StatusPending}

	require.NoError(t, Transition(q, StatusSent, agora))
	assert.Equal(t, StatusSent, q.Status)
	require.NotNil(t, q.SentDate)

	require.NoError(t, Transition(q, StatusAccepted, agora.Add(time.Hour)))
	assert.Equal(t, StatusAccepted, q.Status)
	require.NotNil(t, q.AcceptedDate)
}

func TestTransitionAceiteExigeEnvio(t *testing.T) {
	q := &Quote{Status: StatusPending}
	err := Transition(q, StatusAccepted, time.Now())
	assert.Error(t, err)
	assert.Equal(t, StatusPending, q.Status)
}

func TestTransitionAceitoEhTerminal(t *testing.T) {
	q := &Quote{Status: StatusAccepted}
	for _, destino := range []string{StatusPending, StatusSent, StatusRejected, StatusExpired} {
		err := Transition(q, destino, time.Now())
		assert.ErrorIs(t, err, ErrAcceptedTerminal)
		assert.Equal(t, StatusAccepted, q.Status)
	}
}

func TestTransitionReversivelAntesDoAceite(t *testing.T) {
	q := &Quote{Status: StatusSent}
	require.NoError(t, Transition(q, StatusPending, time.Now()))
	assert.Equal(t, StatusPending, q.Status)

	q = &Quote{Status: StatusRejected}
	require.NoError(t, Transition(q, StatusSent, time.Now()))
	assert.Equal(t, StatusSent, q.Status)
}

func TestTransitionCarimboIdempotente(t *testing.T) {
	primeira := time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)
	segunda := primeira.Add(48 * time.Hour)

	q := &Quote{Status: StatusPending}
	require.NoError(t, Transition(q, StatusSent, primeira))
	require.NotNil(t, q.SentDate)

	// reenviar não sobrescreve o carimbo original
	require.NoError(t, Transition(q, StatusSent, segunda))
	assert.Equal(t, primeira, *q.SentDate)
}

func TestTransitionStatusDesconhecido(t *testing.T) {
	q := &Quote{Status: StatusPending}
	assert.Error(t, Transition(q, "DRAFT", time.Now()))
}

func TestApplyDiscountPercentual(t *testing.T) {
	q := &Quote{
		DiscountType:    DiscountPercent,
		DiscountPercent: 10,
		Items: []QuoteItem{
			{Quantity: 2, UnitPrice: 300},
			{Quantity: 1, UnitPrice: 400},
		},
	}
	require.NoError(t, ApplyDiscount(q))

	assert.InDelta(t, 900, q.FinalAmount, 0.001)  // 1000 − 10%
	assert.InDelta(t, 100, q.DiscountFixed, 0.001) // forma fixa derivada
}

func TestApplyDiscountFixoDerivaPercentual(t *testing.T) {
	q := &Quote{
		DiscountType:  DiscountFixed,
		DiscountFixed: 250,
		Items: []QuoteItem{
			{Quantity: 1, UnitPrice: 1000},
		},
	}
	require.NoError(t, ApplyDiscount(q))

	assert.InDelta(t, 750, q.FinalAmount, 0.001)
	assert.InDelta(t, 25, q.DiscountPercent, 0.001)
}

func TestApplyDiscountMaiorQueTotal(t *testing.T) {
	q := &Quote{
		DiscountType:  DiscountFixed,
		DiscountFixed: 500,
		Items:         []QuoteItem{{Quantity: 1, UnitPrice: 100}},
	}
	assert.Error(t, ApplyDiscount(q))
}
