package sale

import (
	"fmt"
	"time"

	"github.com/ClinicaFlow/api-financeiro/internal/cardfeerule"
)

// Dias entre as janelas de recebimento de parcelas sucessivas de cartão.
const cardInstallmentIntervalDays = 30

// BuildSchedule expande um split em suas parcelas. É uma função pura e total:
// qualquer combinação de detalhamento parcial produz um cronograma completo.
//
// Regras de precedência: valor e data informados no detalhamento sempre ganham
// dos derivados. Data explícita representa compromisso de liquidação
// confirmado; data derivada é estimativa de fluxo de caixa.
//
// Para formas de cartão, a resolução da tabela de taxas define o percentual
// descontado e a janela de recebimento da primeira parcela; cada parcela
// seguinte é estimada 30 dias corridos após a anterior.
func BuildSchedule(split PaymentSplitRequest, baseDate time.Time, res cardfeerule.Resolution) []PaymentInstallment {
	n := split.Installments
	if n < 1 {
		n = 1
	}
	valorPadrao := split.Amount / float64(n)

	parcelas := make([]PaymentInstallment, 0, n)
	for i := 0; i < n; i++ {
		var detalhe InstallmentDetail
		if i < len(split.InstallmentDetails) {
			detalhe = split.InstallmentDetails[i]
		}

		bruto := valorPadrao
		if detalhe.Amount != nil {
			bruto = *detalhe.Amount
		}

		parcela := PaymentInstallment{
			Number:  i + 1,
			Status:  StatusPending,
			DueDate: detalhe.DueDate,
		}

		if IsCardMethod(split.PaymentMethod) {
			taxa := bruto * res.FeePercentage / 100
			parcela.NetAmount = bruto - taxa
			if detalhe.DueDate == nil {
				recebivel := baseDate.AddDate(0, 0, res.ReceivingDays+i*cardInstallmentIntervalDays)
				parcela.DueDate = &recebivel
			}
			if res.FeePercentage > 0 {
				parcela.Note = fmt.Sprintf("Taxa de %.2f%% aplicada. Valor bruto: R$ %.2f", res.FeePercentage, bruto)
			}
		} else {
			parcela.NetAmount = bruto
		}

		parcelas = append(parcelas, parcela)
	}
	return parcelas
}
