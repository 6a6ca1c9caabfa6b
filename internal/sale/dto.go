package sale

import "time"

// InstallmentDetail é a entrada parcial de uma parcela no checkout. Valor e
// data são opcionais; o agendador completa o que faltar.
type InstallmentDetail struct {
	Amount  *float64   `json:"amount,omitempty"`
	DueDate *time.Time `json:"dueDate,omitempty"`
}

// PaymentSplitRequest é uma forma de pagamento informada no checkout.
type PaymentSplitRequest struct {
	PaymentMethod      string              `json:"paymentMethod"`
	CardOperator       string              `json:"cardOperator,omitempty"`
	Amount             float64             `json:"amount"`
	Installments       int                 `json:"installments"`
	InstallmentDetails []InstallmentDetail `json:"installmentDetails,omitempty"`
}

// SaleItemRequest é um item informado no checkout.
type SaleItemRequest struct {
	ProcedureID    uint    `json:"procedureId"`
	CollaboratorID uint    `json:"collaboratorId,omitempty"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unitPrice"`
}

// CreateSaleRequest é o payload de POST /vendas.
type CreateSaleRequest struct {
	PatientID     uint                  `json:"patientId"`
	TotalAmount   float64               `json:"totalAmount"`
	SaleDate      *time.Time            `json:"saleDate,omitempty"`
	Items         []SaleItemRequest     `json:"items"`
	PaymentSplits []PaymentSplitRequest `json:"paymentSplits"`
}
