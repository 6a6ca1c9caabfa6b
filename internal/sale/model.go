package sale

import (
	"time"

	"gorm.io/gorm"
)

// Formas de pagamento aceitas em uma venda.
const (
	MethodCashPix    = "CASH_PIX"
	MethodCreditCard = "CREDIT_CARD"
	MethodDebitCard  = "DEBIT_CARD"
	MethodBankSlip   = "BANK_SLIP"
)

// Status de uma parcela a receber.
const (
	StatusPending = "PENDING"
	StatusPaid    = "PAID"
	StatusOverdue = "OVERDUE"
)

// Status de pagamento da venda.
const (
	PaymentPending = "PENDING"
	PaymentPartial = "PARTIAL"
	PaymentPaid    = "PAID"
)

// MethodLabel devolve o rótulo exibido nos agrupamentos por forma de pagamento.
func MethodLabel(method string) string {
	switch method {
	case MethodCashPix:
		return "Dinheiro/Pix"
	case MethodCreditCard:
		return "Cartão de Crédito"
	case MethodDebitCard:
		return "Cartão de Débito"
	case MethodBankSlip:
		return "Boleto"
	}
	return method
}

// IsCardMethod indica se a forma de pagamento passa pela tabela de taxas.
func IsCardMethod(method string) bool {
	return method == MethodCreditCard || method == MethodDebitCard
}

// Sale é uma venda para um paciente. O total é imutável depois que os splits
// existem; splits só entram na criação.
type Sale struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	WorkspaceID uint           `gorm:"not null;index" json:"workspaceId"`
	PatientID   uint           `gorm:"not null;index" json:"patientId"`
	TotalAmount float64        `gorm:"not null;default:0" json:"totalAmount"`
	SaleDate    time.Time      `gorm:"not null;index" json:"saleDate"`
	// PaymentMethod é o campo legado de forma única, usado quando a venda não
	// tem splits (dados anteriores ao parcelamento por forma de pagamento).
	PaymentMethod string         `gorm:"size:20" json:"paymentMethod,omitempty"`
	PaymentStatus string         `gorm:"size:20;not null;default:'PENDING';index" json:"paymentStatus"`
	QuoteID       *uint          `gorm:"index" json:"quoteId,omitempty"`
	Items         []SaleItem     `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items"`
	Splits        []PaymentSplit `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"paymentSplits"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// SaleItem é um item de venda (procedimento × quantidade).
type SaleItem struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	SaleID         uint    `gorm:"not null;index" json:"saleId"`
	ProcedureID    uint    `gorm:"not null;index" json:"procedureId"`
	CollaboratorID uint    `gorm:"index" json:"collaboratorId"`
	Quantity       int     `gorm:"not null;default:1" json:"quantity"`
	UnitPrice      float64 `gorm:"not null;default:0" json:"unitPrice"`
}

// PaymentSplit é a alocação de uma forma de pagamento dentro da venda.
type PaymentSplit struct {
	ID           uint                 `gorm:"primaryKey" json:"id"`
	SaleID       uint                 `gorm:"not null;index" json:"saleId"`
	Method       string               `gorm:"size:20;not null" json:"paymentMethod"`
	CardOperator string               `gorm:"size:100" json:"cardOperator,omitempty"`
	Amount       float64              `gorm:"not null;default:0" json:"amount"`
	Installments int                  `gorm:"not null;default:1" json:"installments"`
	Schedule     []PaymentInstallment `gorm:"foreignKey:PaymentSplitID;constraint:OnDelete:CASCADE" json:"installmentDetails"`
}

// PaymentInstallment é uma parcela a receber. Número e valor são imutáveis
// após a criação; apenas o status transiciona.
type PaymentInstallment struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	PaymentSplitID uint       `gorm:"not null;index" json:"paymentSplitId"`
	Number         int        `gorm:"not null" json:"number"`
	NetAmount      float64    `gorm:"not null;default:0" json:"netAmount"`
	DueDate        *time.Time `gorm:"index" json:"dueDate,omitempty"`
	Status         string     `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	PaymentDate    *time.Time `json:"paymentDate,omitempty"`
	Note           string     `gorm:"size:255" json:"note,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Sale{}, &SaleItem{}, &PaymentSplit{}, &PaymentInstallment{})
}
