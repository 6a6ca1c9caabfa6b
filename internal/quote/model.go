package quote

import (
	"time"

	"gorm.io/gorm"
)

// Status do orçamento.
const (
	StatusPending  = "PENDING"
	StatusSent     = "SENT"
	StatusAccepted = "ACCEPTED"
	StatusRejected = "REJECTED"
	StatusExpired  = "EXPIRED"
)

// Tipo de desconto aplicado sobre o total dos itens.
const (
	DiscountPercent = "PERCENT"
	DiscountFixed   = "FIXED"
)

// Quote é uma proposta pré-venda. Desconto percentual e fixo são deriváveis
// um do outro; os dois campos ficam sempre preenchidos. Um orçamento aceito e
// convertido em venda não pode ser apagado nem reconvertido.
type Quote struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	WorkspaceID     uint           `gorm:"not null;index" json:"workspaceId"`
	PatientID       uint           `gorm:"not null;index" json:"patientId"`
	Items           []QuoteItem    `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE" json:"items"`
	DiscountType    string         `gorm:"size:10" json:"discountType,omitempty"`
	DiscountPercent float64        `gorm:"not null;default:0" json:"discountPercent"`
	DiscountFixed   float64        `gorm:"not null;default:0" json:"discountFixed"`
	FinalAmount     float64        `gorm:"not null;default:0" json:"finalAmount"`
	Status          string         `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	SentDate        *time.Time     `json:"sentDate,omitempty"`
	AcceptedDate    *time.Time     `json:"acceptedDate,omitempty"`
	RejectedDate    *time.Time     `json:"rejectedDate,omitempty"`
	SaleID          *uint          `gorm:"index" json:"saleId,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// QuoteItem é um item proposto (procedimento × quantidade).
type QuoteItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	QuoteID     uint    `gorm:"not null;index" json:"quoteId"`
	ProcedureID uint    `gorm:"not null;index" json:"procedureId"`
	Quantity    int     `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   float64 `gorm:"not null;default:0" json:"unitPrice"`
}

// ItemsTotal soma os itens antes do desconto.
func (q Quote) ItemsTotal() float64 {
	var total float64
	for _, item := range q.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Quote{}, &QuoteItem{})
}
