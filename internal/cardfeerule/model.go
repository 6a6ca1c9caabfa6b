package cardfeerule

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de cartão aceitos na tabela de taxas.
const (
	CardTypeCredit = "CREDIT"
	CardTypeDebit  = "DEBIT"
)

// CardFeeRule é uma entrada da tabela de taxas da operadora de cartão, chaveada
// por (operadora, tipo de cartão, quantidade de parcelas). Pode existir uma
// regra por faixa de parcelamento para a mesma operadora.
type CardFeeRule struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	WorkspaceID      uint           `gorm:"not null;index" json:"workspaceId"`
	CardOperator     string         `gorm:"size:100;not null;index" json:"cardOperator"`
	CardType         string         `gorm:"size:10;not null" json:"cardType"`
	InstallmentCount int            `gorm:"not null;default:1" json:"installmentCount"`
	FeePercentage    float64        `gorm:"not null;default:0" json:"feePercentage"`
	ReceivingDays    int            `gorm:"not null;default:30" json:"receivingDays"`
	IsActive         bool           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&CardFeeRule{})
}
