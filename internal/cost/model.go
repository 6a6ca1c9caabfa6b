package cost

import (
	"time"

	"gorm.io/gorm"
)

// Tipo do custo.
const (
	TypeFixed      = "FIXED"      // valor fixo
	TypePercentage = "PERCENTAGE" // percentual sobre a receita do período
)

// Categorias de custo. CUSTOM usa o rótulo livre de CustomCategory.
const (
	CategoryOperational = "OPERATIONAL"
	CategoryTax         = "TAX"
	CategoryCommission  = "COMMISSION"
	CategoryCard        = "CARD"
	CategoryCustom      = "CUSTOM"
)

// Recorrência do custo.
const (
	RecurrenceNone         = "NONE"         // lançamento único
	RecurrenceIndefinite   = "RECURRING"    // recorrente sem fim definido
	RecurrenceInstallments = "INSTALLMENTS" // quantidade fixa de parcelas
)

// Frequência de custos recorrentes.
const (
	FrequencyMonthly   = "MONTHLY"
	FrequencyQuarterly = "QUARTERLY"
	FrequencyYearly    = "YEARLY"
)

// Cost é a definição de uma despesa operacional. Custos percentuais não têm
// valor fixado na criação; o montante é resolvido na agregação contra a
// receita do período.
type Cost struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	WorkspaceID       uint              `gorm:"not null;index" json:"workspaceId"`
	Description       string            `gorm:"size:255;not null" json:"description"`
	Type              string            `gorm:"size:20;not null;default:'FIXED'" json:"type"`
	Value             float64           `gorm:"not null;default:0" json:"value"` // valor fixo ou percentual, conforme Type
	Category          string            `gorm:"size:20;not null;default:'OPERATIONAL'" json:"category"`
	CustomCategory    string            `gorm:"size:100" json:"customCategory,omitempty"`
	Recurrence        string            `gorm:"size:20;not null;default:'NONE'" json:"recurrence"`
	Frequency         string            `gorm:"size:20" json:"frequency,omitempty"`
	TotalInstallments int               `gorm:"not null;default:0" json:"totalInstallments"`
	FirstDueDate      *time.Time        `json:"firstDueDate,omitempty"`
	PaymentDate       *time.Time        `json:"paymentDate,omitempty"`
	IsActive          bool              `gorm:"not null;default:true;index" json:"isActive"`
	Installments      []CostInstallment `gorm:"foreignKey:CostID;constraint:OnDelete:CASCADE" json:"installments,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
	DeletedAt         gorm.DeletedAt    `gorm:"index" json:"deletedAt,omitempty"`
}

// CategoryLabel devolve o rótulo usado nos agrupamentos de despesa.
func (c Cost) CategoryLabel() string {
	if c.CustomCategory != "" {
		return c.CustomCategory
	}
	return c.Category
}

// CostInstallment é um lançamento datado de um custo parcelado, gerado em
// lote na criação do custo.
type CostInstallment struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CostID    uint       `gorm:"not null;index" json:"costId"`
	Number    int        `gorm:"not null" json:"number"`
	Amount    float64    `gorm:"not null;default:0" json:"amount"`
	DueDate   time.Time  `gorm:"not null;index" json:"dueDate"`
	Status    string     `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cost{}, &CostInstallment{})
}
