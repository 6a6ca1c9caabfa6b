package collaborator

import (
	"time"

	"gorm.io/gorm"
)

// Tipo de comissão do colaborador.
const (
	CommissionPercentage = "PERCENTAGE" // percentual sobre o valor do item
	CommissionFixed      = "FIXED"      // valor fixo por sessão
)

// Collaborator é um profissional da clínica. A configuração de comissão
// alimenta o cálculo de custo de mão de obra do motor de receita.
type Collaborator struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	WorkspaceID     uint           `gorm:"not null;index" json:"workspaceId"`
	Name            string         `gorm:"size:150;not null" json:"name"`
	Role            string         `gorm:"size:100" json:"role"`
	CommissionType  string         `gorm:"size:20;not null;default:'PERCENTAGE'" json:"commissionType"`
	CommissionValue float64        `gorm:"not null;default:0" json:"commissionValue"`
	HourlyRate      float64        `gorm:"not null;default:0" json:"hourlyRate"`
	IsActive        bool           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Collaborator{})
}
