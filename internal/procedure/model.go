package procedure

import (
	"time"

	"gorm.io/gorm"
)

// Procedure é um procedimento clínico vendável. SupplyCost e SupplyQuantity
// alimentam o cálculo de custo de insumos do motor de receita.
type Procedure struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	WorkspaceID    uint           `gorm:"not null;index" json:"workspaceId"`
	Name           string         `gorm:"size:150;not null" json:"name"`
	Price          float64        `gorm:"not null;default:0" json:"price"`
	SupplyCost     float64        `gorm:"not null;default:0" json:"supplyCost"`     // custo unitário do insumo
	SupplyQuantity float64        `gorm:"not null;default:0" json:"supplyQuantity"` // insumos consumidos por sessão
	IsActive       bool           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Procedure{})
}
