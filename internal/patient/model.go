package patient

import (
	"time"

	"gorm.io/gorm"
)

// Patient é o cadastro mínimo necessário para vincular vendas e orçamentos.
type Patient struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	WorkspaceID uint           `gorm:"not null;index" json:"workspaceId"`
	Name        string         `gorm:"size:150;not null" json:"name"`
	Phone       string         `gorm:"size:20" json:"phone"`
	Email       string         `gorm:"size:150" json:"email"`
	BirthDate   *time.Time     `json:"birthDate,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Patient{})
}
