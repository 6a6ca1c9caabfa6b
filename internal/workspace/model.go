package workspace

import (
	"time"

	"gorm.io/gorm"
)

// Workspace representa uma clínica (tenant). Todos os registros financeiros
// carregam o WorkspaceID como filtro de escopo.
type Workspace struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:150;not null" json:"name"`
	Document  string         `gorm:"size:20" json:"document"`
	Users     []User         `gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE" json:"users,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// User é um membro autenticável de um workspace.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	WorkspaceID uint      `gorm:"not null;index" json:"workspaceId"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Email       string    `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"size:255;not null" json:"-"` // não expõe a senha no JSON
	IsAdmin     bool      `gorm:"default:false" json:"isAdmin"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Workspace{}, &User{})
}
