package appointment

import (
	"time"

	"gorm.io/gorm"
)

// Status de uma sessão agendada.
const (
	StatusScheduled = "SCHEDULED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// Appointment é uma sessão agendada. O dashboard usa apenas as contagens por
// status; sincronização com provedores de agenda fica fora desta API.
type Appointment struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	WorkspaceID    uint           `gorm:"not null;index" json:"workspaceId"`
	PatientID      uint           `gorm:"not null;index" json:"patientId"`
	CollaboratorID uint           `gorm:"index" json:"collaboratorId"`
	ScheduledAt    time.Time      `gorm:"not null;index" json:"scheduledAt"`
	Status         string         `gorm:"size:20;not null;default:'SCHEDULED';index" json:"status"`
	Notes          string         `gorm:"size:255" json:"notes"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Appointment{})
}
