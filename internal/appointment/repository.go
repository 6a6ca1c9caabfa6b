package appointment

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de sessões.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(a *Appointment) error {
	return r.DB.Create(a).Error
}

func (r *Repository) ListBetween(workspaceID uint, inicio, fim time.Time) ([]Appointment, error) {
	var sessoes []Appointment
	err := r.DB.Where("workspace_id = ? AND scheduled_at BETWEEN ? AND ?", workspaceID, inicio, fim).
		Order("scheduled_at ASC").Find(&sessoes).Error
	return sessoes, err
}

// CountByStatusBetween conta sessões do intervalo agrupadas por status.
func (r *Repository) CountByStatusBetween(workspaceID uint, inicio, fim time.Time) (map[string]int64, error) {
	type linha struct {
		Status string
		Total  int64
	}
	var linhas []linha
	err := r.DB.Model(&Appointment{}).
		Select("status, COUNT(*) AS total").
		Where("workspace_id = ? AND scheduled_at BETWEEN ? AND ?", workspaceID, inicio, fim).
		Group("status").
		Scan(&linhas).Error
	if err != nil {
		return nil, err
	}
	m := make(map[string]int64, len(linhas))
	for _, l := range linhas {
		m[l.Status] = l.Total
	}
	return m, nil
}

// UpdateStatus troca o status de uma sessão.
func (r *Repository) UpdateStatus(workspaceID, id uint, status string) error {
	res := r.DB.Model(&Appointment{}).
		Where("workspace_id = ? AND id = ?", workspaceID, id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
