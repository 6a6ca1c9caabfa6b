package patient

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de pacientes.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(p *Patient) error {
	return r.DB.Create(p).Error
}

func (r *Repository) FindByID(workspaceID, id uint) (*Patient, error) {
	var p Patient
	if err := r.DB.Where("workspace_id = ?", workspaceID).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListByWorkspace(workspaceID uint) ([]Patient, error) {
	var pacientes []Patient
	err := r.DB.Where("workspace_id = ?", workspaceID).Order("name ASC").Find(&pacientes).Error
	return pacientes, err
}

// CountCreatedBetween conta pacientes cadastrados no intervalo (novos pacientes).
func (r *Repository) CountCreatedBetween(workspaceID uint, inicio, fim time.Time) (int64, error) {
	var total int64
	err := r.DB.Model(&Patient{}).
		Where("workspace_id = ? AND created_at BETWEEN ? AND ?", workspaceID, inicio, fim).
		Count(&total).Error
	return total, err
}

// CountByWorkspace conta todos os pacientes ativos do workspace.
func (r *Repository) CountByWorkspace(workspaceID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&Patient{}).Where("workspace_id = ?", workspaceID).Count(&total).Error
	return total, err
}
