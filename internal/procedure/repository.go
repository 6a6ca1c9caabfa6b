package procedure

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de procedimentos.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(p *Procedure) error {
	return r.DB.Create(p).Error
}

func (r *Repository) FindByID(workspaceID, id uint) (*Procedure, error) {
	var p Procedure
	if err := r.DB.Where("workspace_id = ?", workspaceID).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListActive(workspaceID uint) ([]Procedure, error) {
	var procedimentos []Procedure
	err := r.DB.Where("workspace_id = ? AND is_active = ?", workspaceID, true).
		Order("name ASC").Find(&procedimentos).Error
	return procedimentos, err
}

func (r *Repository) Update(p *Procedure) error {
	return r.DB.Save(p).Error
}

// Deactivate faz soft delete via flag is_active.
func (r *Repository) Deactivate(workspaceID, id uint) error {
	res := r.DB.Model(&Procedure{}).
		Where("workspace_id = ? AND id = ?", workspaceID, id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MapByID devolve os procedimentos ativos indexados por ID, para consumo do
// motor de receita.
func (r *Repository) MapByID(workspaceID uint) (map[uint]Procedure, error) {
	procedimentos, err := r.ListActive(workspaceID)
	if err != nil {
		return nil, err
	}
	m := make(map[uint]Procedure, len(procedimentos))
	for _, p := range procedimentos {
		m[p.ID] = p
	}
	return m, nil
}
