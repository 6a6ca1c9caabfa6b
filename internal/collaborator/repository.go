package collaborator

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de colaboradores.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *Collaborator) error {
	return r.DB.Create(c).Error
}

func (r *Repository) FindByID(workspaceID, id uint) (*Collaborator, error) {
	var c Collaborator
	if err := r.DB.Where("workspace_id = ?", workspaceID).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListActive(workspaceID uint) ([]Collaborator, error) {
	var colaboradores []Collaborator
	err := r.DB.Where("workspace_id = ? AND is_active = ?", workspaceID, true).
		Order("name ASC").Find(&colaboradores).Error
	return colaboradores, err
}

func (r *Repository) Update(c *Collaborator) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Deactivate(workspaceID, id uint) error {
	res := r.DB.Model(&Collaborator{}).
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

// MapByID devolve os colaboradores ativos indexados por ID.
func (r *Repository) MapByID(workspaceID uint) (map[uint]Collaborator, error) {
	colaboradores, err := r.ListActive(workspaceID)
	if err != nil {
		return nil, err
	}
	m := make(map[uint]Collaborator, len(colaboradores))
	for _, c := range colaboradores {
		m[c.ID] = c
	}
	return m, nil
}
