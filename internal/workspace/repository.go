package workspace

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de workspaces e usuários.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CreateWithAdmin cria o workspace e seu primeiro usuário admin na mesma
// transação: ou ambos existem, ou nenhum.
func (r *Repository) CreateWithAdmin(ws *Workspace, admin *User) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ws).Error; err != nil {
			return err
		}
		admin.WorkspaceID = ws.ID
		admin.IsAdmin = true
		return tx.Create(admin).Error
	})
}

// FindUserByEmail busca um usuário pelo e-mail de login.
func (r *Repository) FindUserByEmail(email string) (*User, error) {
	var u User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID busca um workspace pelo ID.
func (r *Repository) FindByID(id uint) (*Workspace, error) {
	var ws Workspace
	if err := r.DB.First(&ws, id).Error; err != nil {
		return nil, err
	}
	return &ws, nil
}
