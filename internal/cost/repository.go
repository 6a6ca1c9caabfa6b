package cost

import (
	"time"

	"gorm.io/gorm"
)

// Expense é a projeção de um lançamento de custo parcelado com o contexto da
// definição, consumida pelos agregadores.
type Expense struct {
	CostID      uint      `json:"costId"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Custom      string    `json:"customCategory"`
	Amount      float64   `json:"amount"`
	DueDate     time.Time `json:"dueDate"`
	Status      string    `json:"status"`
}

// Repository encapsula o acesso a dados de custos.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CreateWithInstallments persiste a definição e, quando parcelada, os
// lançamentos expandidos na mesma transação.
func (r *Repository) CreateWithInstallments(c *Cost) error {
	parcelas, err := ExpandInstallments(*c)
	if err != nil {
		return err
	}
	c.Installments = parcelas
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(c).Error
	})
}

func (r *Repository) FindByID(workspaceID, id uint) (*Cost, error) {
	var c Cost
	err := r.DB.Where("workspace_id = ?", workspaceID).
		Preload("Installments").
		First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListActive lista as definições de custo ativas do workspace.
func (r *Repository) ListActive(workspaceID uint) ([]Cost, error) {
	var custos []Cost
	err := r.DB.Where("workspace_id = ? AND is_active = ?", workspaceID, true).
		Order("description ASC").
		Find(&custos).Error
	return custos, err
}

// ListInstallmentsDueBetween busca os lançamentos parcelados com vencimento no
// intervalo, de custos ativos.
func (r *Repository) ListInstallmentsDueBetween(workspaceID uint, inicio, fim time.Time) ([]Expense, error) {
	var despesas []Expense
	err := r.DB.
		Table("cost_installments AS ci").
		Select("c.id AS cost_id, c.description, c.category, c.custom_category AS custom, ci.amount, ci.due_date, ci.status").
		Joins("JOIN costs c ON c.id = ci.cost_id").
		Where("c.workspace_id = ? AND c.is_active = ? AND c.deleted_at IS NULL", workspaceID, true).
		Where("ci.due_date BETWEEN ? AND ?", inicio, fim).
		Order("ci.due_date ASC").
		Scan(&despesas).Error
	return despesas, err
}

func (r *Repository) Update(c *Cost) error {
	return r.DB.Save(c).Error
}

// Deactivate faz soft delete via flag is_active; lançamentos ficam fora das
// agregações pelo filtro do join.
func (r *Repository) Deactivate(workspaceID, id uint) error {
	res := r.DB.Model(&Cost{}).
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
