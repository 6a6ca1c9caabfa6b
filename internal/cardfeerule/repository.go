package cardfeerule

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados da tabela de taxas.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(regra *CardFeeRule) error {
	return r.DB.Create(regra).Error
}

func (r *Repository) FindByID(workspaceID, id uint) (*CardFeeRule, error) {
	var regra CardFeeRule
	if err := r.DB.Where("workspace_id = ?", workspaceID).First(&regra, id).Error; err != nil {
		return nil, err
	}
	return &regra, nil
}

func (r *Repository) ListByWorkspace(workspaceID uint) ([]CardFeeRule, error) {
	var regras []CardFeeRule
	err := r.DB.Where("workspace_id = ?", workspaceID).
		Order("card_operator ASC, card_type ASC, installment_count ASC").
		Find(&regras).Error
	return regras, err
}

// ListActive devolve as regras ativas, para resolução em memória pelos
// agregadores.
func (r *Repository) ListActive(workspaceID uint) ([]CardFeeRule, error) {
	var regras []CardFeeRule
	err := r.DB.Where("workspace_id = ? AND is_active = ?", workspaceID, true).
		Find(&regras).Error
	return regras, err
}

// FindRule busca a regra ativa exata de (operadora, tipo, parcelas).
// Devolve nil sem erro quando não existe regra configurada.
func (r *Repository) FindRule(workspaceID uint, operator, cardType string, installments int) (*CardFeeRule, error) {
	var regra CardFeeRule
	err := r.DB.Where(
		"workspace_id = ? AND card_operator = ? AND card_type = ? AND installment_count = ? AND is_active = ?",
		workspaceID, operator, cardType, installments, true,
	).First(&regra).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &regra, nil
}

func (r *Repository) Update(regra *CardFeeRule) error {
	return r.DB.Save(regra).Error
}

func (r *Repository) DeleteByID(workspaceID, id uint) error {
	res := r.DB.Where("workspace_id = ?", workspaceID).Delete(&CardFeeRule{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
