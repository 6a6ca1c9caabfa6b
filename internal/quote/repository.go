package quote

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de orçamentos.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

func (r *Repository) Create(q *Quote) error {
	return r.DB.Create(q).Error
}

func (r *Repository) FindByID(workspaceID, id uint) (*Quote, error) {
	var q Quote
	err := r.DB.Where("workspace_id = ?", workspaceID).
		Preload("Items").
		First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *Repository) ListByWorkspace(workspaceID uint) ([]Quote, error) {
	var orcamentos []Quote
	err := r.DB.Where("workspace_id = ?", workspaceID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orcamentos).Error
	return orcamentos, err
}

// ListCreatedBetween lista os orçamentos criados no período, para a taxa de
// conversão do dashboard.
func (r *Repository) ListCreatedBetween(workspaceID uint, inicio, fim time.Time) ([]Quote, error) {
	var orcamentos []Quote
	err := r.DB.Where("workspace_id = ? AND created_at BETWEEN ? AND ?", workspaceID, inicio, fim).
		Find(&orcamentos).Error
	return orcamentos, err
}

func (r *Repository) Save(q *Quote) error {
	return r.DB.Save(q).Error
}

// LinkSale grava o vínculo orçamento→venda. Condicional em sale_id IS NULL:
// duas conversões concorrentes não geram duas vendas vinculadas.
func (r *Repository) LinkSale(db *gorm.DB, quoteID, saleID uint) error {
	if db == nil {
		db = r.DB
	}
	res := db.Model(&Quote{}).
		Where("id = ? AND sale_id IS NULL", quoteID).
		Update("sale_id", saleID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrQuoteConverted
	}
	return nil
}

// DeleteByID apaga o orçamento, exceto quando aceito e convertido.
func (r *Repository) DeleteByID(workspaceID, id uint) error {
	q, err := r.FindByID(workspaceID, id)
	if err != nil {
		return err
	}
	if q.Status == StatusAccepted && q.SaleID != nil {
		return ErrQuoteConverted
	}
	return r.DB.Delete(&Quote{}, id).Error
}
