package sale

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrAlreadySettled indica tentativa de transicionar uma parcela que já saiu
// de PENDING (proteção contra processamento duplo em requisições concorrentes).
var ErrAlreadySettled = errors.New("parcela já liquidada ou vencida")

// Receivable é a projeção de uma parcela com a forma de pagamento da origem,
// consumida pelos agregadores.
type Receivable struct {
	InstallmentID uint      `json:"installmentId"`
	SaleID        uint      `json:"saleId"`
	Number        int       `json:"number"`
	NetAmount     float64   `json:"netAmount"`
	DueDate       time.Time `json:"dueDate"`
	Status        string    `json:"status"`
	Method        string    `json:"paymentMethod"`
}

// Repository encapsula o acesso a dados de vendas, splits e parcelas.
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

// CreateSale persiste a venda com itens, splits e parcelas na mesma transação:
// ou tudo existe, ou nada.
func (r *Repository) CreateSale(venda *Sale) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(venda).Error
	})
}

// FindByID busca a venda com itens, splits e parcelas.
func (r *Repository) FindByID(workspaceID, id uint) (*Sale, error) {
	var venda Sale
	err := r.DB.Where("workspace_id = ?", workspaceID).
		Preload("Items").
		Preload("Splits.Schedule").
		First(&venda, id).Error
	if err != nil {
		return nil, err
	}
	return &venda, nil
}

// ListByWorkspace lista as vendas do workspace, mais recentes primeiro.
func (r *Repository) ListByWorkspace(workspaceID uint) ([]Sale, error) {
	var vendas []Sale
	err := r.DB.Where("workspace_id = ?", workspaceID).
		Preload("Splits").
		Order("sale_date DESC").
		Find(&vendas).Error
	return vendas, err
}

// ListBetween lista as vendas do período com itens e splits carregados.
func (r *Repository) ListBetween(workspaceID uint, inicio, fim time.Time) ([]Sale, error) {
	var vendas []Sale
	err := r.DB.Where("workspace_id = ? AND sale_date BETWEEN ? AND ?", workspaceID, inicio, fim).
		Preload("Items").
		Preload("Splits").
		Order("sale_date ASC").
		Find(&vendas).Error
	return vendas, err
}

// SumTotalsBetween soma os totais das vendas do período.
func (r *Repository) SumTotalsBetween(workspaceID uint, inicio, fim time.Time) (float64, error) {
	var total float64
	err := r.DB.Model(&Sale{}).
		Where("workspace_id = ? AND sale_date BETWEEN ? AND ?", workspaceID, inicio, fim).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}

// ListReceivablesBetween busca as parcelas com vencimento no intervalo,
// já com a forma de pagamento de origem.
func (r *Repository) ListReceivablesBetween(workspaceID uint, inicio, fim time.Time) ([]Receivable, error) {
	var recebiveis []Receivable
	err := r.DB.
		Table("payment_installments AS pi").
		Select("pi.id AS installment_id, s.id AS sale_id, pi.number, pi.net_amount, pi.due_date, pi.status, ps.method").
		Joins("JOIN payment_splits ps ON ps.id = pi.payment_split_id").
		Joins("JOIN sales s ON s.id = ps.sale_id").
		Where("s.workspace_id = ? AND s.deleted_at IS NULL", workspaceID).
		Where("pi.due_date BETWEEN ? AND ?", inicio, fim).
		Order("pi.due_date ASC").
		Scan(&recebiveis).Error
	return recebiveis, err
}

// ListPendingReceivables busca toda parcela PENDING datada do workspace,
// independente de período (visão de aging é sempre para frente).
func (r *Repository) ListPendingReceivables(workspaceID uint) ([]Receivable, error) {
	var recebiveis []Receivable
	err := r.DB.
		Table("payment_installments AS pi").
		Select("pi.id AS installment_id, s.id AS sale_id, pi.number, pi.net_amount, pi.due_date, pi.status, ps.method").
		Joins("JOIN payment_splits ps ON ps.id = pi.payment_split_id").
		Joins("JOIN sales s ON s.id = ps.sale_id").
		Where("s.workspace_id = ? AND s.deleted_at IS NULL", workspaceID).
		Where("pi.status = ? AND pi.due_date IS NOT NULL", StatusPending).
		Order("pi.due_date ASC").
		Scan(&recebiveis).Error
	return recebiveis, err
}

// installmentScope limita a atualização às parcelas do workspace.
const installmentScope = `payment_split_id IN (
	SELECT ps.id FROM payment_splits ps
	JOIN sales s ON s.id = ps.sale_id
	WHERE s.workspace_id = ? AND s.deleted_at IS NULL
)`

// MarkInstallmentPaid liquida a parcela com atualização condicional: só
// transiciona se o status ainda for PENDING. Duas confirmações concorrentes
// não liquidam duas vezes.
func (r *Repository) MarkInstallmentPaid(workspaceID, installmentID uint, dataPagamento time.Time) error {
	res := r.DB.Model(&PaymentInstallment{}).
		Where("id = ? AND status = ?", installmentID, StatusPending).
		Where(installmentScope, workspaceID).
		Updates(map[string]interface{}{"status": StatusPaid, "payment_date": &dataPagamento})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadySettled
	}
	return nil
}

// MarkInstallmentOverdue marca a parcela como vencida, também condicionada ao
// status PENDING.
func (r *Repository) MarkInstallmentOverdue(workspaceID, installmentID uint) error {
	res := r.DB.Model(&PaymentInstallment{}).
		Where("id = ? AND status = ?", installmentID, StatusPending).
		Where(installmentScope, workspaceID).
		Update("status", StatusOverdue)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadySettled
	}
	return nil
}

// RefreshPaymentStatus recalcula o status de pagamento da venda a partir das
// parcelas: todas pagas => PAID, alguma paga => PARTIAL, nenhuma => PENDING.
func (r *Repository) RefreshPaymentStatus(workspaceID, saleID uint) error {
	var totais struct {
		Total int64
		Pagas int64
	}
	err := r.DB.
		Table("payment_installments AS pi").
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE pi.status = 'PAID') AS pagas").
		Joins("JOIN payment_splits ps ON ps.id = pi.payment_split_id").
		Where("ps.sale_id = ?", saleID).
		Scan(&totais).Error
	if err != nil {
		return err
	}

	status := PaymentPending
	switch {
	case totais.Total > 0 && totais.Pagas == totais.Total:
		status = PaymentPaid
	case totais.Pagas > 0:
		status = PaymentPartial
	}
	return r.DB.Model(&Sale{}).
		Where("workspace_id = ? AND id = ?", workspaceID, saleID).
		Update("payment_status", status).Error
}

// FindSaleIDByInstallment localiza a venda dona de uma parcela.
func (r *Repository) FindSaleIDByInstallment(installmentID uint) (uint, error) {
	var saleID uint
	err := r.DB.
		Table("payment_installments AS pi").
		Select("ps.sale_id").
		Joins("JOIN payment_splits ps ON ps.id = pi.payment_split_id").
		Where("pi.id = ?", installmentID).
		Scan(&saleID).Error
	return saleID, err
}

// DeleteByID apaga a venda (soft delete); parcelas ficam fora das consultas
// via o filtro de deleted_at nos joins.
func (r *Repository) DeleteByID(workspaceID, id uint) error {
	res := r.DB.Where("workspace_id = ?", workspaceID).Delete(&Sale{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
