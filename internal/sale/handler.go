package sale

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ClinicaFlow/api-financeiro/internal/auth"
	"github.com/ClinicaFlow/api-financeiro/internal/cardfeerule"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
	Fees *cardfeerule.Resolver
}

func NewHandler(db *gorm.DB, fees *cardfeerule.Resolver) *Handler {
	return &Handler{Repo: NewRepository(db), Fees: fees}
}

// cardTypeFor mapeia a forma de pagamento para o tipo de cartão da tabela de
// taxas.
func cardTypeFor(method string) string {
	if method == MethodDebitCard {
		return cardfeerule.CardTypeDebit
	}
	return cardfeerule.CardTypeCredit
}

// Assemble monta a venda completa a partir do request já validado, expandindo
// cada split em parcelas. A resolução de taxa vem por split, consultada pelo
// chamador.
func Assemble(workspaceID uint, req CreateSaleRequest, baseDate time.Time, resolutions []cardfeerule.Resolution) *Sale {
	venda := &Sale{
		WorkspaceID:   workspaceID,
		PatientID:     req.PatientID,
		TotalAmount:   req.TotalAmount,
		SaleDate:      baseDate,
		PaymentStatus: PaymentPending,
	}
	for _, item := range req.Items {
		venda.Items = append(venda.Items, SaleItem{
			ProcedureID:    item.ProcedureID,
			CollaboratorID: item.CollaboratorID,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
		})
	}
	for i, split := range req.PaymentSplits {
		venda.Splits = append(venda.Splits, PaymentSplit{
			Method:       split.PaymentMethod,
			CardOperator: split.CardOperator,
			Amount:       split.Amount,
			Installments: split.Installments,
			Schedule:     BuildSchedule(split, baseDate, resolutions[i]),
		})
	}
	return venda
}

// POST /vendas
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.PatientID == 0 {
		http.Error(w, "patientId é obrigatório", http.StatusBadRequest)
		return
	}

	if err := ValidateSplits(req.TotalAmount, req.PaymentSplits); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	workspaceID := auth.WorkspaceID(r)
	baseDate := time.Now()
	if req.SaleDate != nil {
		baseDate = *req.SaleDate
	}

	resolutions := make([]cardfeerule.Resolution, len(req.PaymentSplits))
	for i, split := range req.PaymentSplits {
		if !IsCardMethod(split.PaymentMethod) {
			continue
		}
		res, err := h.Fees.Resolve(workspaceID, split.CardOperator, cardTypeFor(split.PaymentMethod), split.Installments)
		if err != nil {
			http.Error(w, "Erro ao consultar tabela de taxas", http.StatusInternalServerError)
			return
		}
		resolutions[i] = res
	}

	venda := Assemble(workspaceID, req, baseDate, resolutions)
	if err := h.Repo.CreateSale(venda); err != nil {
		http.Error(w, "Erro ao criar venda", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(venda)
}

// GET /vendas
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	vendas, err := h.Repo.ListByWorkspace(auth.WorkspaceID(r))
	if err != nil {
		http.Error(w, "Erro ao buscar vendas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(vendas)
}

// GET /vendas/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	venda, err := h.Repo.FindByID(auth.WorkspaceID(r), uint(id))
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(venda)
}

// PATCH /parcelas/{id}/pagar
func (h *Handler) PayInstallment(w http.ResponseWriter, r *http.Request) {
	h.transitionInstallment(w, r, func(workspaceID, id uint) error {
		return h.Repo.MarkInstallmentPaid(workspaceID, id, time.Now())
	})
}

// PATCH /parcelas/{id}/vencer
func (h *Handler) OverdueInstallment(w http.ResponseWriter, r *http.Request) {
	h.transitionInstallment(w, r, h.Repo.MarkInstallmentOverdue)
}

func (h *Handler) transitionInstallment(w http.ResponseWriter, r *http.Request, fn func(workspaceID, id uint) error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}
	workspaceID := auth.WorkspaceID(r)

	if err := fn(workspaceID, uint(id)); err != nil {
		if errors.Is(err, ErrAlreadySettled) {
			http.Error(w, "Parcela já liquidada ou fora do workspace", http.StatusConflict)
			return
		}
		http.Error(w, "Erro ao atualizar parcela", http.StatusInternalServerError)
		return
	}

	if saleID, err := h.Repo.FindSaleIDByInstallment(uint(id)); err == nil && saleID != 0 {
		_ = h.Repo.RefreshPaymentStatus(workspaceID, saleID)
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"message":"Parcela atualizada com sucesso"}`))
}

// DELETE /vendas/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeleteByID(auth.WorkspaceID(r), uint(id)); err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
