package quote

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ClinicaFlow/api-financeiro/internal/auth"
	"github.com/ClinicaFlow/api-financeiro/internal/cardfeerule"
	"github.com/ClinicaFlow/api-financeiro/internal/sale"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB    *gorm.DB
	Repo  *Repository
	Sales *sale.Repository
	Fees  *cardfeerule.Resolver
}

func NewHandler(db *gorm.DB, sales *sale.Repository, fees *cardfeerule.Resolver) *Handler {
	return &Handler{DB: db, Repo: NewRepository(db), Sales: sales, Fees: fees}
}

// POST /orcamentos
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var q Quote
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if q.PatientID == 0 || len(q.Items) == 0 {
		http.Error(w, "patientId e items são obrigatórios", http.StatusBadRequest)
		return
	}
	q.ID = 0
	q.WorkspaceID = auth.WorkspaceID(r)
	q.Status = StatusPending
	q.SaleID = nil
	if err := ApplyDiscount(&q); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repo.Create(&q); err != nil {
		http.Error(w, "Erro ao criar orçamento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(q)
}

// GET /orcamentos
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	orcamentos, err := h.Repo.ListByWorkspace(auth.WorkspaceID(r))
	if err != nil {
		http.Error(w, "Erro ao buscar orçamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(orcamentos)
}

// GET /orcamentos/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	q, err := h.Repo.FindByID(auth.WorkspaceID(r), uint(id))
	if err != nil {
		http.Error(w, "Orçamento não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(q)
}

// PATCH /orcamentos/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	q, err := h.Repo.FindByID(auth.WorkspaceID(r), uint(id))
	if err != nil {
		http.Error(w, "Orçamento não encontrado", http.StatusNotFound)
		return
	}
	if err := Transition(q, payload.Status, time.Now()); err != nil {
		if errors.Is(err, ErrAcceptedTerminal) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repo.Save(q); err != nil {
		http.Error(w, "Erro ao atualizar orçamento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(q)
}

// convertRequest carrega as formas de pagamento do checkout da conversão.
type convertRequest struct {
	PaymentSplits []sale.PaymentSplitRequest `json:"paymentSplits"`
	SaleDate      *time.Time                 `json:"saleDate,omitempty"`
}

// POST /orcamentos/{id}/converter
// Converte um orçamento aceito em venda, com expansão de parcelas, na mesma
// transação que grava o vínculo.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	workspaceID := auth.WorkspaceID(r)

	q, err := h.Repo.FindByID(workspaceID, uint(id))
	if err != nil {
		http.Error(w, "Orçamento não encontrado", http.StatusNotFound)
		return
	}
	if q.Status != StatusAccepted {
		http.Error(w, ErrQuoteNotAccepted.Error(), http.StatusConflict)
		return
	}
	if q.SaleID != nil {
		http.Error(w, ErrQuoteConverted.Error(), http.StatusConflict)
		return
	}

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := sale.ValidateSplits(q.FinalAmount, req.PaymentSplits); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	baseDate := time.Now()
	if req.SaleDate != nil {
		baseDate = *req.SaleDate
	}

	saleReq := sale.CreateSaleRequest{
		PatientID:     q.PatientID,
		TotalAmount:   q.FinalAmount,
		PaymentSplits: req.PaymentSplits,
	}
	for _, item := range q.Items {
		saleReq.Items = append(saleReq.Items, sale.SaleItemRequest{
			ProcedureID: item.ProcedureID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	resolutions := make([]cardfeerule.Resolution, len(req.PaymentSplits))
	for i, split := range req.PaymentSplits {
		if !sale.IsCardMethod(split.PaymentMethod) {
			continue
		}
		cardType := cardfeerule.CardTypeCredit
		if split.PaymentMethod == sale.MethodDebitCard {
			cardType = cardfeerule.CardTypeDebit
		}
		res, err := h.Fees.Resolve(workspaceID, split.CardOperator, cardType, split.Installments)
		if err != nil {
			http.Error(w, "Erro ao consultar tabela de taxas", http.StatusInternalServerError)
			return
		}
		resolutions[i] = res
	}

	venda := sale.Assemble(workspaceID, saleReq, baseDate, resolutions)
	venda.QuoteID = &q.ID

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(venda).Error; err != nil {
			return err
		}
		return h.Repo.LinkSale(tx, q.ID, venda.ID)
	})
	if err != nil {
		if errors.Is(err, ErrQuoteConverted) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "Erro ao converter orçamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(venda)
}

// DELETE /orcamentos/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeleteByID(auth.WorkspaceID(r), uint(id)); err != nil {
		if errors.Is(err, ErrQuoteConverted) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "Orçamento não encontrado", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
