package cardfeerule

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ClinicaFlow/api-financeiro/internal/auth"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// POST /taxas-cartao
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var regra CardFeeRule
	if err := json.NewDecoder(r.Body).Decode(&regra); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if regra.CardOperator == "" {
		http.Error(w, "cardOperator é obrigatório", http.StatusBadRequest)
		return
	}
	if regra.CardType != CardTypeCredit && regra.CardType != CardTypeDebit {
		http.Error(w, "cardType deve ser 'CREDIT' ou 'DEBIT'", http.StatusBadRequest)
		return
	}
	if regra.InstallmentCount < 1 {
		regra.InstallmentCount = 1
	}
	if regra.ReceivingDays <= 0 {
		regra.ReceivingDays = DefaultReceivingDays
	}
	regra.ID = 0
	regra.WorkspaceID = auth.WorkspaceID(r)
	regra.IsActive = true
	if err := h.Repo.Create(&regra); err != nil {
		http.Error(w, "Erro ao criar regra de taxa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(regra)
}

// GET /taxas-cartao
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	regras, err := h.Repo.ListByWorkspace(auth.WorkspaceID(r))
	if err != nil {
		http.Error(w, "Erro ao buscar regras de taxa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(regras)
}

// PUT /taxas-cartao/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	atual, err := h.Repo.FindByID(auth.WorkspaceID(r), uint(id))
	if err != nil {
		http.Error(w, "Regra de taxa não encontrada", http.StatusNotFound)
		return
	}

	var in CardFeeRule
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	atual.CardOperator = in.CardOperator
	atual.CardType = in.CardType
	atual.InstallmentCount = in.InstallmentCount
	atual.FeePercentage = in.FeePercentage
	atual.ReceivingDays = in.ReceivingDays
	atual.IsActive = in.IsActive
	if err := h.Repo.Update(atual); err != nil {
		http.Error(w, "Erro ao atualizar regra de taxa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atual)
}

// DELETE /taxas-cartao/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeleteByID(auth.WorkspaceID(r), uint(id)); err != nil {
		http.Error(w, "Regra de taxa não encontrada", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
