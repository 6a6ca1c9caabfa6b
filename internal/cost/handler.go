package cost

import (
	"encoding/json"
	"errors"
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

func validCost(c *Cost) string {
	if c.Description == "" {
		return "description é obrigatório"
	}
	if c.Type != TypeFixed && c.Type != TypePercentage {
		return "type deve ser 'FIXED' ou 'PERCENTAGE'"
	}
	switch c.Recurrence {
	case RecurrenceNone, RecurrenceIndefinite, RecurrenceInstallments:
	default:
		return "recurrence deve ser 'NONE', 'RECURRING' ou 'INSTALLMENTS'"
	}
	if c.Recurrence != RecurrenceNone && c.Frequency == "" {
		return "frequency é obrigatório para custos recorrentes"
	}
	if c.Type == TypePercentage && c.Recurrence == RecurrenceInstallments {
		return "custo percentual não pode ser parcelado"
	}
	return ""
}

// POST /custos
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var c Cost
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if msg := validCost(&c); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	c.ID = 0
	c.WorkspaceID = auth.WorkspaceID(r)
	c.IsActive = true

	if err := h.Repo.CreateWithInstallments(&c); err != nil {
		if errors.Is(err, ErrMissingFirstDueDate) || errors.Is(err, ErrInvalidInstallments) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Erro ao criar custo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /custos
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	custos, err := h.Repo.ListActive(auth.WorkspaceID(r))
	if err != nil {
		http.Error(w, "Erro ao buscar custos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(custos)
}

// GET /custos/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.FindByID(auth.WorkspaceID(r), uint(id))
	if err != nil {
		http.Error(w, "Custo não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// PUT /custos/{id} — atualiza a definição; lançamentos já materializados não
// são regerados.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	atual, err := h.Repo.FindByID(auth.WorkspaceID(r), uint(id))
	if err != nil {
		http.Error(w, "Custo não encontrado", http.StatusNotFound)
		return
	}

	var in Cost
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	atual.Description = in.Description
	atual.Value = in.Value
	atual.Category = in.Category
	atual.CustomCategory = in.CustomCategory
	atual.PaymentDate = in.PaymentDate
	if msg := validCost(atual); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if err := h.Repo.Update(atual); err != nil {
		http.Error(w, "Erro ao atualizar custo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atual)
}

// DELETE /custos/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deactivate(auth.WorkspaceID(r), uint(id)); err != nil {
		http.Error(w, "Custo não encontrado", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
