package procedure

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

// POST /procedimentos
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p Procedure
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if p.Name == "" {
		http.Error(w, "Nome do procedimento é obrigatório", http.StatusBadRequest)
		return
	}
	p.ID = 0
	p.WorkspaceID = auth.WorkspaceID(r)
	p.IsActive = true
	if err := h.Repo.Create(&p); err != nil {
		http.Error(w, "Erro ao criar procedimento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// GET /procedimentos
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	procedimentos, err := h.Repo.ListActive(auth.WorkspaceID(r))
	if err != nil {
		http.Error(w, "Erro ao buscar procedimentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(procedimentos)
}

// PUT /procedimentos/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	atual, err := h.Repo.FindByID(auth.WorkspaceID(r), uint(id))
	if err != nil {
		http.Error(w, "Procedimento não encontrado", http.StatusNotFound)
		return
	}

	var in Procedure
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	atual.Name = in.Name
	atual.Price = in.Price
	atual.SupplyCost = in.SupplyCost
	atual.SupplyQuantity = in.SupplyQuantity
	if err := h.Repo.Update(atual); err != nil {
		http.Error(w, "Erro ao atualizar procedimento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atual)
}

// DELETE /procedimentos/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deactivate(auth.WorkspaceID(r), uint(id)); err != nil {
		http.Error(w, "Procedimento não encontrado", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
