package collaborator

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

// POST /colaboradores
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var c Collaborator
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if c.Name == "" {
		http.Error(w, "Nome do colaborador é obrigatório", http.StatusBadRequest)
		return
	}
	if c.CommissionType != CommissionPercentage && c.CommissionType != CommissionFixed {
		http.Error(w, "commissionType deve ser 'PERCENTAGE' ou 'FIXED'", http.StatusBadRequest)
		return
	}
	c.ID = 0
	c.WorkspaceID = auth.WorkspaceID(r)
	c.IsActive = true
	if err := h.Repo.Create(&c); err != nil {
		http.Error(w, "Erro ao criar colaborador", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /colaboradores
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	colaboradores, err := h.Repo.ListActive(auth.WorkspaceID(r))
	if err != nil {
		http.Error(w, "Erro ao buscar colaboradores", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(colaboradores)
}

// PUT /colaboradores/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	atual, err := h.Repo.FindByID(auth.WorkspaceID(r), uint(id))
	if err != nil {
		http.Error(w, "Colaborador não encontrado", http.StatusNotFound)
		return
	}

	var in Collaborator
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	atual.Name = in.Name
	atual.Role = in.Role
	atual.CommissionType = in.CommissionType
	atual.CommissionValue = in.CommissionValue
	atual.HourlyRate = in.HourlyRate
	if err := h.Repo.Update(atual); err != nil {
		http.Error(w, "Erro ao atualizar colaborador", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atual)
}

// DELETE /colaboradores/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deactivate(auth.WorkspaceID(r), uint(id)); err != nil {
		http.Error(w, "Colaborador não encontrado", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
