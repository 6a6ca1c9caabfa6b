package patient

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

// POST /pacientes
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p Patient
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if p.Name == "" {
		http.Error(w, "Nome do paciente é obrigatório", http.StatusBadRequest)
		return
	}
	p.ID = 0
	p.WorkspaceID = auth.WorkspaceID(r)
	if err := h.Repo.Create(&p); err != nil {
		http.Error(w, "Erro ao criar paciente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// GET /pacientes
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	pacientes, err := h.Repo.ListByWorkspace(auth.WorkspaceID(r))
	if err != nil {
		http.Error(w, "Erro ao buscar pacientes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pacientes)
}

// GET /pacientes/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(auth.WorkspaceID(r), uint(id))
	if err != nil {
		http.Error(w, "Paciente não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}
