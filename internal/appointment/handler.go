package appointment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ClinicaFlow/api-financeiro/internal/auth"
	"github.com/ClinicaFlow/api-financeiro/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// POST /sessoes
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var a Appointment
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if a.PatientID == 0 || a.ScheduledAt.IsZero() {
		http.Error(w, "patientId e scheduledAt são obrigatórios", http.StatusBadRequest)
		return
	}
	a.ID = 0
	a.WorkspaceID = auth.WorkspaceID(r)
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if err := h.Repo.Create(&a); err != nil {
		http.Error(w, "Erro ao criar sessão", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// GET /sessoes?startDate&endDate
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	inicio, err := utils.ParseData(r.URL.Query().Get("startDate"))
	if err != nil {
		http.Error(w, "startDate inválido (use AAAA-MM-DD)", http.StatusBadRequest)
		return
	}
	fim, err := utils.ParseData(r.URL.Query().Get("endDate"))
	if err != nil {
		http.Error(w, "endDate inválido (use AAAA-MM-DD)", http.StatusBadRequest)
		return
	}
	sessoes, err := h.Repo.ListBetween(auth.WorkspaceID(r), utils.InicioDoDia(inicio), utils.FimDoDia(fim))
	if err != nil {
		http.Error(w, "Erro ao buscar sessões", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(sessoes)
}

// PATCH /sessoes/{id}/status
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
	allowed := map[string]bool{StatusScheduled: true, StatusCompleted: true, StatusCancelled: true}
	if !allowed[payload.Status] {
		http.Error(w, "Status inválido. Use 'SCHEDULED', 'COMPLETED' ou 'CANCELLED'.", http.StatusBadRequest)
		return
	}
	if err := h.Repo.UpdateStatus(auth.WorkspaceID(r), uint(id), payload.Status); err != nil {
		http.Error(w, "Sessão não encontrada", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
