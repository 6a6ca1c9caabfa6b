package dashboard

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/ClinicaFlow/api-financeiro/internal/auth"
	"gorm.io/gorm"
)

// Alíquota usada quando DEFAULT_TAX_RATE não está configurada. Estimativa
// genérica; configuração por workspace ainda não existe.
const fallbackTaxRate = 6.0

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

func taxRate() float64 {
	if s := os.Getenv("DEFAULT_TAX_RATE"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v >= 0 {
			return v
		}
	}
	return fallbackTaxRate
}

// GET /dashboard?period=today|week|month|last7days|last15days|last30days|custom[&startDate&endDate]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	q := r.URL.Query()

	inicio, fim, err := ResolvePeriod(q.Get("period"), q.Get("startDate"), q.Get("endDate"), now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	in, err := h.Repo.LoadInput(auth.WorkspaceID(r), inicio, fim, now, taxRate())
	if err != nil {
		http.Error(w, "Erro ao consultar indicadores", http.StatusInternalServerError)
		return
	}

	stats := ComputeStats(in)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}
