package cashflow

import (
	"encoding/json"
	"net/http"

	"github.com/ClinicaFlow/api-financeiro/internal/auth"
	"github.com/ClinicaFlow/api-financeiro/internal/cost"
	"github.com/ClinicaFlow/api-financeiro/internal/sale"
	"github.com/ClinicaFlow/api-financeiro/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	Sales *sale.Repository
	Costs *cost.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Sales: sale.NewRepository(db), Costs: cost.NewRepository(db)}
}

// GET /fluxo-caixa?startDate&endDate
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
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
	if fim.Before(inicio) {
		http.Error(w, "endDate anterior a startDate", http.StatusBadRequest)
		return
	}

	workspaceID := auth.WorkspaceID(r)
	inicioDia := utils.InicioDoDia(inicio)
	fimDia := utils.FimDoDia(fim)

	recebiveis, err := h.Sales.ListReceivablesBetween(workspaceID, inicioDia, fimDia)
	if err != nil {
		http.Error(w, "Erro ao buscar recebíveis", http.StatusInternalServerError)
		return
	}
	custos, err := h.Costs.ListActive(workspaceID)
	if err != nil {
		http.Error(w, "Erro ao buscar custos", http.StatusInternalServerError)
		return
	}
	lancamentos, err := h.Costs.ListInstallmentsDueBetween(workspaceID, inicioDia, fimDia)
	if err != nil {
		http.Error(w, "Erro ao buscar lançamentos de custo", http.StatusInternalServerError)
		return
	}
	vendas, err := h.Sales.ListBetween(workspaceID, inicioDia, fimDia)
	if err != nil {
		http.Error(w, "Erro ao buscar vendas", http.StatusInternalServerError)
		return
	}

	report := Aggregate(Input{
		Start:       inicioDia,
		End:         fimDia,
		Receivables: recebiveis,
		Costs:       custos,
		CostEntries: lancamentos,
		Sales:       vendas,
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(report)
}
