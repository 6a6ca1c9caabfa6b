package dashboard

import (
	"time"

	"github.com/ClinicaFlow/api-financeiro/internal/appointment"
	"github.com/ClinicaFlow/api-financeiro/internal/cardfeerule"
	"github.com/ClinicaFlow/api-financeiro/internal/collaborator"
	"github.com/ClinicaFlow/api-financeiro/internal/patient"
	"github.com/ClinicaFlow/api-financeiro/internal/procedure"
	"github.com/ClinicaFlow/api-financeiro/internal/quote"
	"github.com/ClinicaFlow/api-financeiro/internal/sale"
	"gorm.io/gorm"
)

// Meses cobertos pela tendência de receita, incluindo o corrente.
const trendMonths = 6

// Repository compõe os repositórios das entidades consultadas pelo dashboard.
// As leituras são consultas independentes, sem isolamento transacional;
// pequena divergência entre sub-consultas é aceita.
type Repository struct {
	Sales         *sale.Repository
	Quotes        *quote.Repository
	Patients      *patient.Repository
	Procedures    *procedure.Repository
	Collaborators *collaborator.Repository
	Fees          *cardfeerule.Repository
	Appointments  *appointment.Repository
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Sales:         sale.NewRepository(db),
		Quotes:        quote.NewRepository(db),
		Patients:      patient.NewRepository(db),
		Procedures:    procedure.NewRepository(db),
		Collaborators: collaborator.NewRepository(db),
		Fees:          cardfeerule.NewRepository(db),
		Appointments:  appointment.NewRepository(db),
	}
}

// LoadInput consulta todas as fontes do motor para o período.
func (r *Repository) LoadInput(workspaceID uint, inicio, fim, now time.Time, taxRate float64) (Input, error) {
	in := Input{Start: inicio, End: fim, Now: now, TaxRate: taxRate}

	var err error
	if in.Sales, err = r.Sales.ListBetween(workspaceID, inicio, fim); err != nil {
		return in, err
	}
	if in.Procedures, err = r.Procedures.MapByID(workspaceID); err != nil {
		return in, err
	}
	if in.Collaborators, err = r.Collaborators.MapByID(workspaceID); err != nil {
		return in, err
	}
	if in.FeeRules, err = r.Fees.ListActive(workspaceID); err != nil {
		return in, err
	}
	if in.Quotes, err = r.Quotes.ListCreatedBetween(workspaceID, inicio, fim); err != nil {
		return in, err
	}
	if in.PendingReceivables, err = r.Sales.ListPendingReceivables(workspaceID); err != nil {
		return in, err
	}
	if in.Appointments, err = r.Appointments.CountByStatusBetween(workspaceID, inicio, fim); err != nil {
		return in, err
	}
	if in.NewPatients, err = r.Patients.CountCreatedBetween(workspaceID, inicio, fim); err != nil {
		return in, err
	}
	if in.TotalPatients, err = r.Patients.CountByWorkspace(workspaceID); err != nil {
		return in, err
	}
	if in.MonthlyRevenue, err = r.monthlyRevenue(workspaceID, now); err != nil {
		return in, err
	}
	return in, nil
}

// monthlyRevenue soma a receita dos últimos meses, uma consulta por mês.
func (r *Repository) monthlyRevenue(workspaceID uint, now time.Time) ([]MonthRevenue, error) {
	trend := make([]MonthRevenue, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		mes := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		fimMes := mes.AddDate(0, 1, 0).Add(-time.Nanosecond)

		total, err := r.Sales.SumTotalsBetween(workspaceID, mes, fimMes)
		if err != nil {
			return nil, err
		}
		trend = append(trend, MonthRevenue{Month: mes.Format("2006-01"), Total: total})
	}
	return trend, nil
}
