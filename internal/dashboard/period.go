package dashboard

import (
	"errors"
	"fmt"
	"time"

	"github.com/ClinicaFlow/api-financeiro/internal/utils"
)

// Presets de período aceitos em GET /dashboard.
const (
	PeriodToday      = "today"
	PeriodWeek       = "week"
	PeriodMonth      = "month"
	PeriodLast7Days  = "last7days"
	PeriodLast15Days = "last15days"
	PeriodLast30Days = "last30days"
	PeriodCustom     = "custom"
)

// ErrMissingCustomRange indica period=custom sem startDate/endDate.
var ErrMissingCustomRange = errors.New("period=custom exige startDate e endDate")

// ResolvePeriod converte o preset em um intervalo fechado de dias. A semana
// começa na segunda-feira; "last N days" é a janela de N dias terminando hoje.
func ResolvePeriod(period, startStr, endStr string, now time.Time) (time.Time, time.Time, error) {
	hoje := utils.InicioDoDia(now)
	fimHoje := utils.FimDoDia(now)

	switch period {
	case PeriodToday, "":
		return hoje, fimHoje, nil
	case PeriodWeek:
		diasDesdeSegunda := (int(now.Weekday()) + 6) % 7
		return hoje.AddDate(0, 0, -diasDesdeSegunda), fimHoje, nil
	case PeriodMonth:
		inicio := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return inicio, fimHoje, nil
	case PeriodLast7Days:
		return hoje.AddDate(0, 0, -6), fimHoje, nil
	case PeriodLast15Days:
		return hoje.AddDate(0, 0, -14), fimHoje, nil
	case PeriodLast30Days:
		return hoje.AddDate(0, 0, -29), fimHoje, nil
	case PeriodCustom:
		if startStr == "" || endStr == "" {
			return time.Time{}, time.Time{}, ErrMissingCustomRange
		}
		inicio, err := utils.ParseData(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("startDate inválido: %w", err)
		}
		fim, err := utils.ParseData(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("endDate inválido: %w", err)
		}
		if fim.Before(inicio) {
			return time.Time{}, time.Time{}, errors.New("endDate anterior a startDate")
		}
		return utils.InicioDoDia(inicio), utils.FimDoDia(fim), nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("período desconhecido: %q", period)
}
