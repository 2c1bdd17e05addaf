package reporting

import (
	"fmt"
	"time"

	"github.com/vfigueroa/casino-manager-api/internal/domain"
)

// Aggregate construye el borrador del reporte diario a partir de las sesiones,
// premios de jackpot y bonos del día. Las colecciones ya llegan filtradas al
// rango del día; aquí solo se acumula.
//
// Toda la aritmética monetaria es entera. La única cifra flotante es la
// duración en horas de cada sesión, que se multiplica por el pago por hora y
// se trunca hacia cero. Ese truncamiento es la política vigente de nómina y
// debe conservarse tal cual.
func Aggregate(
	reportDate time.Time,
	sessions []*domain.Session,
	jackpotWins []*domain.JackpotWin,
	bonos []*domain.Bono,
	now time.Time,
) (*domain.DailyReportDraft, error) {
	if err := validateAggregationInput(sessions, jackpotWins, bonos); err != nil {
		return nil, err
	}

	draft := &domain.DailyReportDraft{
		Date:        reportDate,
		Sessions:    make([]string, 0, len(sessions)),
		JackpotWins: make([]domain.JackpotWinEntry, 0, len(jackpotWins)),
		Bonos:       make([]domain.BonoEntry, 0, len(bonos)),
	}

	gastos := 0

	for _, session := range sessions {
		draft.Sessions = append(draft.Sessions, session.ID)
		draft.Reik += session.Reik
		draft.Jackpot += session.Jackpot

		gastos += laborCost(session, now)
		gastos += session.Tips
	}

	for _, win := range jackpotWins {
		draft.JackpotWins = append(draft.JackpotWins, domain.JackpotWinEntry{
			JackpotWinID: win.ID,
			Sum:          win.Value,
		})
		gastos += win.Value
	}

	for _, bono := range bonos {
		draft.Bonos = append(draft.Bonos, domain.BonoEntry{
			BonoID: bono.ID,
			Sum:    bono.Value,
		})
		gastos += bono.Value
	}

	draft.Gastos = gastos
	draft.Ganancias = draft.Reik - gastos
	draft.Comment = fmt.Sprintf(
		"Reporte generado automáticamente con %d sesiones, %d jackpots y %d bonos",
		len(sessions), len(jackpotWins), len(bonos),
	)

	return draft, nil
}

// laborCost calcula el costo laboral de una sesión. Una sesión abierta se
// costea contra el instante actual; una sesión sin inicio o sin pago por hora
// no genera costo laboral.
func laborCost(session *domain.Session, now time.Time) int {
	if session.StartTime.IsZero() || session.HourlyPay == 0 {
		return 0
	}

	end := now
	if session.EndTime != nil {
		end = *session.EndTime
	}

	durationHours := end.Sub(session.StartTime).Hours()
	return int(durationHours * float64(session.HourlyPay))
}

// validateAggregationInput rechaza registros con montos negativos. Los
// almacenes validan al escribir, así que esto es solo una última barrera.
func validateAggregationInput(
	sessions []*domain.Session,
	jackpotWins []*domain.JackpotWin,
	bonos []*domain.Bono,
) error {
	for _, session := range sessions {
		if session.Reik < 0 || session.Jackpot < 0 || session.Tips < 0 || session.HourlyPay < 0 {
			return NewReportError(ErrNegativeAmount, "VAL_002",
				fmt.Sprintf("sesión %s con montos negativos", session.ID))
		}
	}

	for _, win := range jackpotWins {
		if win.Value < 0 {
			return NewReportError(ErrNegativeAmount, "VAL_002",
				fmt.Sprintf("premio de jackpot %s con valor negativo", win.ID))
		}
	}

	for _, bono := range bonos {
		if bono.Value < 0 {
			return NewReportError(ErrNegativeAmount, "VAL_002",
				fmt.Sprintf("bono %s con valor negativo", bono.ID))
		}
	}

	return nil
}
