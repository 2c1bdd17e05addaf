package domain

import "time"

// Session representa una sesión de trabajo de un dealer en una mesa.
type Session struct {
	ID        string     `json:"id"`
	DealerID  string     `json:"dealer_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Jackpot   int        `json:"jackpot"`
	Reik      int        `json:"reik"`
	Tips      int        `json:"tips"`
	HourlyPay int        `json:"hourly_pay"`
	Comment   *string    `json:"comment"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type UpdateSessionRequest struct {
	ID        string     `json:"id"`
	EndTime   *time.Time `json:"end_time"`
	Jackpot   *int       `json:"jackpot"`
	Reik      *int       `json:"reik"`
	Tips      *int       `json:"tips"`
	HourlyPay *int       `json:"hourly_pay"`
	Comment   *string    `json:"comment"`
}

// SessionStats son los totales agregados sobre las sesiones registradas.
type SessionStats struct {
	TotalSessions  int `json:"total_sessions"`
	ActiveSessions int `json:"active_sessions"`
	TotalJackpot   int `json:"total_jackpot"`
	TotalReik      int `json:"total_reik"`
	TotalTips      int `json:"total_tips"`
}

// IsActive indica si la sesión sigue abierta.
func (s *Session) IsActive() bool {
	return s.EndTime == nil
}

// Duration retorna la duración de la sesión en horas, o nil si sigue abierta.
func (s *Session) Duration() *float64 {
	if s.EndTime == nil {
		return nil
	}
	hours := s.EndTime.Sub(s.StartTime).Hours()
	return &hours
}

// WithEnd retorna una copia de la sesión finalizada en el instante dado.
// La sesión original no se modifica.
func (s Session) WithEnd(endTime, now time.Time) Session {
	s.EndTime = &endTime
	s.UpdatedAt = now
	return s
}

// WithJackpot retorna una copia con el monto acumulado al jackpot.
func (s Session) WithJackpot(amount int, now time.Time) Session {
	s.Jackpot += amount
	s.UpdatedAt = now
	return s
}

// WithReik retorna una copia con el monto acumulado al reik.
func (s Session) WithReik(amount int, now time.Time) Session {
	s.Reik += amount
	s.UpdatedAt = now
	return s
}

// WithTips retorna una copia con las propinas acumuladas.
func (s Session) WithTips(amount int, now time.Time) Session {
	s.Tips += amount
	s.UpdatedAt = now
	return s
}

// ValidateBusinessRules valida las reglas de negocio de la sesión.
// Retorna la lista de errores encontrados.
func (s *Session) ValidateBusinessRules() []string {
	var errors []string

	if s.DealerID == "" {
		errors = append(errors, "el dealer_id es obligatorio")
	}

	if s.StartTime.IsZero() {
		errors = append(errors, "el start_time es obligatorio")
	}

	if s.EndTime != nil && s.EndTime.Before(s.StartTime) {
		errors = append(errors, "el tiempo de fin no puede ser anterior al tiempo de inicio")
	}

	if s.Jackpot < 0 {
		errors = append(errors, "el jackpot no puede ser negativo")
	}
	if s.Reik < 0 {
		errors = append(errors, "el reik no puede ser negativo")
	}
	if s.Tips < 0 {
		errors = append(errors, "las propinas no pueden ser negativas")
	}
	if s.HourlyPay < 0 {
		errors = append(errors, "el pago por hora no puede ser negativo")
	}

	return errors
}
