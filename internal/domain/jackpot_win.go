package domain

import "time"

// JackpotWin representa un premio de jackpot pagado a un jugador.
// Es independiente del contador acumulado de jackpot de la sesión.
type JackpotWin struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	SessionID  string    `json:"session_id"`
	Value      int       `json:"value"`
	WinnerHand *string   `json:"winner_hand"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsHighValue indica si el premio supera el umbral dado.
func (j *JackpotWin) IsHighValue(threshold int) bool {
	return j.Value >= threshold
}

// HasWinnerHand indica si se registró la mano ganadora.
func (j *JackpotWin) HasWinnerHand() bool {
	return j.WinnerHand != nil && *j.WinnerHand != ""
}

// ValidateBusinessRules valida las reglas de negocio del premio.
func (j *JackpotWin) ValidateBusinessRules() []string {
	var errors []string

	if j.UserID == "" {
		errors = append(errors, "el user_id es obligatorio")
	}
	if j.SessionID == "" {
		errors = append(errors, "el session_id es obligatorio")
	}
	if j.Value <= 0 {
		errors = append(errors, "el valor del jackpot debe ser mayor a 0")
	}

	return errors
}
