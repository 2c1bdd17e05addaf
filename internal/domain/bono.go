package domain

import "time"

// Bono representa un bono discrecional otorgado a un usuario en una sesión.
// Para el reporte diario cuenta como gasto.
type Bono struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id"`
	Value     int       `json:"value"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsSignificant indica si el bono supera el umbral dado.
func (b *Bono) IsSignificant(threshold int) bool {
	return b.Value >= threshold
}

// ValidateBusinessRules valida las reglas de negocio del bono.
func (b *Bono) ValidateBusinessRules() []string {
	var errors []string

	if b.UserID == "" {
		errors = append(errors, "el user_id es obligatorio")
	}
	if b.SessionID == "" {
		errors = append(errors, "el session_id es obligatorio")
	}
	if b.Value <= 0 {
		errors = append(errors, "el valor del bono debe ser mayor a 0")
	}

	return errors
}
