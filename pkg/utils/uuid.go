package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID genera el identificador corto usado como clave de negocio.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
