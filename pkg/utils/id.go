package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID gera IDs curtos usados em execuções de rotinas e na carga de demonstração
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
