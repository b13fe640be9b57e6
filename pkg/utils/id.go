package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateCustomerCode gera códigos no formato CUST-XXXXXX
func GenerateCustomerCode() (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}
	return "CUST-" + id, nil
}
