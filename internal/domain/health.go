package domain

import "time"

// MLServiceStatus é o último resultado da sonda de disponibilidade do serviço de ML
type MLServiceStatus struct {
	Available     bool       `json:"available"`
	LastCheckedAt *time.Time `json:"lastCheckedAt"`
	LastError     string     `json:"lastError,omitempty"`
}

// Health é o corpo de /api/health
type Health struct {
	Status    string          `json:"status"`
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	MLService MLServiceStatus `json:"mlService"`
}
