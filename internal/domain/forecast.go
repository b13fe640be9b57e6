package domain

import "encoding/json"

const DefaultModelType = "simple"

// ForecastPoint é um período futuro previsto com sua banda de confiança
type ForecastPoint struct {
	Period          int   `json:"period"`
	Forecast        int64 `json:"forecast"`
	ConfidenceLower int64 `json:"confidence_lower"`
	ConfidenceUpper int64 `json:"confidence_upper"`
}

// ForecastResult guarda a resposta do serviço de ML ou os pontos de fallback.
// Fallback indica que a previsão é degradada.
type ForecastResult struct {
	External json.RawMessage
	Points   []ForecastPoint
	Fallback bool
}

// Data devolve o conteúdo a ser serializado no campo data da resposta
func (r *ForecastResult) Data() any {
	if r.Fallback {
		return r.Points
	}
	return r.External
}
