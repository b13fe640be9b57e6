package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ClusterID é o rótulo de segmento atribuído a um cliente
type ClusterID int

const (
	ClusterHighValue ClusterID = 0
	ClusterLoyal     ClusterID = 1
	ClusterNew       ClusterID = 2
	ClusterAtRisk    ClusterID = 3
)

// Limiares da regra de segmentação. A regra em SQL (ClusterCaseSQL) e a regra
// em memória (AssignCluster) são derivadas destes mesmos valores.
const (
	HighValueMinSpent = 10000.0
	LoyalMinOrders    = 15
	NewMaxSpent       = 1000.0
	NewMaxOrders      = 5
)

var clusterLabels = map[ClusterID]string{
	ClusterHighValue: "High Value",
	ClusterLoyal:     "Loyal",
	ClusterNew:       "New",
	ClusterAtRisk:    "At Risk",
}

func (c ClusterID) Label() string {
	if label, ok := clusterLabels[c]; ok {
		return label
	}
	return fmt.Sprintf("Cluster %d", int(c))
}

// AssignCluster avalia a regra de segmentação na ordem fixa de prioridade
func AssignCluster(totalSpent float64, totalOrders int64) ClusterID {
	switch {
	case totalSpent > HighValueMinSpent:
		return ClusterHighValue
	case totalOrders > LoyalMinOrders:
		return ClusterLoyal
	case totalSpent < NewMaxSpent || totalOrders < NewMaxOrders:
		return ClusterNew
	default:
		return ClusterAtRisk
	}
}

// ClusterCaseSQL gera a expressão CASE equivalente a AssignCluster para as
// expressões SQL de gasto total e quantidade de pedidos informadas
func ClusterCaseSQL(spentExpr, ordersExpr string) string {
	return fmt.Sprintf(
		"CASE WHEN %[1]s > %[3]s THEN %[5]d WHEN %[2]s > %[4]d THEN %[6]d WHEN %[1]s < %[7]s OR %[2]s < %[8]d THEN %[9]d ELSE %[10]d END",
		spentExpr,
		ordersExpr,
		formatThreshold(HighValueMinSpent),
		LoyalMinOrders,
		ClusterHighValue,
		ClusterLoyal,
		formatThreshold(NewMaxSpent),
		NewMaxOrders,
		ClusterNew,
		ClusterAtRisk,
	)
}

func formatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CustomerSpend é o agregado por cliente usado pela segmentação de fallback
type CustomerSpend struct {
	CustomerID   int64
	CustomerCode string
	Gender       string
	Age          int
	TotalSpent   float64
	TotalOrders  int64
}

// ClusterPayload é a união das duas origens de clusters. Cada variante é
// resolvida uma única vez para ClusterSet.
type ClusterPayload interface {
	clusterPayload()
}

// ExternalClusterPayload carrega as entradas por cliente devolvidas pelo serviço de ML,
// ainda não validadas
type ExternalClusterPayload struct {
	Entries []json.RawMessage
}

// FallbackClusterPayload carrega os agregados calculados direto no warehouse
type FallbackClusterPayload struct {
	Rows []CustomerSpend
}

func (ExternalClusterPayload) clusterPayload() {}
func (FallbackClusterPayload) clusterPayload() {}

type ClusterSource string

const (
	ClusterSourceMLService ClusterSource = "ml-service"
	ClusterSourceFallback  ClusterSource = "fallback"
)

// ClusterMember é a representação normalizada de um cliente segmentado
type ClusterMember struct {
	CustomerID        int64     `json:"customer_id"`
	CustomerCode      string    `json:"customer_code,omitempty"`
	Gender            string    `json:"gender,omitempty"`
	Age               int       `json:"age,omitempty"`
	Recency           *float64  `json:"Recency,omitempty"`
	Frequency         float64   `json:"Frequency"`
	Monetary          float64   `json:"Monetary"`
	AvgOrderValue     *float64  `json:"AvgOrderValue,omitempty"`
	PreferredCategory string    `json:"PreferredCategory,omitempty"`
	Cluster           ClusterID `json:"cluster"`
}

// ClusterSet é o resultado normalizado, independente da origem
type ClusterSet struct {
	Source  ClusterSource
	Members []ClusterMember
	Skipped int
}

type ClusterStats struct {
	Label          string          `json:"label"`
	Count          int             `json:"count"`
	TotalRevenue   float64         `json:"totalRevenue"`
	TotalFrequency float64         `json:"totalFrequency"`
	Customers      []ClusterMember `json:"customers,omitempty"`
}

type ClusterSummary struct {
	TotalCustomers int                        `json:"totalCustomers"`
	Clusters       map[ClusterID]ClusterStats `json:"clusters"`
}

// ClusterReport é a resposta de /api/ml/clusters
type ClusterReport struct {
	Source   ClusterSource   `json:"source"`
	Clusters []ClusterMember `json:"clusters"`
	Summary  ClusterSummary  `json:"summary"`
}

func (r *ClusterReport) IsFallback() bool {
	return r.Source == ClusterSourceFallback
}
