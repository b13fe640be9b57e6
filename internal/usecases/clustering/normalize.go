package clustering

import (
	"encoding/json"
	"math"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/retail-analytics/dashboard-api/internal/domain"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// NormalizeClusters converte qualquer variante de ClusterPayload para ClusterSet.
// Entradas externas malformadas são descartadas e contadas em Skipped.
func NormalizeClusters(payload domain.ClusterPayload) domain.ClusterSet {
	switch p := payload.(type) {
	case domain.ExternalClusterPayload:
		return normalizeExternal(p.Entries)
	case *domain.ExternalClusterPayload:
		return normalizeExternal(p.Entries)
	case domain.FallbackClusterPayload:
		return normalizeFallback(p.Rows)
	case *domain.FallbackClusterPayload:
		return normalizeFallback(p.Rows)
	default:
		return domain.ClusterSet{Members: []domain.ClusterMember{}}
	}
}

func normalizeExternal(entries []json.RawMessage) domain.ClusterSet {
	set := domain.ClusterSet{
		Source:  domain.ClusterSourceMLService,
		Members: make([]domain.ClusterMember, 0, len(entries)),
	}

	for _, entry := range entries {
		member, ok := parseMember(entry)
		if !ok {
			set.Skipped++
			continue
		}
		set.Members = append(set.Members, member)
	}

	return set
}

func normalizeFallback(rows []domain.CustomerSpend) domain.ClusterSet {
	set := domain.ClusterSet{
		Source:  domain.ClusterSourceFallback,
		Members: make([]domain.ClusterMember, 0, len(rows)),
	}

	for _, row := range rows {
		set.Members = append(set.Members, domain.ClusterMember{
			CustomerID:   row.CustomerID,
			CustomerCode: row.CustomerCode,
			Gender:       row.Gender,
			Age:          row.Age,
			Frequency:    float64(row.TotalOrders),
			Monetary:     row.TotalSpent,
			Cluster:      domain.AssignCluster(row.TotalSpent, row.TotalOrders),
		})
	}

	return set
}

// parseMember exige um objeto com cluster inteiro. Monetary e Frequency, quando
// presentes, precisam ser numéricos; ausentes ou null contam como zero.
func parseMember(entry json.RawMessage) (domain.ClusterMember, bool) {
	var member domain.ClusterMember

	var fields map[string]json.RawMessage
	if err := jsonAPI.Unmarshal(entry, &fields); err != nil || fields == nil {
		return member, false
	}

	cluster, ok := numberField(fields, "cluster")
	if !ok || cluster == nil || *cluster != math.Trunc(*cluster) {
		return member, false
	}
	member.Cluster = domain.ClusterID(int(*cluster))

	monetary, ok := numberField(fields, "Monetary")
	if !ok {
		return member, false
	}
	if monetary != nil {
		member.Monetary = *monetary
	}

	frequency, ok := numberField(fields, "Frequency")
	if !ok {
		return member, false
	}
	if frequency != nil {
		member.Frequency = *frequency
	}

	if id, ok := numberField(fields, "customer_id"); ok && id != nil {
		member.CustomerID = int64(*id)
	}
	if recency, ok := numberField(fields, "Recency"); ok {
		member.Recency = recency
	}
	if aov, ok := numberField(fields, "AvgOrderValue"); ok {
		member.AvgOrderValue = aov
	}
	member.CustomerCode = stringField(fields, "customer_code")
	member.PreferredCategory = stringField(fields, "PreferredCategory")
	member.Gender = stringField(fields, "gender")

	return member, true
}

// numberField devolve (nil, true) quando o campo está ausente ou é null e
// (nil, false) quando existe mas não é numérico
func numberField(fields map[string]json.RawMessage, key string) (*float64, bool) {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return nil, true
	}

	var v float64
	if err := jsonAPI.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}

	return &v, true
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}

	var s string
	if err := jsonAPI.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Summarize agrega contagem, receita e frequência por segmento. A lista de
// membros só é incluída para a origem externa.
func Summarize(set domain.ClusterSet) domain.ClusterSummary {
	type accumulator struct {
		count     int
		revenue   decimal.Decimal
		frequency decimal.Decimal
		members   []domain.ClusterMember
	}

	acc := make(map[domain.ClusterID]*accumulator)
	withMembers := set.Source == domain.ClusterSourceMLService

	for _, member := range set.Members {
		a, ok := acc[member.Cluster]
		if !ok {
			a = &accumulator{}
			acc[member.Cluster] = a
		}

		a.count++
		a.revenue = a.revenue.Add(decimal.NewFromFloat(member.Monetary))
		a.frequency = a.frequency.Add(decimal.NewFromFloat(member.Frequency))
		if withMembers {
			a.members = append(a.members, member)
		}
	}

	summary := domain.ClusterSummary{
		TotalCustomers: len(set.Members),
		Clusters:       make(map[domain.ClusterID]domain.ClusterStats, len(acc)),
	}

	for id, a := range acc {
		summary.Clusters[id] = domain.ClusterStats{
			Label:          id.Label(),
			Count:          a.count,
			TotalRevenue:   a.revenue.InexactFloat64(),
			TotalFrequency: a.frequency.InexactFloat64(),
			Customers:      a.members,
		}
	}

	return summary
}
