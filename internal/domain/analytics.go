package domain

// KPIs são os cinco indicadores principais do dashboard
type KPIs struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalCustomers    int64   `json:"totalCustomers"`
	TotalTransactions int64   `json:"totalTransactions"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	TotalProducts     int64   `json:"totalProducts"`
}

type TrendPeriod string

const (
	TrendPeriodMonthly   TrendPeriod = "monthly"
	TrendPeriodQuarterly TrendPeriod = "quarterly"
)

// ParseTrendPeriod aceita apenas "quarterly"; qualquer outro valor vira mensal
func ParseTrendPeriod(value string) TrendPeriod {
	if TrendPeriod(value) == TrendPeriodQuarterly {
		return TrendPeriodQuarterly
	}
	return TrendPeriodMonthly
}

// SalesTrend é um ponto da série de receita. Month ou Quarter vem preenchido conforme o período.
type SalesTrend struct {
	Year          int     `json:"year"`
	Month         *int    `json:"month,omitempty"`
	Quarter       *int    `json:"quarter,omitempty"`
	Revenue       float64 `json:"revenue"`
	Transactions  int64   `json:"transactions"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

type TopCustomer struct {
	CustomerID   int64     `json:"customer_id"`
	CustomerCode string    `json:"customer_code"`
	Gender       string    `json:"gender"`
	Age          int       `json:"age"`
	TotalSpent   float64   `json:"total_spent"`
	TotalOrders  int64     `json:"total_orders"`
	ClusterID    ClusterID `json:"cluster_id"`
}

type DailySales struct {
	Day          int     `json:"day"`
	Sales        float64 `json:"sales"`
	Transactions int64   `json:"transactions"`
}
