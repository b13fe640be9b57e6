package domain

// Product representa uma linha de dim.dim_product
type Product struct {
	ProductID    int64   `json:"product_id"`
	Category     string  `json:"category"`
	PricePerUnit float64 `json:"price_per_unit"`
}

// ProductDetail é o produto com o agregado de vendas de toda a sua vida
type ProductDetail struct {
	Product
	TotalSales    int64   `json:"total_sales"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// CategorySummary agrega as vendas de uma categoria
type CategorySummary struct {
	Category         string  `json:"category"`
	TransactionCount int64   `json:"transaction_count"`
	TotalQuantity    int64   `json:"total_quantity"`
	TotalRevenue     float64 `json:"total_revenue"`
}
