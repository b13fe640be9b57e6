package main

import (
	"context"
	"database/sql"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/retail-analytics/dashboard-api/pkg/utils"
)

const (
	defaultSeed      = 42
	seedCustomers    = 200
	seedProducts     = 30
	seedDays         = 365
	maxOrdersPerUser = 25
)

var (
	categories = []string{"Beauty", "Clothing", "Electronics"}
	genders    = []string{"Male", "Female"}
)

type seedCustomer struct {
	Gender string
	Age    int
}

type seedProduct struct {
	Category     string
	PricePerUnit decimal.Decimal
}

type seedDate struct {
	DateID   int
	FullDate time.Time
}

type seedSale struct {
	DateID      int
	Customer    int
	Product     int
	Quantity    int64
	TotalAmount decimal.Decimal
}

type seedData struct {
	Customers []seedCustomer
	Products  []seedProduct
	Dates     []seedDate
	Sales     []seedSale
}

// newSeedData gera um ano de vendas terminando no dia anterior a now.
// A mesma semente sempre produz os mesmos dados.
func newSeedData(seed uint64, now time.Time) seedData {
	r := rand.New(rand.NewPCG(seed, seed))
	data := seedData{}

	for range seedCustomers {
		data.Customers = append(data.Customers, seedCustomer{
			Gender: genders[r.IntN(len(genders))],
			Age:    18 + r.IntN(47),
		})
	}

	for i := range seedProducts {
		price := decimal.NewFromFloat(20 + r.Float64()*480).Round(2)
		data.Products = append(data.Products, seedProduct{
			Category:     categories[i%len(categories)],
			PricePerUnit: price,
		})
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for i := seedDays; i >= 1; i-- {
		day := today.AddDate(0, 0, -i)
		data.Dates = append(data.Dates, seedDate{
			DateID:   dateID(day),
			FullDate: day,
		})
	}

	for customer := range data.Customers {
		orders := 1 + r.IntN(maxOrdersPerUser)
		for range orders {
			product := r.IntN(len(data.Products))
			quantity := int64(1 + r.IntN(4))

			data.Sales = append(data.Sales, seedSale{
				DateID:      data.Dates[r.IntN(len(data.Dates))].DateID,
				Customer:    customer,
				Product:     product,
				Quantity:    quantity,
				TotalAmount: data.Products[product].PricePerUnit.Mul(decimal.NewFromInt(quantity)),
			})
		}
	}

	return data
}

// dateID segue o formato YYYYMMDD usado como chave de dim_date
func dateID(day time.Time) int {
	return day.Year()*10000 + int(day.Month())*100 + day.Day()
}

func quarter(month time.Month) int {
	return (int(month)-1)/3 + 1
}

func seedWarehouse(ctx context.Context, tx *sql.Tx, data seedData) error {
	customerIDs, err := insertCustomers(ctx, tx, data.Customers)
	if err != nil {
		return err
	}

	productIDs, err := insertProducts(ctx, tx, data.Products)
	if err != nil {
		return err
	}

	if err := insertDates(ctx, tx, data.Dates); err != nil {
		return err
	}

	return insertSales(ctx, tx, data.Sales, customerIDs, productIDs)
}

func insertCustomers(ctx context.Context, tx *sql.Tx, customers []seedCustomer) ([]int64, error) {
	logrus.Infof("Iniciando inserção de %d clientes...", len(customers))
	startTime := time.Now()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO dim.dim_customer (customer_code, gender, age) VALUES ($1, $2, $3) RETURNING customer_id`)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao preparar statement para dim_customer")
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(customers))
	for i, c := range customers {
		code, err := utils.GenerateCustomerCode()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar código do cliente")
		}

		var id int64
		if err := stmt.QueryRowContext(ctx, code, c.Gender, c.Age).Scan(&id); err != nil {
			return nil, errors.Wrapf(err, "erro ao inserir cliente [%d/%d]", i+1, len(customers))
		}
		ids = append(ids, id)

		if i > 0 && i%50 == 0 {
			logrus.Infof("Progresso: %d/%d clientes processados", i+1, len(customers))
		}
	}

	logrus.Infof("Inserção de clientes concluída em %v", time.Since(startTime))
	return ids, nil
}

func insertProducts(ctx context.Context, tx *sql.Tx, products []seedProduct) ([]int64, error) {
	logrus.Infof("Iniciando inserção de %d produtos...", len(products))

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO dim.dim_product (category, price_per_unit) VALUES ($1, $2) RETURNING product_id`)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao preparar statement para dim_product")
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(products))
	for i, p := range products {
		var id int64
		if err := stmt.QueryRowContext(ctx, p.Category, p.PricePerUnit).Scan(&id); err != nil {
			return nil, errors.Wrapf(err, "erro ao inserir produto [%d/%d]", i+1, len(products))
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func insertDates(ctx context.Context, tx *sql.Tx, dates []seedDate) error {
	logrus.Infof("Iniciando inserção de %d datas...", len(dates))

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO dim.dim_date (date_id, full_date, year, quarter, month, day) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (date_id) DO NOTHING`)
	if err != nil {
		return errors.Wrap(err, "erro ao preparar statement para dim_date")
	}
	defer stmt.Close()

	for _, d := range dates {
		day := d.FullDate
		if _, err := stmt.ExecContext(ctx, d.DateID, day, day.Year(), quarter(day.Month()), int(day.Month()), day.Day()); err != nil {
			return errors.Wrapf(err, "erro ao inserir data %d", d.DateID)
		}
	}

	return nil
}

func insertSales(ctx context.Context, tx *sql.Tx, sales []seedSale, customerIDs, productIDs []int64) error {
	logrus.Infof("Iniciando inserção de %d vendas...", len(sales))
	startTime := time.Now()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO fact.fact_sales (date_id, customer_id, product_id, quantity, total_amount) VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return errors.Wrap(err, "erro ao preparar statement para fact_sales")
	}
	defer stmt.Close()

	for i, s := range sales {
		_, err := stmt.ExecContext(ctx, s.DateID, customerIDs[s.Customer], productIDs[s.Product], s.Quantity, s.TotalAmount)
		if err != nil {
			return errors.Wrapf(err, "erro ao inserir venda [%d/%d]", i+1, len(sales))
		}

		if i > 0 && i%500 == 0 {
			logrus.Infof("Progresso: %d/%d vendas processadas", i+1, len(sales))
		}
	}

	logrus.Infof("Inserção de vendas concluída em %v", time.Since(startTime))
	return nil
}
