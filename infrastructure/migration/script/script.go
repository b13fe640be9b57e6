package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/retail-analytics/dashboard-api/infrastructure/database/postgres"
	"github.com/retail-analytics/dashboard-api/internal/config"
	"github.com/retail-analytics/dashboard-api/pkg/log"
)

var schemaStatements = []string{
	`CREATE SCHEMA IF NOT EXISTS dim`,
	`CREATE SCHEMA IF NOT EXISTS fact`,
	`CREATE TABLE IF NOT EXISTS dim.dim_customer (
		customer_id   SERIAL PRIMARY KEY,
		customer_code VARCHAR(20) NOT NULL UNIQUE,
		gender        VARCHAR(10),
		age           INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS dim.dim_product (
		product_id     SERIAL PRIMARY KEY,
		category       VARCHAR(50) NOT NULL,
		price_per_unit NUMERIC(10, 2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dim.dim_date (
		date_id   INTEGER PRIMARY KEY,
		full_date DATE NOT NULL UNIQUE,
		year      INTEGER NOT NULL,
		quarter   INTEGER NOT NULL,
		month     INTEGER NOT NULL,
		day       INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS fact.fact_sales (
		transaction_id SERIAL PRIMARY KEY,
		date_id        INTEGER NOT NULL REFERENCES dim.dim_date (date_id),
		customer_id    INTEGER NOT NULL REFERENCES dim.dim_customer (customer_id),
		product_id     INTEGER NOT NULL REFERENCES dim.dim_product (product_id),
		quantity       INTEGER NOT NULL,
		total_amount   NUMERIC(12, 2) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_fact_sales_customer ON fact.fact_sales (customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_fact_sales_date ON fact.fact_sales (date_id)`,
}

func createSchema(ctx context.Context, tx *sql.Tx) error {
	logrus.Info("Criando schemas e tabelas do warehouse...")

	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrapf(err, "erro ao executar %q", firstLine(stmt))
		}
	}

	logrus.Info("Schema criado com sucesso")
	return nil
}

// alreadySeeded evita duplicar a carga quando o script roda mais de uma vez
func alreadySeeded(ctx context.Context, tx *sql.Tx) (bool, error) {
	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM fact.fact_sales`).Scan(&count); err != nil {
		return false, errors.Wrap(err, "erro ao contar vendas existentes")
	}
	return count > 0, nil
}

func firstLine(stmt string) string {
	for i, r := range stmt {
		if r == '\n' {
			return stmt[:i]
		}
	}
	return stmt
}

func main() {
	schemaOnly := flag.Bool("schema-only", false, "cria apenas o schema, sem dados de exemplo")
	seed := flag.Uint64("seed", defaultSeed, "semente do gerador de dados de exemplo")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(ctx, tx); err != nil {
			return err
		}

		if *schemaOnly {
			return nil
		}

		seeded, err := alreadySeeded(ctx, tx)
		if err != nil {
			return err
		}
		if seeded {
			logrus.Info("Warehouse já possui vendas, carga de exemplo ignorada")
			return nil
		}

		return seedWarehouse(ctx, tx, newSeedData(*seed, time.Now()))
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro durante a migração")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Migração concluída")
}
