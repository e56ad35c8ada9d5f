// Package script cria o schema do banco e, opcionalmente, uma carga de demonstração
package script

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cosmetics-portal-api/infrastructure/database/postgres"
	"github.com/vfg2006/cosmetics-portal-api/infrastructure/repository"
	"github.com/vfg2006/cosmetics-portal-api/internal/domain"
	"github.com/vfg2006/cosmetics-portal-api/pkg/utils"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id          TEXT PRIMARY KEY,
		order_date  TEXT NOT NULL,
		total       BIGINT NULL,
		vendor_id   TEXT NULL,
		vendor_name TEXT NULL,
		client_id   TEXT NULL,
		client_name TEXT NULL,
		created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS orders_order_year_idx ON orders (LEFT(order_date, 4))`,
	`CREATE TABLE IF NOT EXISTS vendor_ranking (
		id                SERIAL PRIMARY KEY,
		vendor_id         TEXT NOT NULL,
		month             VARCHAR(7) NOT NULL,
		vendor_name       TEXT NOT NULL DEFAULT '',
		sales             BIGINT NOT NULL DEFAULT 0,
		orders_count      INTEGER NOT NULL DEFAULT 0,
		clients_count     INTEGER NOT NULL DEFAULT 0,
		sales_share       DOUBLE PRECISION NOT NULL DEFAULT 0,
		position          INTEGER NOT NULL,
		position_change   INTEGER NOT NULL DEFAULT 0,
		previous_position INTEGER NOT NULL DEFAULT 0,
		created_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT vendor_ranking_vendor_month_unique UNIQUE (vendor_id, month)
	)`,
}

// Migrate cria as tabelas e índices que ainda não existem
func Migrate(ctx context.Context, q postgres.Queryer) error {
	startTime := time.Now()
	logrus.Info("Iniciando migração do banco de dados...")

	for i, statement := range statements {
		if _, err := q.ExecContext(ctx, statement); err != nil {
			return errors.Wrapf(err, "erro ao executar migração [%d/%d]", i+1, len(statements))
		}
	}

	logrus.WithField("duration_ms", time.Since(startTime).Milliseconds()).Info("Migração concluída")
	return nil
}

type demoParty struct {
	ID   string
	Name string
}

var (
	demoVendors = []string{"Ana Souza", "Bruno Lima", "Carla Mendes", "Diego Rocha"}
	demoClients = []string{
		"Perfumaria Bela Flor",
		"Drogaria Central",
		"Empório da Beleza",
		"Studio Hair Prime",
		"Farmácia Popular do Centro",
		"Boutique Essência",
	}
)

// DemoOrders gera pedidos determinísticos do mês atual e do mesmo mês no ano anterior.
// Os IDs são gerados com nanoid, então cada chamada produz novos registros.
func DemoOrders(now time.Time) ([]domain.Order, error) {
	vendors, err := demoParties(demoVendors)
	if err != nil {
		return nil, err
	}

	clients, err := demoParties(demoClients)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0)
	for yearOffset := 0; yearOffset <= 1; yearOffset++ {
		year := now.Year() - yearOffset
		lastDay := time.Date(year, now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()

		for day := 1; day <= lastDay; day++ {
			for slot := 0; slot < 1+day%3; slot++ {
				vendor := vendors[(day+slot)%len(vendors)]
				client := clients[(day*2+slot+yearOffset)%len(clients)]
				total := int64(15000 + day*1250 + slot*4300 - yearOffset*2100)

				id, err := utils.GenerateID()
				if err != nil {
					return nil, errors.Wrap(err, "erro ao gerar id do pedido")
				}

				orders = append(orders, domain.Order{
					ID:         "demo-" + id,
					Date:       fmt.Sprintf("%04d-%02d-%02d", year, int(now.Month()), day),
					Total:      &total,
					VendorID:   vendor.ID,
					VendorName: vendor.Name,
					ClientID:   client.ID,
					ClientName: client.Name,
				})
			}
		}
	}

	return orders, nil
}

// SeedDemo grava os pedidos de demonstração pelo repositório de pedidos
func SeedDemo(ctx context.Context, orderRepo repository.OrderRepository, now time.Time) (int, error) {
	orders, err := DemoOrders(now)
	if err != nil {
		return 0, err
	}

	saved, err := orderRepo.SaveOrUpdate(ctx, orders)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao gravar pedidos de demonstração")
	}

	logrus.WithField("orders_saved", saved).Info("Carga de demonstração concluída")
	return saved, nil
}

func demoParties(names []string) ([]demoParty, error) {
	parties := make([]demoParty, 0, len(names))
	for _, name := range names {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar id")
		}
		parties = append(parties, demoParty{ID: id, Name: name})
	}
	return parties, nil
}
