// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/cosmetics-portal-api/infrastructure/database/postgres"
	"github.com/vfg2006/cosmetics-portal-api/internal/domain"
)

const (
	ordersTable = "orders o"

	// Limite de linhas por INSERT para não estourar o máximo de parâmetros do Postgres
	orderUpsertBatchSize = 500
)

var orderColumns = []string{
	"o.id",
	"o.order_date",
	"o.total",
	"o.vendor_id",
	"o.vendor_name",
	"o.client_id",
	"o.client_name",
}

//go:generate mockgen -source=order.go -destination=mocks/mock_order.go -package=mocks

type OrderRepository interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListOrdersByYears(ctx context.Context, years []int) ([]domain.Order, error)
	SaveOrUpdate(ctx context.Context, orders []domain.Order) (int, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	query, args, err := squirrel.
		Select(orderColumns...).
		From(ordersTable).
		OrderBy("o.order_date ASC", "o.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	return r.queryOrders(ctx, query, args...)
}

// ListOrdersByYears busca os pedidos cujo ano (prefixo yyyy da data) está na lista
func (r *orderRepository) ListOrdersByYears(ctx context.Context, years []int) ([]domain.Order, error) {
	if len(years) == 0 {
		return []domain.Order{}, nil
	}

	labels := make([]string, 0, len(years))
	for _, year := range years {
		labels = append(labels, fmt.Sprintf("%04d", year))
	}

	query, args, err := squirrel.
		Select(orderColumns...).
		From(ordersTable).
		Where(squirrel.Eq{"LEFT(o.order_date, 4)": labels}).
		OrderBy("o.order_date ASC", "o.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	return r.queryOrders(ctx, query, args...)
}

// SaveOrUpdate insere ou atualiza pedidos pelo ID e retorna quantos IDs distintos foram enviados ao banco
func (r *orderRepository) SaveOrUpdate(ctx context.Context, orders []domain.Order) (int, error) {
	// Um mesmo INSERT ... ON CONFLICT não pode tocar a mesma linha duas vezes; vale a última ocorrência do ID
	valid := make([]domain.Order, 0, len(orders))
	positions := make(map[string]int, len(orders))
	for _, order := range orders {
		if order.ID == "" {
			continue
		}
		if i, seen := positions[order.ID]; seen {
			valid[i] = order
			continue
		}
		positions[order.ID] = len(valid)
		valid = append(valid, order)
	}

	if len(valid) == 0 {
		return 0, nil
	}

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(valid); start += orderUpsertBatchSize {
			end := min(start+orderUpsertBatchSize, len(valid))
			if err := r.upsertBatch(ctx, tx, valid[start:end]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(valid), nil
}

func (r *orderRepository) upsertBatch(ctx context.Context, q postgres.Queryer, orders []domain.Order) error {
	query := squirrel.StatementBuilder.
		Insert("orders").
		Columns(
			"id",
			"order_date",
			"total",
			"vendor_id",
			"vendor_name",
			"client_id",
			"client_name",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, order := range orders {
		var total sql.NullInt64
		if order.Total != nil {
			total = sql.NullInt64{Int64: *order.Total, Valid: true}
		}

		query = query.Values(
			order.ID,
			order.Date,
			total,
			order.VendorID,
			order.VendorName,
			order.ClientID,
			order.ClientName,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (id) DO UPDATE SET
			order_date = EXCLUDED.order_date,
			total = EXCLUDED.total,
			vendor_id = EXCLUDED.vendor_id,
			vendor_name = EXCLUDED.vendor_name,
			client_id = EXCLUDED.client_id,
			client_name = EXCLUDED.client_name,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de inserção")
	}

	_, err = q.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return errors.Wrapf(pqErr, "erro no banco de dados (código: %s)", pqErr.Code)
		}
		return errors.Wrap(err, "erro ao executar query de inserção")
	}

	return nil
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear pedido")
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return orders, nil
}

func (r *orderRepository) scanOrder(rows *sql.Rows) (domain.Order, error) {
	var (
		order      domain.Order
		total      sql.NullInt64
		vendorID   sql.NullString
		vendorName sql.NullString
		clientID   sql.NullString
		clientName sql.NullString
	)

	err := rows.Scan(
		&order.ID,
		&order.Date,
		&total,
		&vendorID,
		&vendorName,
		&clientID,
		&clientName,
	)
	if err != nil {
		return domain.Order{}, err
	}

	if total.Valid {
		value := total.Int64
		order.Total = &value
	}

	order.VendorID = vendorID.String
	order.VendorName = vendorName.String
	order.ClientID = clientID.String
	order.ClientName = clientName.String

	return order, nil
}
