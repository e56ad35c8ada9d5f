package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/cosmetics-portal-api/infrastructure/database/postgres"
	"github.com/vfg2006/cosmetics-portal-api/internal/domain"
)

const (
	vendorRankingTable = "vendor_ranking vr"
)

var vendorRankingColumns = []string{
	"vr.id",
	"vr.vendor_id",
	"vr.month",
	"vr.vendor_name",
	"vr.sales",
	"vr.orders_count",
	"vr.clients_count",
	"vr.sales_share",
	"vr.position",
	"vr.position_change",
	"vr.previous_position",
	"vr.created_at",
	"vr.updated_at",
}

//go:generate mockgen -source=vendor_ranking.go -destination=mocks/mock_vendor_ranking.go -package=mocks

type VendorRankingRepository interface {
	GetByVendorID(ctx context.Context, vendorID string, month string) (*domain.VendorRankingItem, error)
	ListByMonth(ctx context.Context, month string) (map[string]*domain.VendorRankingItem, error)
	GetVendorRanking(ctx context.Context, month string) (*domain.VendorRankingResponse, error)
	SaveOrUpdateVendorRanking(ctx context.Context, rankings []*domain.VendorRankingItem) error
}

type vendorRankingRepository struct {
	conn *postgres.Connection
}

func NewVendorRankingRepository(conn *postgres.Connection) VendorRankingRepository {
	return &vendorRankingRepository{
		conn: conn,
	}
}

func (r *vendorRankingRepository) GetVendorRanking(ctx context.Context, month string) (*domain.VendorRankingResponse, error) {
	sqlQuery, args, err := squirrel.
		Select(vendorRankingColumns...).
		From(vendorRankingTable).
		Where(squirrel.Eq{"vr.month": month}).
		OrderBy("vr.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	items, err := r.queryItems(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	// Manter o último update mais recente
	rankings := make([]domain.VendorRankingItem, 0, len(items))
	var lastUpdate time.Time
	for _, item := range items {
		rankings = append(rankings, *item)
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	// Se não há registros, usar tempo atual para lastUpdate
	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.VendorRankingResponse{
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *vendorRankingRepository) ListByMonth(ctx context.Context, month string) (map[string]*domain.VendorRankingItem, error) {
	sqlQuery, args, err := squirrel.
		Select(vendorRankingColumns...).
		From(vendorRankingTable).
		Where(squirrel.Eq{"vr.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	items, err := r.queryItems(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	byVendor := make(map[string]*domain.VendorRankingItem, len(items))
	for _, item := range items {
		byVendor[item.VendorID] = item
	}

	return byVendor, nil
}

func (r *vendorRankingRepository) GetByVendorID(ctx context.Context, vendorID string, month string) (*domain.VendorRankingItem, error) {
	query, args, err := squirrel.
		Select(vendorRankingColumns...).
		From(vendorRankingTable).
		Where(squirrel.Eq{"vr.vendor_id": vendorID, "vr.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	item := &domain.VendorRankingItem{}
	if err := row.Scan(r.scanTargets(item)...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao escanear ranking")
	}

	return item, nil
}

func (r *vendorRankingRepository) SaveOrUpdateVendorRanking(ctx context.Context, rankings []*domain.VendorRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	// Construir query de inserção em lote
	query := squirrel.StatementBuilder.
		Insert("vendor_ranking").
		Columns(
			"vendor_id",
			"month",
			"vendor_name",
			"sales",
			"orders_count",
			"clients_count",
			"sales_share",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.VendorID,
			ranking.Month,
			ranking.VendorName,
			ranking.Sales,
			ranking.OrdersCount,
			ranking.ClientsCount,
			ranking.SalesShare,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	// Configurar comportamento de conflito (upsert)
	query = query.Suffix(`
		ON CONFLICT (vendor_id, month) DO UPDATE SET
			vendor_name = EXCLUDED.vendor_name,
			sales = EXCLUDED.sales,
			orders_count = EXCLUDED.orders_count,
			clients_count = EXCLUDED.clients_count,
			sales_share = EXCLUDED.sales_share,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de inserção")
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao executar query de inserção")
	}

	return nil
}

func (r *vendorRankingRepository) queryItems(ctx context.Context, query string, args ...interface{}) ([]*domain.VendorRankingItem, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	items := make([]*domain.VendorRankingItem, 0)
	for rows.Next() {
		item := &domain.VendorRankingItem{}
		if err := rows.Scan(r.scanTargets(item)...); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear item do ranking")
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return items, nil
}

func (r *vendorRankingRepository) scanTargets(item *domain.VendorRankingItem) []interface{} {
	return []interface{}{
		&item.ID,
		&item.VendorID,
		&item.Month,
		&item.VendorName,
		&item.Sales,
		&item.OrdersCount,
		&item.ClientsCount,
		&item.SalesShare,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	}
}
