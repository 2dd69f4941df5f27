package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
// A poolSize of zero uses the default.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	cfg.MaxConns = int32(poolSize) //nolint:gosec // bounded by config

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateShop inserts a new shop, filling in its generated ID and timestamps.
func (s *PostgresStore) CreateShop(ctx context.Context, shop *domain.Shop) error {
	settingsJSON, err := json.Marshal(shop.Settings)
	if err != nil {
		return fmt.Errorf("marshaling shop settings: %w", err)
	}

	args := pgx.NamedArgs{
		"name":           shop.Name,
		"daily_capacity": shop.DailyCapacity,
		"settings":       settingsJSON,
	}

	if err := s.pool.QueryRow(ctx, queryCreateShop, args).Scan(
		&shop.ID, &shop.CreatedAt, &shop.UpdatedAt,
	); err != nil {
		return fmt.Errorf("creating shop: %w", err)
	}
	return nil
}

// GetShop retrieves a shop by its ID.
func (s *PostgresStore) GetShop(ctx context.Context, id string) (*domain.Shop, error) {
	shop := &domain.Shop{}
	if err := scanShop(s.pool.QueryRow(ctx, queryGetShop, id), shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// ListShops returns all shops ordered by name.
func (s *PostgresStore) ListShops(ctx context.Context) ([]domain.Shop, error) {
	rows, err := s.pool.Query(ctx, queryListShops)
	if err != nil {
		return nil, fmt.Errorf("querying shops: %w", err)
	}
	defer rows.Close()

	var shops []domain.Shop
	for rows.Next() {
		var shop domain.Shop
		if err := scanShop(rows, &shop); err != nil {
			return nil, fmt.Errorf("scanning shop: %w", err)
		}
		shops = append(shops, shop)
	}

	return shops, rows.Err()
}

// UpdateShopSettings replaces a shop's pricing settings. It returns
// pgx.ErrNoRows when the shop does not exist.
func (s *PostgresStore) UpdateShopSettings(
	ctx context.Context,
	id string,
	settings pricing.ShopSettings,
) error {
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshaling shop settings: %w", err)
	}

	var updatedAt time.Time
	if err := s.pool.QueryRow(ctx, queryUpdateShopSettings, id, settingsJSON).Scan(&updatedAt); err != nil {
		return fmt.Errorf("updating shop settings: %w", err)
	}
	return nil
}

// UpsertCustomer inserts or replaces a customer's profile.
func (s *PostgresStore) UpsertCustomer(ctx context.Context, c *domain.Customer) error {
	profileJSON, err := json.Marshal(c.Profile)
	if err != nil {
		return fmt.Errorf("marshaling customer profile: %w", err)
	}

	args := pgx.NamedArgs{
		"shop_id": c.ShopID,
		"id":      c.ID,
		"name":    c.Name,
		"profile": profileJSON,
	}

	if err := s.pool.QueryRow(ctx, queryUpsertCustomer, args).Scan(&c.UpdatedAt); err != nil {
		return fmt.Errorf("upserting customer: %w", err)
	}
	return nil
}

// GetCustomer retrieves a customer of a shop.
func (s *PostgresStore) GetCustomer(ctx context.Context, shopID, id string) (*domain.Customer, error) {
	c := &domain.Customer{}
	var profileJSON []byte

	err := s.pool.QueryRow(ctx, queryGetCustomer, shopID, id).Scan(
		&c.ShopID, &c.ID, &c.Name, &profileJSON, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(profileJSON, &c.Profile); err != nil {
		return nil, fmt.Errorf("unmarshaling customer profile: %w", err)
	}

	return c, nil
}

// UpsertMarketSnapshot stores the market conditions for a shop and day,
// replacing any snapshot already recorded for that day.
func (s *PostgresStore) UpsertMarketSnapshot(ctx context.Context, m *domain.MarketSnapshot) error {
	conditionsJSON, err := json.Marshal(m.Conditions)
	if err != nil {
		return fmt.Errorf("marshaling market conditions: %w", err)
	}

	m.Day = domain.Day(m.Day)
	args := pgx.NamedArgs{
		"shop_id":    m.ShopID,
		"day":        m.Day,
		"weather":    string(m.Weather),
		"conditions": conditionsJSON,
	}

	if err := s.pool.QueryRow(ctx, queryUpsertMarketSnapshot, args).Scan(&m.CreatedAt); err != nil {
		return fmt.Errorf("upserting market snapshot: %w", err)
	}
	return nil
}

// GetMarketSnapshot retrieves the snapshot for a shop on the given day.
func (s *PostgresStore) GetMarketSnapshot(
	ctx context.Context,
	shopID string,
	day time.Time,
) (*domain.MarketSnapshot, error) {
	return s.queryMarketSnapshot(ctx, queryGetMarketSnapshot, shopID, domain.Day(day))
}

// GetLatestMarketSnapshot retrieves the most recent snapshot for a shop.
func (s *PostgresStore) GetLatestMarketSnapshot(
	ctx context.Context,
	shopID string,
) (*domain.MarketSnapshot, error) {
	return s.queryMarketSnapshot(ctx, queryGetLatestMarketSnapshot, shopID)
}

// CreateEstimate inserts a priced estimate, filling in its generated ID and
// timestamps.
func (s *PostgresStore) CreateEstimate(ctx context.Context, e *domain.Estimate) error {
	vehicleJSON, err := json.Marshal(e.Vehicle)
	if err != nil {
		return fmt.Errorf("marshaling vehicle: %w", err)
	}
	paramsJSON, err := json.Marshal(e.Params)
	if err != nil {
		return fmt.Errorf("marshaling params: %w", err)
	}
	breakdownJSON, err := json.Marshal(e.Breakdown)
	if err != nil {
		return fmt.Errorf("marshaling breakdown: %w", err)
	}

	if e.Status == "" {
		e.Status = domain.EstimateDraft
	}

	args := pgx.NamedArgs{
		"shop_id":           e.ShopID,
		"inspection_id":     e.InspectionID,
		"customer_id":       e.CustomerID,
		"service_sku":       e.ServiceSKU,
		"status":            string(e.Status),
		"vehicle":           vehicleJSON,
		"params":            paramsJSON,
		"breakdown":         breakdownJSON,
		"total":             e.Total,
		"divergent":         e.Divergent,
		"validation_errors": e.ValidationErrors,
	}

	if err := s.pool.QueryRow(ctx, queryCreateEstimate, args).Scan(
		&e.ID, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return fmt.Errorf("creating estimate: %w", err)
	}
	return nil
}

// GetEstimate retrieves an estimate by its ID.
func (s *PostgresStore) GetEstimate(ctx context.Context, id string) (*domain.Estimate, error) {
	e := &domain.Estimate{}
	if err := scanEstimate(s.pool.QueryRow(ctx, queryGetEstimate, id), e); err != nil {
		return nil, err
	}
	return e, nil
}

// ListEstimates queries estimates with optional filters, returning results and
// total count.
func (s *PostgresStore) ListEstimates(
	ctx context.Context,
	opts *EstimateQuery,
) ([]domain.Estimate, int, error) {
	if opts == nil {
		opts = &EstimateQuery{}
	}
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting estimates: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying estimates: %w", err)
	}
	defer rows.Close()

	var estimates []domain.Estimate
	for rows.Next() {
		var e domain.Estimate
		if err := scanEstimate(rows, &e); err != nil {
			return nil, 0, fmt.Errorf("scanning estimate: %w", err)
		}
		estimates = append(estimates, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating estimates: %w", err)
	}

	return estimates, total, nil
}

// UpdateEstimateStatus moves an estimate to a new status. It returns
// pgx.ErrNoRows when the estimate does not exist.
func (s *PostgresStore) UpdateEstimateStatus(
	ctx context.Context,
	id string,
	status domain.EstimateStatus,
) error {
	var updatedAt time.Time
	if err := s.pool.QueryRow(ctx, queryUpdateEstimateStatus, id, string(status)).Scan(&updatedAt); err != nil {
		return fmt.Errorf("updating estimate status: %w", err)
	}
	return nil
}

// queryMarketSnapshot is a helper for single-snapshot queries.
func (s *PostgresStore) queryMarketSnapshot(
	ctx context.Context,
	query string,
	args ...any,
) (*domain.MarketSnapshot, error) {
	m := &domain.MarketSnapshot{}
	var conditionsJSON []byte

	err := s.pool.QueryRow(ctx, query, args...).Scan(
		&m.ShopID, &m.Day, &m.Weather, &conditionsJSON, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(conditionsJSON, &m.Conditions); err != nil {
		return nil, fmt.Errorf("unmarshaling market conditions: %w", err)
	}

	return m, nil
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanShop scans a full shop row and decodes its settings.
func scanShop(row scannable, shop *domain.Shop) error {
	var settingsJSON []byte
	if err := row.Scan(
		&shop.ID, &shop.Name, &shop.DailyCapacity, &settingsJSON,
		&shop.CreatedAt, &shop.UpdatedAt,
	); err != nil {
		return err
	}

	if err := json.Unmarshal(settingsJSON, &shop.Settings); err != nil {
		return fmt.Errorf("unmarshaling shop settings: %w", err)
	}
	return nil
}

// scanEstimate scans a full estimate row and decodes its JSONB documents.
func scanEstimate(row scannable, e *domain.Estimate) error {
	var vehicleJSON, paramsJSON, breakdownJSON []byte
	if err := row.Scan(
		&e.ID, &e.ShopID, &e.InspectionID, &e.CustomerID, &e.ServiceSKU, &e.Status,
		&vehicleJSON, &paramsJSON, &breakdownJSON,
		&e.Total, &e.Divergent, &e.ValidationErrors, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return err
	}

	if err := json.Unmarshal(vehicleJSON, &e.Vehicle); err != nil {
		return fmt.Errorf("unmarshaling vehicle: %w", err)
	}
	if err := json.Unmarshal(paramsJSON, &e.Params); err != nil {
		return fmt.Errorf("unmarshaling params: %w", err)
	}
	if err := json.Unmarshal(breakdownJSON, &e.Breakdown); err != nil {
		return fmt.Errorf("unmarshaling breakdown: %w", err)
	}
	return nil
}
