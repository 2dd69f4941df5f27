package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Shop queries.
const (
	queryCreateShop = `
		INSERT INTO shops (name, daily_capacity, settings)
		VALUES (@name, @daily_capacity, @settings)
		RETURNING id, created_at, updated_at`

	queryGetShop = `
		SELECT id, name, daily_capacity, settings, created_at, updated_at
		FROM shops
		WHERE id = $1`

	queryListShops = `
		SELECT id, name, daily_capacity, settings, created_at, updated_at
		FROM shops
		ORDER BY name ASC, id ASC`

	queryUpdateShopSettings = `
		UPDATE shops SET settings = $2, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
)

// Customer queries.
const (
	queryUpsertCustomer = `
		INSERT INTO customers (shop_id, id, name, profile, updated_at)
		VALUES (@shop_id, @id, @name, @profile, now())
		ON CONFLICT (shop_id, id) DO UPDATE SET
			name = EXCLUDED.name,
			profile = EXCLUDED.profile,
			updated_at = now()
		RETURNING updated_at`

	queryGetCustomer = `
		SELECT shop_id, id, name, profile, updated_at
		FROM customers
		WHERE shop_id = $1 AND id = $2`
)

// Market snapshot queries.
const (
	queryUpsertMarketSnapshot = `
		INSERT INTO market_snapshots (shop_id, day, weather, conditions)
		VALUES (@shop_id, @day, @weather, @conditions)
		ON CONFLICT (shop_id, day) DO UPDATE SET
			weather = EXCLUDED.weather,
			conditions = EXCLUDED.conditions
		RETURNING created_at`

	queryGetMarketSnapshot = `
		SELECT shop_id, day, weather, conditions, created_at
		FROM market_snapshots
		WHERE shop_id = $1 AND day = $2`

	queryGetLatestMarketSnapshot = `
		SELECT shop_id, day, weather, conditions, created_at
		FROM market_snapshots
		WHERE shop_id = $1
		ORDER BY day DESC
		LIMIT 1`
)

// Estimate queries.
const (
	estimateColumns = `id, shop_id, inspection_id, COALESCE(customer_id, ''), service_sku, status,
	vehicle, params, breakdown, total, divergent, validation_errors, created_at, updated_at`

	queryCreateEstimate = `
		INSERT INTO estimates (
			shop_id, inspection_id, customer_id, service_sku, status,
			vehicle, params, breakdown, total, divergent, validation_errors
		) VALUES (
			@shop_id, @inspection_id, NULLIF(@customer_id, ''), @service_sku, @status,
			@vehicle, @params, @breakdown, @total, @divergent, @validation_errors
		)
		RETURNING id, created_at, updated_at`

	queryGetEstimate = `SELECT ` + estimateColumns + `
		FROM estimates
		WHERE id = $1`

	queryUpdateEstimateStatus = `
		UPDATE estimates SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
)
