package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated = "created_at"
	orderByUpdated = "updated_at"
	orderByTotal   = "total"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated: "created_at DESC",
	orderByUpdated: "updated_at DESC",
	orderByTotal:   "total DESC",
}

const defaultOrderBy = "created_at DESC"

const baseEstimatesSelect = "SELECT " + estimateColumns + "\nFROM estimates"

const countEstimatesSelect = "SELECT COUNT(*) FROM estimates"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an estimate
// query. It returns two SQL strings (one for the data query, one for the count
// query) and the positional parameters.
func (q *EstimateQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.ShopID != nil {
		conditions = append(conditions, fmt.Sprintf("shop_id = $%d", paramIdx))
		args = append(args, *q.ShopID)
		paramIdx++
	}

	if q.InspectionID != nil {
		conditions = append(conditions, fmt.Sprintf("inspection_id = $%d", paramIdx))
		args = append(args, *q.InspectionID)
		paramIdx++
	}

	if q.CustomerID != nil {
		conditions = append(conditions, fmt.Sprintf("customer_id = $%d", paramIdx))
		args = append(args, *q.CustomerID)
		paramIdx++
	}

	if q.MinTotal != nil {
		conditions = append(conditions, fmt.Sprintf("total >= $%d", paramIdx))
		args = append(args, *q.MinTotal)
		paramIdx++
	}

	if q.MaxTotal != nil {
		conditions = append(conditions, fmt.Sprintf("total <= $%d", paramIdx))
		args = append(args, *q.MaxTotal)
		paramIdx++
	}

	if q.Divergent != nil {
		conditions = append(conditions, fmt.Sprintf("divergent = $%d", paramIdx))
		args = append(args, *q.Divergent)
		paramIdx++
	}

	if len(q.Statuses) > 0 {
		placeholders := make([]string, len(q.Statuses))
		for i, s := range q.Statuses {
			placeholders[i] = fmt.Sprintf("$%d", paramIdx)
			args = append(args, s)
			paramIdx++
		}
		conditions = append(conditions, fmt.Sprintf(
			"status IN (%s)", strings.Join(placeholders, ", "),
		))
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseEstimatesSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countEstimatesSelect + whereClause

	return dataSQL, countSQL, args
}
