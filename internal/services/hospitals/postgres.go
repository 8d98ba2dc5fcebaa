// internal/services/hospitals/postgres.go
package hospitals

import (
	"context"
	"fmt"
	"strings"

	"healthcost-assistant/internal/common/database"
	"healthcost-assistant/internal/common/logger"
	"healthcost-assistant/internal/models"
)

// PostgresStore looks up hospitals from the hospitals table. The SQL
// mirrors the MemoryStore filter semantics exactly.
type PostgresStore struct {
	db  *database.PostgresClient
	log logger.Logger
}

func NewPostgresStore(db *database.PostgresClient, log logger.Logger) *PostgresStore {
	return &PostgresStore{
		db:  db,
		log: log.With(map[string]interface{}{"component": "hospital-store"}),
	}
}

func (s *PostgresStore) Search(ctx context.Context, c Criteria) ([]models.Hospital, error) {
	query := "SELECT name, city, state, type, specialties, beds, contact FROM hospitals"

	var conditions []string
	var args []interface{}
	argID := 1

	if c.City != "" {
		conditions = append(conditions, fmt.Sprintf("city ILIKE '%%' || $%d || '%%'", argID))
		args = append(args, c.City)
		argID++
	}
	if c.Type != "" {
		conditions = append(conditions, fmt.Sprintf("type ILIKE '%%' || $%d || '%%'", argID))
		args = append(args, c.Type)
		argID++
	}
	if c.Disease != "" {
		conditions = append(conditions, fmt.Sprintf("(specialties ILIKE '%%' || $%d || '%%' OR type ILIKE '%%private%%')", argID))
		args = append(args, c.Disease)
		argID++
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"
	if c.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argID)
		args = append(args, c.Limit)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("hospital query failed: %w", err)
	}
	defer rows.Close()

	var out []models.Hospital
	for rows.Next() {
		var h models.Hospital
		if err := rows.Scan(&h.Name, &h.City, &h.State, &h.Type, &h.Specialties, &h.Beds, &h.Contact); err != nil {
			return nil, fmt.Errorf("hospital row scan failed: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("hospital rows iteration failed: %w", err)
	}

	s.log.Debug("Hospital query executed", map[string]interface{}{
		"matches": len(out),
	})
	return out, nil
}
