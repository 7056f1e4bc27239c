package record

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type (
	// Repository executes generic SQL against dynamically named tables.
	// Table and column identifiers are interpolated into the statement
	// text because standard placeholders cannot carry identifiers. All
	// identifiers MUST have been validated by the service before any
	// call lands here; values are always parameterized.
	Repository interface {
		ListPage(ctx context.Context, tableName string, limit int, offset int) ([]Record, int64, error)
		Exists(ctx context.Context, tableName string, recordId string) (bool, error)
		Insert(ctx context.Context, tableName string, payload map[string]any, columns []string) (Record, error)
		Update(ctx context.Context, tableName string, recordId string, payload map[string]any, columns []string) (Record, error)
		Delete(ctx context.Context, tableName string, recordId string) (bool, error)
	}

	recordRepository struct {
		db *gorm.DB
	}
)

func CreateRepository(db *gorm.DB) Repository {
	return &recordRepository{
		db: db,
	}
}

// ListPage runs the count and the fetch inside one transaction so the
// total and the returned page come from a single snapshot.
func (r *recordRepository) ListPage(ctx context.Context, tableName string, limit int, offset int) ([]Record, int64, error) {
	var (
		// Scan destinations must be plain maps; gorm does not treat
		// named map types as map destinations.
		rows  []map[string]any
		total int64
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, quoteIdentifier(tableName))
		if err := tx.Raw(countQuery).Scan(&total).Error; err != nil {
			return err
		}

		fetchQuery := fmt.Sprintf(
			`SELECT * FROM %s ORDER BY created_at DESC LIMIT ? OFFSET ?`,
			quoteIdentifier(tableName),
		)
		return tx.Raw(fetchQuery, limit, offset).Scan(&rows).Error
	})
	if err != nil {
		return nil, 0, err
	}

	records := make([]Record, len(rows))
	for i, row := range rows {
		records[i] = row
	}

	return records, total, nil
}

func (r *recordRepository) Exists(ctx context.Context, tableName string, recordId string) (bool, error) {
	var count int64
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE id = ?`, quoteIdentifier(tableName))

	if err := r.db.WithContext(ctx).Raw(query, recordId).Scan(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *recordRepository) Insert(ctx context.Context, tableName string, payload map[string]any, columns []string) (Record, error) {
	now := time.Now().UTC()

	quoted := make([]string, 0, len(columns)+2)
	placeholders := make([]string, 0, len(columns)+2)
	values := make([]any, 0, len(columns)+2)

	for _, column := range columns {
		quoted = append(quoted, quoteIdentifier(column))
		placeholders = append(placeholders, "?")
		values = append(values, payload[column])
	}
	quoted = append(quoted, `created_at`, `updated_at`)
	placeholders = append(placeholders, "?", "?")
	values = append(values, now, now)

	statement := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s) RETURNING *`,
		quoteIdentifier(tableName),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)

	var row map[string]any
	if err := r.db.WithContext(ctx).Raw(statement, values...).Scan(&row).Error; err != nil {
		return nil, err
	}

	return Record(row), nil
}

func (r *recordRepository) Update(ctx context.Context, tableName string, recordId string, payload map[string]any, columns []string) (Record, error) {
	assignments := make([]string, 0, len(columns)+1)
	values := make([]any, 0, len(columns)+2)

	for _, column := range columns {
		assignments = append(assignments, fmt.Sprintf("%s = ?", quoteIdentifier(column)))
		values = append(values, payload[column])
	}
	assignments = append(assignments, "updated_at = ?")
	values = append(values, time.Now().UTC(), recordId)

	statement := fmt.Sprintf(
		`UPDATE %s SET %s WHERE id = ?`,
		quoteIdentifier(tableName),
		strings.Join(assignments, ", "),
	)

	result := r.db.WithContext(ctx).Exec(statement, values...)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var row map[string]any
	fetchQuery := fmt.Sprintf(`SELECT * FROM %s WHERE id = ?`, quoteIdentifier(tableName))
	if err := r.db.WithContext(ctx).Raw(fetchQuery, recordId).Scan(&row).Error; err != nil {
		return nil, err
	}

	return Record(row), nil
}

func (r *recordRepository) Delete(ctx context.Context, tableName string, recordId string) (bool, error) {
	statement := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, quoteIdentifier(tableName))

	result := r.db.WithContext(ctx).Exec(statement, recordId)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func quoteIdentifier(name string) string {
	return `"` + name + `"`
}
