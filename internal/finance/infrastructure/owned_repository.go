package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// EntityMapper describes how an owner-scoped entity maps onto its table.
// Every table is expected to carry id and user_id columns plus created_at
// and updated_at timestamps maintained by the repository.
type EntityMapper[T any] struct {
	Table         string
	Columns       []string // full select list
	ScanRow       func(s rowScanner) (T, error)
	InsertColumns []string
	InsertValues  func(entity *T) []any
	UpdateColumns []string // columns written on update, updated_at excluded
	UpdateValues  func(entity *T) []any
	OrderBy       string // optional, e.g. "created_at DESC"
}

// OwnedRepository implements the owner-scoped persistence pattern shared by
// transactions, categories and settings: every read and write is filtered by
// the owning user id, so one user can never touch another user's rows.
type OwnedRepository[T any] struct {
	db     *sql.DB
	mapper EntityMapper[T]
}

func NewOwnedRepository[T any](db *sql.DB, mapper EntityMapper[T]) *OwnedRepository[T] {
	return &OwnedRepository[T]{db: db, mapper: mapper}
}

func (r *OwnedRepository[T]) selectList() string {
	return strings.Join(r.mapper.Columns, ", ")
}

func placeholders(n, start int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(parts, ", ")
}

func setClause(columns []string, start int) string {
	parts := make([]string, len(columns))
	for i, column := range columns {
		parts[i] = fmt.Sprintf("%s = $%d", column, start+i)
	}
	return strings.Join(parts, ", ")
}

// Create inserts the entity and scans the stored row back into it, so the
// caller sees database-assigned timestamps.
func (r *OwnedRepository[T]) Create(entity *T) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.mapper.Table,
		strings.Join(r.mapper.InsertColumns, ", "),
		placeholders(len(r.mapper.InsertColumns), 1),
		r.selectList(),
	)
	stored, err := r.mapper.ScanRow(r.db.QueryRow(query, r.mapper.InsertValues(entity)...))
	if err != nil {
		return fmt.Errorf("could not create %s row: %v", r.mapper.Table, err)
	}
	*entity = stored
	return nil
}

func (r *OwnedRepository[T]) FindAllByOwner(ownerID string) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE user_id = $1", r.selectList(), r.mapper.Table)
	if r.mapper.OrderBy != "" {
		query += " ORDER BY " + r.mapper.OrderBy
	}

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entities []T
	for rows.Next() {
		entity, err := r.mapper.ScanRow(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, rows.Err()
}

func (r *OwnedRepository[T]) FindOneByOwner(id, ownerID string) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1 AND user_id = $2", r.selectList(), r.mapper.Table)
	entity, err := r.mapper.ScanRow(r.db.QueryRow(query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// UpdateByOwner writes the entity's updatable columns and refreshes
// updated_at. When no row matches, resolveMissing distinguishes a row that
// does not exist from one owned by another user.
func (r *OwnedRepository[T]) UpdateByOwner(entity *T, id, ownerID string) error {
	args := append(r.mapper.UpdateValues(entity), id, ownerID)
	query := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = NOW() WHERE id = $%d AND user_id = $%d RETURNING %s",
		r.mapper.Table,
		setClause(r.mapper.UpdateColumns, 1),
		len(r.mapper.UpdateColumns)+1,
		len(r.mapper.UpdateColumns)+2,
		r.selectList(),
	)
	stored, err := r.mapper.ScanRow(r.db.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r.resolveMissing(id, ownerID)
		}
		return err
	}
	*entity = stored
	return nil
}

func (r *OwnedRepository[T]) RemoveByOwner(id, ownerID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND user_id = $2", r.mapper.Table)
	result, err := r.db.Exec(query, id, ownerID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return r.resolveMissing(id, ownerID)
	}
	return nil
}

// resolveMissing runs the explicit secondary ownership check: the scoped
// query already excluded other users' rows, so this only decides whether the
// caller gets NotFound or Forbidden.
func (r *OwnedRepository[T]) resolveMissing(id, ownerID string) error {
	var rowOwner string
	query := fmt.Sprintf("SELECT user_id FROM %s WHERE id = $1", r.mapper.Table)
	err := r.db.QueryRow(query, id).Scan(&rowOwner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return financeErrors.ErrNotFound
		}
		return err
	}
	if rowOwner != ownerID {
		return financeErrors.ErrForbidden
	}
	return financeErrors.ErrNotFound
}
