package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/platform/logger"
	"github.com/starmatchhq/starmatch/internal/store"
)

// RowScanner is the subset of *sql.Row and *sql.Rows the descriptors
// scan from.
type RowScanner interface {
	Scan(dest ...any) error
}

// Descriptor is the explicit per-entity field-to-column mapping that
// drives the generic repository. It replaces runtime introspection: each
// entity declares its table, its scalar columns in a fixed order, and how
// to move values between the entity and those columns. Collection-valued
// fields never appear in a descriptor; join-table repositories own them.
type Descriptor[T domain.Entity] struct {
	Table    string
	Entity   string
	NotFound error

	// Columns lists the scalar non-id columns in binding order.
	Columns []string

	// Values extracts the column values from an entity, matching Columns.
	Values func(entity T) []any

	// Scan builds an entity from a row of id followed by Columns.
	Scan func(row RowScanner) (T, error)

	// ExplicitID marks tables whose ids are caller-assigned (star signs,
	// whose id is the fixed ordinal) rather than generated by the
	// database.
	ExplicitID bool

	// OrderBy is the GetAll ordering clause; defaults to "id".
	OrderBy string
}

// Repo is the single generic relational repository. All per-entity stores
// are a Repo plus, where associations exist, a join repository layered on
// top.
type Repo[T domain.Entity] struct {
	db     store.DBTX
	d      Descriptor[T]
	logger *slog.Logger

	insertSQL string
	updateSQL string
	getSQL    string
	deleteSQL string
	getAllSQL string
}

// NewRepo builds a repository from its descriptor, precomputing the SQL
// statements.
func NewRepo[T domain.Entity](db store.DBTX, d Descriptor[T], log *slog.Logger) *Repo[T] {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	orderBy := d.OrderBy
	if orderBy == "" {
		orderBy = "id"
	}
	selectCols := "id, " + strings.Join(d.Columns, ", ")

	r := &Repo[T]{
		db:     db,
		d:      d,
		logger: log.With(slog.String("component", "postgres_store"), slog.String("entity", d.Entity)),
	}
	r.getSQL = fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", selectCols, d.Table)
	r.deleteSQL = fmt.Sprintf("DELETE FROM %s WHERE id = $1", d.Table)
	r.getAllSQL = fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", selectCols, d.Table, orderBy)
	r.insertSQL = buildInsert(d.Table, d.Columns, d.ExplicitID)
	r.updateSQL = buildUpdate(d.Table, d.Columns)
	return r
}

// buildInsert renders the INSERT statement. Generated-id tables read the
// id back with RETURNING; explicit-id tables bind it as the last
// placeholder.
func buildInsert(table string, columns []string, explicitID bool) string {
	cols := strings.Join(columns, ", ")
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	if explicitID {
		return fmt.Sprintf("INSERT INTO %s (%s, id) VALUES (%s, $%d)",
			table, cols, strings.Join(placeholders, ", "), len(columns)+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		table, cols, strings.Join(placeholders, ", "))
}

// buildUpdate renders the UPDATE statement with the id as the final
// placeholder.
func buildUpdate(table string, columns []string) string {
	sets := make([]string, len(columns))
	for i, col := range columns {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		table, strings.Join(sets, ", "), len(columns)+1)
}

// WithTx returns a repository bound to tx instead of the base connection.
func (r *Repo[T]) WithTx(tx store.DBTX) *Repo[T] {
	clone := *r
	clone.db = tx
	return &clone
}

// Create inserts the base row and assigns the generated id onto the
// entity. For explicit-id tables the entity's id is written as given.
func (r *Repo[T]) Create(ctx context.Context, entity T) error {
	log := logger.FromContextOrDefault(ctx, r.logger)
	args := r.d.Values(entity)

	if r.d.ExplicitID {
		args = append(args, entity.GetID())
		if _, err := r.db.ExecContext(ctx, r.insertSQL, args...); err != nil {
			log.Error("failed to create entity", slog.String("error", err.Error()))
			return mapError(r.d.Entity, "create", err, r.d.NotFound)
		}
	} else {
		var id int
		if err := r.db.QueryRowContext(ctx, r.insertSQL, args...).Scan(&id); err != nil {
			log.Error("failed to create entity", slog.String("error", err.Error()))
			return mapError(r.d.Entity, "create", err, r.d.NotFound)
		}
		entity.SetID(id)
	}

	log.Debug("entity created", slog.Int("id", entity.GetID()))
	return nil
}

// Get returns the row with the given id, or the entity's not-found
// sentinel.
func (r *Repo[T]) Get(ctx context.Context, id int) (T, error) {
	var zero T
	row := r.db.QueryRowContext(ctx, r.getSQL, id)
	entity, err := r.d.Scan(row)
	if err != nil {
		return zero, mapError(r.d.Entity, "get", err, r.d.NotFound)
	}
	return entity, nil
}

// Update overwrites the row matching the entity's id, failing with the
// not-found sentinel when no row matched.
func (r *Repo[T]) Update(ctx context.Context, entity T) error {
	log := logger.FromContextOrDefault(ctx, r.logger)
	args := append(r.d.Values(entity), entity.GetID())

	result, err := r.db.ExecContext(ctx, r.updateSQL, args...)
	if err != nil {
		log.Error("failed to update entity",
			slog.String("error", err.Error()),
			slog.Int("id", entity.GetID()))
		return mapError(r.d.Entity, "update", err, r.d.NotFound)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return mapError(r.d.Entity, "update", err, r.d.NotFound)
	}
	if affected == 0 {
		return r.d.NotFound
	}

	log.Debug("entity updated", slog.Int("id", entity.GetID()))
	return nil
}

// Delete removes the row. Deleting an absent id is not an error.
func (r *Repo[T]) Delete(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, r.logger)
	if _, err := r.db.ExecContext(ctx, r.deleteSQL, id); err != nil {
		log.Error("failed to delete entity",
			slog.String("error", err.Error()),
			slog.Int("id", id))
		return mapError(r.d.Entity, "delete", err, r.d.NotFound)
	}
	log.Debug("entity deleted", slog.Int("id", id))
	return nil
}

// GetAll returns every row in the descriptor's order.
func (r *Repo[T]) GetAll(ctx context.Context) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, r.getAllSQL)
	if err != nil {
		return nil, mapError(r.d.Entity, "get all", err, r.d.NotFound)
	}
	defer func() { _ = rows.Close() }()

	var all []T
	for rows.Next() {
		entity, err := r.d.Scan(rows)
		if err != nil {
			return nil, mapError(r.d.Entity, "get all", err, r.d.NotFound)
		}
		all = append(all, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(r.d.Entity, "get all", err, r.d.NotFound)
	}
	return all, nil
}
