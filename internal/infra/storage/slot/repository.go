package slot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	"github.com/vetacasa/VetACasa-BookingService/pkg/dbmetrics"
	"github.com/vetacasa/VetACasa-BookingService/pkg/psqlbuilder"
	"github.com/vetacasa/VetACasa-BookingService/pkg/types"
)

var slotColumns = []string{
	"id",
	"fecha",
	"hora",
	"veterinario_id",
	"veterinario_nombre",
	"comunas",
	"comuna_ids",
	"disponible",
	"created_at",
	"updated_at",
}

// Repository persists availability slots.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch inserts every generated slot in a single statement. The
// caller wraps it in the same transaction as the overlap check so either
// all records persist or none do.
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.TimeSlot) (int, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("time_slots").
		Columns(
			"id",
			"fecha",
			"hora",
			"veterinario_id",
			"veterinario_nombre",
			"comunas",
			"comuna_ids",
			"disponible",
		)

	for _, s := range slots {
		comunas, err := json.Marshal(s.Comunas)
		if err != nil {
			return 0, fmt.Errorf("%w: CreateBatch - marshal comunas: %v", ErrEncodeComunas, err)
		}

		insert = insert.Values(
			s.ID,
			s.Fecha,
			s.Hora,
			s.Veterinario.ID,
			s.Veterinario.Nombre,
			comunas,
			pq.Array(s.ComunaIDs),
			s.Disponible,
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - get rows affected: %v", ErrExecQuery, err)
	}

	return int(inserted), nil
}

// CountByVeterinarioInRange counts existing slots for a veterinarian with
// fecha inside [start, end]. Used as the duplicate-batch guard.
func (r *Repository) CountByVeterinarioInRange(ctx context.Context, veterinarioID string, start, end types.DateString) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("time_slots").
		Where(squirrel.Eq{"veterinario_id": veterinarioID}).
		Where(squirrel.GtOrEq{"fecha": start}).
		Where(squirrel.LtOrEq{"fecha": end}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByVeterinarioInRange - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByVeterinarioInRange - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetByID fetches one slot. Inside a transaction the row is locked with
// FOR UPDATE, which is what makes the reservation a true test-and-set.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// GetByIDs fetches the slots whose ids are in the given set.
func (r *Repository) GetByIDs(ctx context.Context, ids []string) ([]*domain.TimeSlot, error) {
	if len(ids) == 0 {
		return []*domain.TimeSlot{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("fecha ASC", "hora ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// List returns slots matching the filter, ordered by fecha then hora.
// Comuna filtering uses set intersection: a slot matches when its batch
// contains any of the requested comuna ids.
func (r *Repository) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("time_slots")

	if filter.VeterinarioID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"veterinario_id": *filter.VeterinarioID})
	}
	if len(filter.ComunaIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Expr("comuna_ids && ?", pq.Array(filter.ComunaIDs)))
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"fecha": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"fecha": *filter.EndDate})
	}
	if filter.Disponible != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"disponible": *filter.Disponible})
	}

	query, args, err := selectBuilder.
		OrderBy("fecha ASC", "hora ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// Reserve flips an available slot to unavailable. The WHERE clause on
// disponible makes the update a guarded test-and-set: a concurrent caller
// that lost the race affects zero rows and gets ErrSlotNotAvailable.
func (r *Repository) Reserve(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("disponible", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"disponible": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reserve - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reserve - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reserve - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotAvailable
	}

	return nil
}

// SetDisponibleByKey flips disponible on every record sharing the logical
// (veterinario, fecha, hora) key. One logical slot may span several
// records across generation batches; availability must stay consistent
// across all of them.
func (r *Repository) SetDisponibleByKey(ctx context.Context, key domain.SlotKey, disponible bool) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("disponible", disponible).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"veterinario_id": key.VeterinarioID}).
		Where(squirrel.Eq{"fecha": key.Fecha}).
		Where(squirrel.Eq{"hora": key.Hora}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SetDisponibleByKey - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: SetDisponibleByKey - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: SetDisponibleByKey - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// UpdateComunas replaces the comuna batch (and its flattened projection)
// of one slot record. Availability is intentionally left untouched.
func (r *Repository) UpdateComunas(ctx context.Context, id string, comunas []domain.SlotComuna) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	encoded, err := json.Marshal(comunas)
	if err != nil {
		return fmt.Errorf("%w: UpdateComunas - marshal comunas: %v", ErrEncodeComunas, err)
	}

	comunaIDs := make([]string, len(comunas))
	for i, c := range comunas {
		comunaIDs[i] = c.ID
	}

	query, args, err := psqlbuilder.Update("time_slots").
		Set("comunas", encoded).
		Set("comuna_ids", pq.Array(comunaIDs)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateComunas - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateComunas - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateComunas - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// Delete removes a slot record. Admin escape hatch; slots are normally
// never deleted.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.TimeSlot, error) {
	var (
		s                    domain.TimeSlot
		comunas              []byte
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&s.ID,
		&s.Fecha,
		&s.Hora,
		&s.Veterinario.ID,
		&s.Veterinario.Nombre,
		&comunas,
		pq.Array(&s.ComunaIDs),
		&s.Disponible,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(comunas, &s.Comunas); err != nil {
		return nil, fmt.Errorf("%w: unmarshal comunas: %v", ErrEncodeComunas, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

func scanSlots(rows *sql.Rows) ([]*domain.TimeSlot, error) {
	slots := make([]*domain.TimeSlot, 0)

	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
