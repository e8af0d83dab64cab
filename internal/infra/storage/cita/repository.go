package cita

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	"github.com/vetacasa/VetACasa-BookingService/pkg/dbmetrics"
	"github.com/vetacasa/VetACasa-BookingService/pkg/psqlbuilder"
)

var citaColumns = []string{
	"id",
	"slot_id",
	"datos_dueno",
	"location_data",
	"mascotas",
	"estado",
	"finalizada",
	"monto_total",
	"precio_base",
	"precio_base_vet",
	"created_at",
	"updated_at",
}

// Repository persists home-visit appointments.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment. The caller runs it in the same
// transaction as the slot reservation so a failed reservation never
// leaves a dangling appointment.
func (r *Repository) Create(ctx context.Context, c *domain.Cita) (*domain.Cita, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	datosDueno, err := json.Marshal(c.DatosDueno)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal datos_dueno: %v", ErrEncodePayload, err)
	}
	locationData, err := json.Marshal(c.LocationData)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal location_data: %v", ErrEncodePayload, err)
	}
	mascotas, err := json.Marshal(c.Mascotas)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal mascotas: %v", ErrEncodePayload, err)
	}

	query, args, err := psqlbuilder.Insert("citas").
		Columns(
			"id",
			"slot_id",
			"datos_dueno",
			"location_data",
			"mascotas",
			"estado",
			"finalizada",
			"monto_total",
			"precio_base",
			"precio_base_vet",
		).
		Values(
			c.ID,
			c.SlotID,
			datosDueno,
			locationData,
			mascotas,
			c.Estado,
			c.Finalizada,
			c.MontoTotal,
			c.PrecioBase,
			c.PrecioBaseVet,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByID fetches one appointment. Inside a transaction the row is locked
// with FOR UPDATE so finalize's check-and-set is atomic.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Cita, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(citaColumns...).
		From("citas").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	cita, err := scanCita(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCitaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan cita: %v", ErrScanRow, err)
	}

	return cita, nil
}

// List returns appointments matching the filter, newest first. The
// assigned veterinarian lives inside the location_data document.
func (r *Repository) List(ctx context.Context, filter domain.CitaFilter) ([]*domain.Cita, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(citaColumns...).
		From("citas")

	if filter.VeterinarioID != nil {
		selectBuilder = selectBuilder.Where(
			squirrel.Expr("location_data->'veterinario'->>'id' = ?", *filter.VeterinarioID))
	}
	if filter.Finalizada != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"finalizada": *filter.Finalizada})
	}
	if filter.Estado != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"estado": *filter.Estado})
	}

	query, args, err := selectBuilder.
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCitas(rows)
}

// Finalize freezes the computed total and marks the appointment
// finalized. The WHERE clause on finalizada guards the one-way
// transition: a second finalize affects zero rows.
func (r *Repository) Finalize(ctx context.Context, id string, montoTotal float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("citas").
		Set("finalizada", true).
		Set("monto_total", montoTotal).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"finalizada": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Finalize - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Finalize - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Finalize - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAlreadyFinalizada
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCita(row rowScanner) (*domain.Cita, error) {
	var (
		c                                  domain.Cita
		datosDueno, locationData, mascotas []byte
		createdAt, updatedAt               sql.NullTime
	)

	err := row.Scan(
		&c.ID,
		&c.SlotID,
		&datosDueno,
		&locationData,
		&mascotas,
		&c.Estado,
		&c.Finalizada,
		&c.MontoTotal,
		&c.PrecioBase,
		&c.PrecioBaseVet,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(datosDueno, &c.DatosDueno); err != nil {
		return nil, fmt.Errorf("%w: unmarshal datos_dueno: %v", ErrEncodePayload, err)
	}
	if err := json.Unmarshal(locationData, &c.LocationData); err != nil {
		return nil, fmt.Errorf("%w: unmarshal location_data: %v", ErrEncodePayload, err)
	}
	if err := json.Unmarshal(mascotas, &c.Mascotas); err != nil {
		return nil, fmt.Errorf("%w: unmarshal mascotas: %v", ErrEncodePayload, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

func scanCitas(rows *sql.Rows) ([]*domain.Cita, error) {
	citas := make([]*domain.Cita, 0)

	for rows.Next() {
		c, err := scanCita(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanCitas - scan row: %v", ErrScanRow, err)
		}
		citas = append(citas, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCitas - rows error: %v", ErrScanRow, err)
	}

	return citas, nil
}
