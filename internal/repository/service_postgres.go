package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"nailspro/internal/domain"
)

type ServiceRepo struct {
	db DB
}

func NewServiceRepository(db DB) *ServiceRepo {
	return &ServiceRepo{
		db: db,
	}
}

const serviceColumns = "id, code, name, duration_min, price, created_at, updated_at"

func scanService(row pgx.Row) (*domain.Service, error) {
	var s domain.Service
	err := row.Scan(
		&s.ID,
		&s.Code,
		&s.Name,
		&s.DurationMin,
		&s.Price,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepo) Create(ctx context.Context, dto domain.CreateServiceDTO) (uuid.UUID, error) {
	query := `
		INSERT INTO services (id, code, name, duration_min, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id
	`

	id := uuid.New()
	now := time.Now()
	err := r.db.QueryRow(ctx, query, id, dto.Code, dto.Name, dto.DurationMin, dto.Price, now).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("erro ao criar serviço: %w", err)
	}

	return id, nil
}

func (r *ServiceRepo) Update(ctx context.Context, id uuid.UUID, dto domain.UpdateServiceDTO) error {
	var updateFields []string
	var args []interface{}

	argCount := 1

	if dto.Name != nil {
		updateFields = append(updateFields, fmt.Sprintf("name = $%d", argCount))
		args = append(args, *dto.Name)
		argCount++
	}

	if dto.DurationMin != nil {
		updateFields = append(updateFields, fmt.Sprintf("duration_min = $%d", argCount))
		args = append(args, *dto.DurationMin)
		argCount++
	}

	if dto.Price != nil {
		updateFields = append(updateFields, fmt.Sprintf("price = $%d", argCount))
		args = append(args, *dto.Price)
		argCount++
	}

	if len(updateFields) == 0 {
		return nil
	}

	updateFields = append(updateFields, fmt.Sprintf("updated_at = $%d", argCount))
	args = append(args, time.Now())
	argCount++

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE services
		SET %s
		WHERE id = $%d
	`, strings.Join(updateFields, ", "), argCount)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar serviço: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("serviço %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *ServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	query := fmt.Sprintf("SELECT %s FROM services WHERE id = $1", serviceColumns)

	service, err := scanService(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("serviço %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("erro ao buscar serviço: %w", err)
	}

	return service, nil
}

func (r *ServiceRepo) GetByCode(ctx context.Context, code string) (*domain.Service, error) {
	query := fmt.Sprintf("SELECT %s FROM services WHERE code = $1", serviceColumns)

	service, err := scanService(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("serviço com código %q: %w", code, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("erro ao buscar serviço por código: %w", err)
	}

	return service, nil
}

func (r *ServiceRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Service, error) {
	if len(ids) == 0 {
		return []domain.Service{}, nil
	}

	query := fmt.Sprintf("SELECT %s FROM services WHERE id = ANY($1) ORDER BY name", serviceColumns)

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar serviços: %w", err)
	}
	defer rows.Close()

	return collectServices(rows)
}

func (r *ServiceRepo) List(ctx context.Context) ([]domain.Service, error) {
	query := fmt.Sprintf("SELECT %s FROM services ORDER BY name", serviceColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar serviços: %w", err)
	}
	defer rows.Close()

	return collectServices(rows)
}

func collectServices(rows pgx.Rows) ([]domain.Service, error) {
	services := make([]domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha de serviço: %w", err)
		}
		services = append(services, *service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer serviços: %w", err)
	}

	return services, nil
}
