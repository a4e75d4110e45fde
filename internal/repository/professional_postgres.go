package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"nailspro/internal/domain"
)

type ProfessionalRepo struct {
	db DB
}

func NewProfessionalRepository(db DB) *ProfessionalRepo {
	return &ProfessionalRepo{
		db: db,
	}
}

const professionalColumns = "id, name, specialties, COALESCE(photo_url, ''), created_at, updated_at"

func scanProfessional(row pgx.Row) (*domain.Professional, error) {
	var p domain.Professional
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Specialties,
		&p.PhotoURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfessionalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error) {
	query := fmt.Sprintf("SELECT %s FROM professionals WHERE id = $1", professionalColumns)

	professional, err := scanProfessional(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("profissional %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("erro ao buscar profissional: %w", err)
	}

	return professional, nil
}

// GetByName faz busca por nome exato. A resolução vinda do assistente depende
// disso: sem correspondência exata não há agendamento.
func (r *ProfessionalRepo) GetByName(ctx context.Context, name string) (*domain.Professional, error) {
	query := fmt.Sprintf("SELECT %s FROM professionals WHERE name = $1", professionalColumns)

	professional, err := scanProfessional(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("profissional %q: %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("erro ao buscar profissional por nome: %w", err)
	}

	return professional, nil
}

func (r *ProfessionalRepo) List(ctx context.Context) ([]domain.Professional, error) {
	query := fmt.Sprintf("SELECT %s FROM professionals ORDER BY name", professionalColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar profissionais: %w", err)
	}
	defer rows.Close()

	professionals := make([]domain.Professional, 0)
	for rows.Next() {
		professional, err := scanProfessional(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha de profissional: %w", err)
		}
		professionals = append(professionals, *professional)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer profissionais: %w", err)
	}

	return professionals, nil
}

func (r *ProfessionalRepo) UpdatePhoto(ctx context.Context, id uuid.UUID, photoURL string) error {
	query := `
		UPDATE professionals
		SET photo_url = NULLIF($1, ''), updated_at = $2
		WHERE id = $3
	`

	tag, err := r.db.Exec(ctx, query, photoURL, time.Now(), id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar foto da profissional: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profissional %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
