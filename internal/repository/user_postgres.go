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

type UserRepo struct {
	db DB
}

func NewUserRepository(db DB) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

const userColumns = "id, name, email, phone, password_hash, is_active, created_at, updated_at"

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.PasswordHash,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, dto domain.CreateUserDTO) (uuid.UUID, error) {
	query := `
		INSERT INTO users (id, name, email, phone, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, true, $6, $6)
		RETURNING id
	`

	id := uuid.New()
	now := time.Now()
	err := r.db.QueryRow(ctx, query, id, dto.Name, dto.Email, dto.Phone, dto.Password, now).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("erro ao criar usuário: %w", err)
	}

	return id, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("usuário %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = $1", userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("usuário com email %q: %w", email, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("erro ao buscar usuário por email: %w", err)
	}

	return user, nil
}

func (r *UserRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE phone = $1", userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("usuário com telefone %q: %w", phone, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("erro ao buscar usuário por telefone: %w", err)
	}

	return user, nil
}

// GetFirst devolve a conta mais antiga do painel. O assistente de agenda usa
// essa conta como dona dos agendamentos criados via chat.
func (r *UserRepo) GetFirst(ctx context.Context) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users ORDER BY created_at ASC LIMIT 1", userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("nenhum usuário cadastrado: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("erro ao buscar primeiro usuário: %w", err)
	}

	return user, nil
}

func (r *UserRepo) Update(ctx context.Context, id uuid.UUID, dto domain.UpdateUserDTO) error {
	var updateFields []string
	var args []interface{}

	argCount := 1

	if dto.Name != nil {
		updateFields = append(updateFields, fmt.Sprintf("name = $%d", argCount))
		args = append(args, *dto.Name)
		argCount++
	}

	if dto.Phone != nil {
		updateFields = append(updateFields, fmt.Sprintf("phone = $%d", argCount))
		args = append(args, *dto.Phone)
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
		UPDATE users
		SET %s
		WHERE id = $%d
	`, strings.Join(updateFields, ", "), argCount)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar usuário: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("usuário %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
