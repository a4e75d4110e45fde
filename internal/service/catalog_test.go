package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nailspro/internal/domain"
)

func TestCatalogService_ServicesByCodes(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newFakeServiceRepo(testCatalog()...), zap.NewNop())

	t.Run("preserva ordem e repetições", func(t *testing.T) {
		services, err := svc.ServicesByCodes(ctx, []string{"pedicure_simples", "manicure_simples", "manicure_simples"})
		require.NoError(t, err)

		require.Len(t, services, 3)
		assert.Equal(t, "pedicure_simples", services[0].Code)
		assert.Equal(t, "manicure_simples", services[1].Code)
		assert.Equal(t, "manicure_simples", services[2].Code)
	})

	t.Run("código desconhecido some em silêncio", func(t *testing.T) {
		services, err := svc.ServicesByCodes(ctx, []string{"manicure_simples", "spa_dos_pes"})
		require.NoError(t, err)

		require.Len(t, services, 1)
		assert.Equal(t, "manicure_simples", services[0].Code)
	})

	t.Run("sequência vazia devolve lista vazia", func(t *testing.T) {
		services, err := svc.ServicesByCodes(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, services)
	})
}

func TestCatalogService_TotalPrice(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newFakeServiceRepo(testCatalog()...), zap.NewNop())

	t.Run("soma os preços da tabela", func(t *testing.T) {
		total, err := svc.TotalPrice(ctx, []string{"manicure_simples", "pedicure_simples"})
		require.NoError(t, err)
		assert.Equal(t, 65.0, total)
	})

	t.Run("repetições contam duas vezes", func(t *testing.T) {
		total, err := svc.TotalPrice(ctx, []string{"manicure_simples", "manicure_simples"})
		require.NoError(t, err)
		assert.Equal(t, 60.0, total)
	})

	t.Run("código desconhecido não soma nada", func(t *testing.T) {
		total, err := svc.TotalPrice(ctx, []string{"manicure_simples", "spa_dos_pes"})
		require.NoError(t, err)
		assert.Equal(t, 30.0, total)
	})
}

func TestCatalogService_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newFakeServiceRepo(testCatalog()...), zap.NewNop())

	t.Run("código duplicado é rejeitado", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.CreateServiceDTO{
			Code:        "manicure_simples",
			Name:        "Manicure",
			DurationMin: 40,
			Price:       30,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("código novo é aceito", func(t *testing.T) {
		id, err := svc.Create(ctx, domain.CreateServiceDTO{
			Code:        "spa_dos_pes",
			Name:        "Spa dos pés",
			DurationMin: 50,
			Price:       45,
		})
		require.NoError(t, err)

		created, err := svc.GetByCode(ctx, "spa_dos_pes")
		require.NoError(t, err)
		assert.Equal(t, id, created.ID)
	})
}
