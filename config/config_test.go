package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_AgendaPadrao(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "09:00", cfg.Agenda.OpenTime)
	assert.Equal(t, "19:00", cfg.Agenda.CloseTime)
	assert.Equal(t, 30, cfg.Agenda.SlotMinutes)
}

func TestNewConfig_AgendaInvalida(t *testing.T) {
	t.Run("abertura fora do formato HH:MM falha na inicialização", func(t *testing.T) {
		t.Setenv("AGENDA_OPEN_TIME", "9h00")

		_, err := NewConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AGENDA_OPEN_TIME")
	})

	t.Run("fechamento fora do formato HH:MM falha na inicialização", func(t *testing.T) {
		t.Setenv("AGENDA_CLOSE_TIME", "25:99")

		_, err := NewConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AGENDA_CLOSE_TIME")
	})

	t.Run("slot não positivo falha na inicialização", func(t *testing.T) {
		t.Setenv("AGENDA_SLOT_MINUTES", "0")

		_, err := NewConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AGENDA_SLOT_MINUTES")
	})
}
