package domain

import "errors"

// Erros sentinela do núcleo. As camadas de serviço sempre traduzem falhas de
// repositório/rede para um desses tipos antes de devolvê-las ao transporte.
var (
	ErrValidation = errors.New("dados inválidos")
	ErrNotFound   = errors.New("registro não encontrado")
	ErrConflict   = errors.New("já existe um agendamento para esse horário/profissional")
	ErrUpstream   = errors.New("erro ao contactar serviço externo")
)
