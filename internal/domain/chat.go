package domain

// ChatMessage é uma mensagem do histórico da conversa com o assistente.
// O histórico completo vem do cliente a cada turno; o núcleo não guarda
// estado de sessão.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1,dive"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// BookingPayload é o bloco estruturado que o modelo embute na resposta
// entre as tags <AGENDAMENTO_JSON>. Os nomes dos campos seguem o contrato
// do prompt e nunca chegam ao cliente final.
type BookingPayload struct {
	Confirmed        bool     `json:"confirmado"`
	ServiceCodes     []string `json:"serviceCodes"`
	ClientName       string   `json:"clientName"`
	ClientEmail      string   `json:"clientEmail,omitempty"`
	ClientPhone      string   `json:"clientPhone"`
	ProfessionalName string   `json:"professionalName"`
	Date             string   `json:"date"`
	Time             string   `json:"time"`
}
