package advisory

import (
	"fmt"
	"strings"
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ClosingMessage é enviado quando a conversa é encerrada
const ClosingMessage = "Sessão encerrada! Agora você pode solicitar uma recomendação personalizada baseada em nossa conversa."

// replies são as respostas do assessor, na ordem das mensagens do usuário.
// Esgotada a lista, a última se repete.
var replies = []string{
	"Entendo. Que valor você tem disponível para investir agora?",
	"Interessante! Você pretende investir todo o valor de uma vez ou aos poucos?",
	"Perfeito! Já teve alguma experiência com renda fixa ou variável?",
	"Ótimo! Você acompanha o mercado ou prefere não se preocupar com isso?",
	"Muito bem! Com base no que você me contou, posso gerar uma recomendação personalizada. Gostaria de encerrar nossa conversa por agora?",
	"Obrigado pelas informações! Vou processar tudo que conversamos para criar sua recomendação personalizada.",
}

type Message struct {
	Role    string    `json:"type"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"timestamp"`
}

// Greeting é a mensagem de abertura, chamando o usuário pelo nome
func Greeting(name string) string {
	return fmt.Sprintf("Olá, %s! Estou aqui para te ajudar a encontrar os melhores caminhos para investir com segurança. Me conta um pouco: por que você quer investir agora?", name)
}

// Reply devolve a resposta para a n-ésima mensagem do usuário (n >= 1)
func Reply(userTurn int) string {
	i := userTurn - 1
	if i < 0 {
		i = 0
	}
	if i >= len(replies) {
		i = len(replies) - 1
	}
	return replies[i]
}

// Compile junta as falas do usuário com ". "
func Compile(messages []Message) string {
	parts := make([]string, 0, len(messages))
	for _, m := range messages {
		if m.Role == RoleUser {
			parts = append(parts, m.Content)
		}
	}
	return strings.Join(parts, ". ")
}

// Conversation é um chat em andamento, ainda não persistido como sessão
type Conversation struct {
	ID       string    `json:"conversation_id"`
	UserID   int       `json:"user_id"`
	Messages []Message `json:"messages"`
	Ended    bool      `json:"ended"`
}

// Start abre uma conversa com a saudação
func Start(id string, userID int, name string, now time.Time) *Conversation {
	return &Conversation{
		ID:       id,
		UserID:   userID,
		Messages: []Message{{Role: RoleAssistant, Content: Greeting(name), SentAt: now}},
	}
}

// UserTurns conta as mensagens do usuário
func (c *Conversation) UserTurns() int {
	n := 0
	for _, m := range c.Messages {
		if m.Role == RoleUser {
			n++
		}
	}
	return n
}

// Send registra a fala do usuário e a resposta do assessor.
// Mensagens em branco ou em conversa encerrada são recusadas.
func (c *Conversation) Send(content string, now time.Time) (Message, error) {
	if c.Ended {
		return Message{}, ErrConversationEnded
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return Message{}, ErrEmptyMessage
	}
	c.Messages = append(c.Messages, Message{Role: RoleUser, Content: content, SentAt: now})
	reply := Message{Role: RoleAssistant, Content: Reply(c.UserTurns()), SentAt: now}
	c.Messages = append(c.Messages, reply)
	return reply, nil
}

// End encerra a conversa e devolve o texto compilado
func (c *Conversation) End(now time.Time) (string, error) {
	if c.Ended {
		return "", ErrConversationEnded
	}
	c.Ended = true
	compiled := Compile(c.Messages)
	c.Messages = append(c.Messages, Message{Role: RoleAssistant, Content: ClosingMessage, SentAt: now})
	return compiled, nil
}
