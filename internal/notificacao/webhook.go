// internal/notificacao/webhook.go
package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"
)

// Alerta é o payload repassado ao webhook da ponte de mensagens
// (o processo que entrega avisos por WhatsApp roda à parte e só
// conversa com o sistema por este webhook).
type Alerta struct {
	Mensagem   string `json:"mensagem"`
	Referencia string `json:"referencia"` // ex.: "acordo:12" ou "hospede:7"
}

var clienteHTTP = &http.Client{Timeout: 10 * time.Second}

// EnviarWebhookAlerta posta o alerta na URL configurada em
// NOTIFICACAO_WEBHOOK_URL. Melhor esforço: falhas são apenas logadas.
func EnviarWebhookAlerta(a Alerta) {
	url := os.Getenv("NOTIFICACAO_WEBHOOK_URL")
	if url == "" {
		log.Printf("NOTIFICACAO_WEBHOOK_URL não configurada; alerta descartado: %s", a.Mensagem)
		return
	}

	body, _ := json.Marshal(a)
	resp, err := clienteHTTP.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		log.Printf("Webhook respondeu status %d", resp.StatusCode)
	}
}

// Handler expõe o reenvio manual de alertas.
type Handler struct{}

// NewHandler cria um novo Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// POST /notificar
func (h *Handler) EnviarAlerta(w http.ResponseWriter, r *http.Request) {
	var a Alerta
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if a.Mensagem == "" {
		http.Error(w, "O campo 'mensagem' é obrigatório", http.StatusBadRequest)
		return
	}

	go EnviarWebhookAlerta(a)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_, _ = w.Write([]byte(`{"message":"Alerta encaminhado"}`))
}
