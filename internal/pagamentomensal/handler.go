// internal/pagamentomensal/handler.go
package pagamentomensal

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/AcasaResidencial/api-financeiro/internal/competencia"
)

// Handler gerencia as rotas de pagamentos mensais.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// RegistrarPagamentoDTO é o corpo do POST /hospedes/{id}/pagamentos.
type RegistrarPagamentoDTO struct {
	Competencia   string           `json:"competencia"` // "AAAA-MM"
	Pago          bool             `json:"pago"`
	ValorEsperado decimal.Decimal  `json:"valorEsperado"`
	ValorPago     *decimal.Decimal `json:"valorPago"` // ausente: assume esperado se pago, senão zero
	DataPagamento *time.Time       `json:"dataPagamento"`
	Observacoes   string           `json:"observacoes"`
}

// POST /hospedes/{id}/pagamentos
// Upsert por (hóspede, competência). O recálculo do saldo devedor roda na
// mesma transação do lançamento, para que dois lançamentos concorrentes do
// mesmo hóspede nunca deixem um total defasado.
func (h *Handler) Registrar(w http.ResponseWriter, r *http.Request) {
	hospedeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de hóspede inválido", http.StatusBadRequest)
		return
	}

	var dto RegistrarPagamentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	comp, err := competencia.Parse(dto.Competencia)
	if err != nil {
		http.Error(w, "Competência inválida; use o formato AAAA-MM", http.StatusBadRequest)
		return
	}
	if dto.ValorEsperado.IsNegative() {
		http.Error(w, "Valor esperado não pode ser negativo", http.StatusBadRequest)
		return
	}

	valorPago := decimal.Zero
	switch {
	case dto.ValorPago != nil:
		valorPago = *dto.ValorPago
	case dto.Pago:
		valorPago = dto.ValorEsperado
	}

	// Persiste a forma canônica devolvida pelo Parse, nunca a string crua
	// do chamador: a chave de upsert é única por grafia.
	pagamento := PagamentoMensal{
		HospedeID:       uint(hospedeID),
		Competencia:     comp.String(),
		ValorEsperado:   dto.ValorEsperado,
		ValorPago:       valorPago,
		MensalidadePaga: dto.Pago,
		DataPagamento:   dto.DataPagamento,
		Observacoes:     dto.Observacoes,
	}
	pagamento.CalcularDiferenca()

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Falha ao iniciar transação", http.StatusInternalServerError)
		return
	}

	txRepo := h.Repo.WithDB(tx)
	if err := txRepo.Upsert(&pagamento); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao registrar pagamento", http.StatusInternalServerError)
		return
	}

	// Recalcula sempre, não só quando há diferença: corrigir um lançamento
	// divergente para o valor certo também precisa refletir no saldo.
	if err := txRepo.RecalcularSaldoDevedor(uint(hospedeID)); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao recalcular saldo devedor", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(pagamento)
}

// GET /hospedes/{id}/pagamentos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	hospedeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de hóspede inválido", http.StatusBadRequest)
		return
	}

	lista, err := h.Repo.ListByHospedeID(uint(hospedeID))
	if err != nil {
		http.Error(w, "Erro ao buscar pagamentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lista)
}
