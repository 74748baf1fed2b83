// internal/parcelaacordo/handler.go
package parcelaacordo

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de parcelas de acordo.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// GET /acordos/{id}/parcelas
func (h *Handler) ListByAcordo(w http.ResponseWriter, r *http.Request) {
	acordoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de acordo inválido", http.StatusBadRequest)
		return
	}

	parcelas, err := h.Repo.ListByAcordoID(uint(acordoID))
	if err != nil {
		http.Error(w, "Erro ao buscar parcelas", http.StatusInternalServerError)
		return
	}
	AplicarStatusDerivado(parcelas, time.Now())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(parcelas)
}

// PagamentoDTO é o corpo do PATCH /parcelas-acordo/{pid}/pagamento.
type PagamentoDTO struct {
	DataPagamento time.Time `json:"dataPagamento"`
	Comprovante   string    `json:"comprovante"`
}

// PATCH /parcelas-acordo/{pid}/pagamento
// Transição de mão única para "Pago". Uma parcela paga não volta atrás e
// datas de pagamento futuras são recusadas.
func (h *Handler) MarcarPagamento(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}

	var dto PagamentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.DataPagamento.IsZero() {
		dto.DataPagamento = time.Now()
	}
	if dto.DataPagamento.After(time.Now()) {
		http.Error(w, "Data de pagamento não pode estar no futuro", http.StatusBadRequest)
		return
	}

	parcela, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Parcela não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar parcela", http.StatusInternalServerError)
		return
	}
	if parcela.Status == StatusPago {
		http.Error(w, "Parcela já está paga", http.StatusBadRequest)
		return
	}

	if err := h.Repo.MarcarComoPaga(uint(pid), dto.DataPagamento, dto.Comprovante); err != nil {
		http.Error(w, "Erro ao registrar pagamento da parcela", http.StatusInternalServerError)
		return
	}

	atualizada, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "Erro ao buscar parcela atualizada", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizada)
}
