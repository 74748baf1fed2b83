// internal/acordotrabalhista/handler.go
package acordotrabalhista

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/AcasaResidencial/api-financeiro/internal/parcelaacordo"
)

// Handler gerencia as rotas de acordos trabalhistas.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /acordos
// Cria o acordo e TODAS as parcelas do cronograma em uma única transação:
// uma falha parcial nunca deixa acordo sem parcelas nem parcelas órfãs.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CriarAcordoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.NomeReclamante == "" || dto.NomeEmpresa == "" {
		http.Error(w, "Reclamante e empresa são obrigatórios", http.StatusBadRequest)
		return
	}
	if dto.PrimeiroVencimento.IsZero() {
		http.Error(w, "O primeiro vencimento é obrigatório", http.StatusBadRequest)
		return
	}
	if dto.ValorTotal.IsNegative() || dto.ValorTotal.IsZero() {
		http.Error(w, "Valor total do acordo deve ser positivo", http.StatusBadRequest)
		return
	}

	// Gera o cronograma antes de abrir a transação; erros aqui são de
	// validação e não tocam o banco.
	parcelas, err := parcelaacordo.GerarParcelas(
		dto.ValorTotal, dto.QtdParcelas, dto.PrimeiroVencimento, dto.ValoresParcelas,
	)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	acordo := AcordoTrabalhista{
		NomeReclamante:  dto.NomeReclamante,
		NomeEmpresa:     dto.NomeEmpresa,
		NomeAdvogado:    dto.NomeAdvogado,
		ChavePix:        dto.ChavePix,
		NumeroProcesso:  dto.NumeroProcesso,
		VaraTrabalhista: dto.VaraTrabalhista,
		Comarca:         dto.Comarca,
		ValorTotal:      dto.ValorTotal,
		QtdParcelas:     dto.QtdParcelas,
		Observacoes:     dto.Observacoes,
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Falha ao iniciar transação", http.StatusInternalServerError)
		return
	}

	if err := h.Repo.Create(tx, &acordo); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao criar acordo", http.StatusInternalServerError)
		return
	}

	for _, p := range parcelas {
		p.AcordoTrabalhistaID = acordo.ID
	}
	if err := parcelaacordo.NewRepository(tx).CreateInBatch(parcelas); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao criar parcelas do acordo", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	criado, err := h.Repo.FindByID(acordo.ID)
	if err != nil {
		http.Error(w, "Erro ao carregar acordo criado", http.StatusInternalServerError)
		return
	}
	parcelaacordo.AplicarStatusDerivado(criado.Parcelas, time.Now())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(criado)
}

// GET /acordos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	acordos, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "Erro ao buscar acordos", http.StatusInternalServerError)
		return
	}

	hoje := time.Now()
	for i := range acordos {
		parcelaacordo.AplicarStatusDerivado(acordos[i].Parcelas, hoje)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(acordos)
}

// GET /acordos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de acordo inválido", http.StatusBadRequest)
		return
	}

	acordo, err := h.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Acordo não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar acordo", http.StatusInternalServerError)
		return
	}
	parcelaacordo.AplicarStatusDerivado(acordo.Parcelas, time.Now())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(acordo)
}

// DELETE /acordos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de acordo inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteByID(uint(id)); err != nil {
		switch {
		case errors.Is(err, ErrAcordoComParcelasPagas):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "Acordo não encontrado", http.StatusNotFound)
		default:
			http.Error(w, "Erro ao excluir acordo", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /acordos/estatisticas
func (h *Handler) EstatisticasGerais(w http.ResponseWriter, r *http.Request) {
	acordos, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "Erro ao buscar acordos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(CalcularEstatisticas(acordos, time.Now()))
}
