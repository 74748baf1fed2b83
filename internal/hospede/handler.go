// internal/hospede/handler.go
package hospede

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/AcasaResidencial/api-financeiro/internal/financeiro"
)

// Handler gerencia as rotas de hóspedes.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /hospedes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var novo Hospede
	if err := json.NewDecoder(r.Body).Decode(&novo); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if novo.Nome == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}
	if novo.Status == "" {
		novo.Status = StatusAtivo
	}

	if err := h.Repo.Create(&novo); err != nil {
		http.Error(w, "Erro ao criar hóspede", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(novo)
}

// GET /hospedes?status=Ativo
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repo.ListAll(r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, "Erro ao buscar hóspedes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lista)
}

// GET /hospedes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de hóspede inválido", http.StatusBadRequest)
		return
	}

	hosp, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Hóspede não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(hosp)
}

// PUT /hospedes/{id}
// Quando o status sai de "Ativo", o registro financeiro do hóspede é
// inativado na mesma transação (congela a perda de receita).
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de hóspede inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Hóspede não encontrado", http.StatusNotFound)
		return
	}

	var payload Hospede
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	saiuDeAtivo := existente.Status == StatusAtivo && payload.Status != StatusAtivo && payload.Status != ""

	existente.Nome = payload.Nome
	existente.CPF = payload.CPF
	existente.Quarto = payload.Quarto
	existente.DataAdmissao = payload.DataAdmissao
	existente.DataSaida = payload.DataSaida
	existente.NomeResponsavel = payload.NomeResponsavel
	existente.TelefoneResponsavel = payload.TelefoneResponsavel
	existente.Observacoes = payload.Observacoes
	if payload.Status != "" {
		existente.Status = payload.Status
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Falha ao iniciar transação", http.StatusInternalServerError)
		return
	}

	if err := h.Repo.Update(tx, existente); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao atualizar hóspede", http.StatusInternalServerError)
		return
	}

	if saiuDeAtivo {
		finRepo := financeiro.NewRepository(tx)
		// Hóspede sem registro financeiro não é erro na transição de status.
		if err := finRepo.Inativar(nil, uint(id), time.Now()); err != nil &&
			!errors.Is(err, gorm.ErrRecordNotFound) {
			_ = tx.Rollback()
			http.Error(w, "Erro ao inativar registro financeiro", http.StatusInternalServerError)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DELETE /hospedes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de hóspede inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Hóspede não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao deletar hóspede", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
