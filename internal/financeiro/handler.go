// internal/financeiro/handler.go
package financeiro

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AcasaResidencial/api-financeiro/internal/reajuste"
)

// Handler gerencia as rotas do registro financeiro do hóspede.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

var cem = decimal.NewFromInt(100)

// POST /hospedes/{id}/financeiro
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	hospedeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de hóspede inválido", http.StatusBadRequest)
		return
	}

	var dto RegistroDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := dto.validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Um hóspede possui no máximo um registro financeiro.
	if _, err := h.Repo.FindByHospedeID(uint(hospedeID)); err == nil {
		http.Error(w, "Hóspede já possui registro financeiro", http.StatusConflict)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Erro ao consultar registro financeiro", http.StatusInternalServerError)
		return
	}

	reg := RegistroFinanceiro{HospedeID: uint(hospedeID), Ativo: true}
	dto.aplicar(&reg)

	if err := h.Repo.Create(&reg); err != nil {
		http.Error(w, "Erro ao criar registro financeiro", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(reg)
}

// GET /hospedes/{id}/financeiro
func (h *Handler) BuscarPorHospede(w http.ResponseWriter, r *http.Request) {
	hospedeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de hóspede inválido", http.StatusBadRequest)
		return
	}

	reg, err := h.Repo.FindByHospedeID(uint(hospedeID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Registro financeiro não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar registro financeiro", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(reg)
}

// PUT /hospedes/{id}/financeiro
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	hospedeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de hóspede inválido", http.StatusBadRequest)
		return
	}

	reg, err := h.Repo.FindByHospedeID(uint(hospedeID))
	if err != nil {
		http.Error(w, "Registro financeiro não encontrado", http.StatusNotFound)
		return
	}

	var dto RegistroDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := dto.validar(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// SaldoDevedor, PerdaReceita e flags de inativação não passam pelo DTO.
	dto.aplicar(reg)

	if err := h.Repo.Update(reg); err != nil {
		http.Error(w, "Erro ao atualizar registro financeiro", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(reg)
}

/* ================================ Reajustes ================================ */

// POST /hospedes/{id}/reajustes
// Aceita percentual OU nova mensalidade; o campo ausente é calculado a
// partir do presente. O lançamento no histórico e a atualização da
// mensalidade acontecem na mesma transação.
func (h *Handler) AplicarReajuste(w http.ResponseWriter, r *http.Request) {
	hospedeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de hóspede inválido", http.StatusBadRequest)
		return
	}

	var dto ReajusteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Percentual == nil && dto.NovaMensalidade == nil {
		http.Error(w, "Informe o percentual ou a nova mensalidade", http.StatusBadRequest)
		return
	}

	reg, err := h.Repo.FindByHospedeID(uint(hospedeID))
	if err != nil {
		http.Error(w, "Registro financeiro não encontrado", http.StatusNotFound)
		return
	}

	anterior := reg.Mensalidade
	var nova, percentual decimal.Decimal
	switch {
	case dto.NovaMensalidade != nil:
		nova = *dto.NovaMensalidade
		// Percentual retro-calculado; indefinido quando a mensalidade
		// atual é zero, então fica registrado como zero.
		if !anterior.IsZero() {
			percentual = nova.Sub(anterior).Div(anterior).Mul(cem).Round(4)
		}
	default:
		percentual = *dto.Percentual
		nova = anterior.Mul(cem.Add(percentual)).Div(cem).Round(2)
	}
	if nova.IsNegative() {
		http.Error(w, "Reajuste resultaria em mensalidade negativa", http.StatusBadRequest)
		return
	}

	historico := reajuste.ReajusteFinanceiro{
		HospedeID:           uint(hospedeID),
		DataReajuste:        time.Now(),
		MensalidadeAnterior: anterior,
		NovaMensalidade:     nova,
		Percentual:          percentual,
		Observacoes:         dto.Observacoes,
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Falha ao iniciar transação", http.StatusInternalServerError)
		return
	}

	if err := reajuste.NewRepository(tx).Create(&historico); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao lançar reajuste no histórico", http.StatusInternalServerError)
		return
	}

	reg.Mensalidade = nova
	if err := h.Repo.WithDB(tx).Update(reg); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao atualizar mensalidade", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(historico)
}

// GET /hospedes/{id}/reajustes
func (h *Handler) ListarReajustes(w http.ResponseWriter, r *http.Request) {
	hospedeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de hóspede inválido", http.StatusBadRequest)
		return
	}

	lista, err := reajuste.NewRepository(h.Repo.DB).ListByHospedeID(uint(hospedeID))
	if err != nil {
		http.Error(w, "Erro ao buscar reajustes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lista)
}

/* ================================ Relatórios ================================ */

// GET /relatorios/receita-mensal?ano=2026
func (h *Handler) ReceitaMensal(w http.ResponseWriter, r *http.Request) {
	ano, err := strconv.Atoi(r.URL.Query().Get("ano"))
	if err != nil || ano < 1 {
		http.Error(w, "Parâmetro 'ano' inválido", http.StatusBadRequest)
		return
	}

	registros, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "Erro ao buscar registros financeiros", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ProjetarReceitaAnual(registros, ano))
}
