// internal/auth/handler.go
package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/AcasaResidencial/api-financeiro/internal/utils"
)

// Handler gerencia login e cadastro de usuários administrativos.
type Handler struct {
	DB *gorm.DB
}

// NewHandler cria um novo Handler.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	var usuario Usuario
	if err := h.DB.Where("email = ?", req.Email).First(&usuario).Error; err != nil {
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}
	if !utils.VerificarSenha(usuario.Senha, req.Senha) {
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}

	token, err := GerarToken(usuario.ID, usuario.Admin)
	if err != nil {
		http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"token":   token,
		"usuario": usuario,
	})
}

// POST /usuarios (somente admin)
// Se a senha não vier no corpo, uma senha provisória é gerada e devolvida
// na resposta para ser repassada ao novo usuário.
func (h *Handler) CriarUsuario(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nome  string `json:"nome"`
		Email string `json:"email"`
		Senha string `json:"senha"`
		Admin bool   `json:"admin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.Nome == "" || req.Email == "" {
		http.Error(w, "Nome e e-mail são obrigatórios", http.StatusBadRequest)
		return
	}

	var senhaProvisoria string
	if req.Senha == "" {
		var err error
		senhaProvisoria, err = utils.GerarSenhaProvisoria()
		if err != nil {
			http.Error(w, "Erro ao gerar senha provisória", http.StatusInternalServerError)
			return
		}
		req.Senha = senhaProvisoria
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "Erro ao processar senha", http.StatusInternalServerError)
		return
	}

	usuario := Usuario{Nome: req.Nome, Email: req.Email, Senha: hash, Admin: req.Admin}
	if err := h.DB.Create(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "E-mail já cadastrado", http.StatusConflict)
			return
		}
		http.Error(w, "Erro ao criar usuário", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{"usuario": usuario}
	if senhaProvisoria != "" {
		resp["senhaProvisoria"] = senhaProvisoria
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(resp)
}
