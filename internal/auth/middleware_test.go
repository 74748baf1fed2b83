package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareAutenticacao(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-de-teste")

	var visto uint
	protegido := MiddlewareAutenticacao(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visto, _ = r.Context().Value(ctxUsuarioID).(uint)
		w.WriteHeader(http.StatusOK)
	}))

	// Sem token.
	rec := httptest.NewRecorder()
	protegido.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hospedes", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Com token válido o usuário entra no contexto.
	token, err := GerarToken(42, false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/hospedes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	protegido.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 42, visto)
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-de-teste")

	restrito := MiddlewareAutenticacao(RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	chamar := func(admin bool) int {
		token, err := GerarToken(1, admin)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodDelete, "/hospedes/1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		restrito.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusForbidden, chamar(false))
	assert.Equal(t, http.StatusOK, chamar(true))
}
