package pagamentomensal

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AcasaResidencial/api-financeiro/internal/financeiro"
)

func registrarViaHTTP(t *testing.T, conn *gorm.DB, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(NewRepository(conn))

	r := mux.NewRouter()
	r.HandleFunc("/hospedes/{id}/pagamentos", h.Registrar).Methods("POST")

	req := httptest.NewRequest(http.MethodPost, "/hospedes/1/pagamentos", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRegistrar_RejeitaCompetenciaForaDaFormaCanonica(t *testing.T) {
	conn := newTestDB(t)
	reg := financeiro.RegistroFinanceiro{HospedeID: 1, Mensalidade: dec("1500"), Ativo: true}
	require.NoError(t, conn.Create(&reg).Error)

	for _, comp := range []string{"2026-1", "2026-011", "26-01"} {
		rec := registrarViaHTTP(t, conn,
			`{"competencia":"`+comp+`","pago":true,"valorEsperado":"1500"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "competência %q deveria ser rejeitada", comp)
	}

	var qtd int64
	require.NoError(t, conn.Model(&PagamentoMensal{}).Count(&qtd).Error)
	assert.Zero(t, qtd, "nada deve ser gravado com chave malformada")
}

func TestRegistrar_PersisteChaveCanonica(t *testing.T) {
	conn := newTestDB(t)
	reg := financeiro.RegistroFinanceiro{HospedeID: 1, Mensalidade: dec("1500"), Ativo: true}
	require.NoError(t, conn.Create(&reg).Error)

	rec := registrarViaHTTP(t, conn,
		`{"competencia":"2026-02","pago":true,"valorEsperado":"1500"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var pagamentos []PagamentoMensal
	require.NoError(t, conn.Find(&pagamentos).Error)
	require.Len(t, pagamentos, 1)
	assert.Equal(t, "2026-02", pagamentos[0].Competencia)
}
