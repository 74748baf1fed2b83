package financeiro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&RegistroFinanceiro{}))
	return conn
}

func TestInativar_CongelaPerdaDeReceita(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)

	reg := RegistroFinanceiro{
		HospedeID:    7,
		Mensalidade:  dec(1500),
		Climatizacao: FluxoTaxa{Valor: dec(200)},
		Manutencao:   FluxoTaxa{Valor: dec(150)},
		Enxoval:      FluxoTaxa{Valor: dec(80)},
		Ativo:        true,
	}
	require.NoError(t, repo.Create(&reg))

	quando := time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Inativar(nil, 7, quando))

	inativado, err := repo.FindByHospedeID(7)
	require.NoError(t, err)
	assert.False(t, inativado.Ativo)
	require.NotNil(t, inativado.DataInativacao)
	assert.True(t, inativado.DataInativacao.Equal(quando))
	assert.True(t, dec(1930).Equal(inativado.PerdaReceita))
}

func TestInativar_Idempotente(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)

	reg := RegistroFinanceiro{HospedeID: 7, Mensalidade: dec(1500), Ativo: true}
	require.NoError(t, repo.Create(&reg))

	primeira := time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Inativar(nil, 7, primeira))

	// Segunda chamada com a mensalidade já alterada: nada muda.
	require.NoError(t, conn.Model(&RegistroFinanceiro{}).
		Where("hospede_id = ?", 7).Update("mensalidade", dec(2000)).Error)
	depois := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Inativar(nil, 7, depois))

	inativado, err := repo.FindByHospedeID(7)
	require.NoError(t, err)
	require.NotNil(t, inativado.DataInativacao)
	assert.True(t, inativado.DataInativacao.Equal(primeira), "data da primeira transição é preservada")
	assert.True(t, dec(1500).Equal(inativado.PerdaReceita), "perda congelada na primeira transição")
}

func TestInativar_SemRegistro(t *testing.T) {
	conn := newTestDB(t)
	err := NewRepository(conn).Inativar(nil, 99, time.Now())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
