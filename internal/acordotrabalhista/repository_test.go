package acordotrabalhista

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AcasaResidencial/api-financeiro/internal/parcelaacordo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&AcordoTrabalhista{}, &parcelaacordo.ParcelaAcordo{}))
	return conn
}

func criarAcordoComParcelas(t *testing.T, conn *gorm.DB) *AcordoTrabalhista {
	t.Helper()
	repo := NewRepository(conn)

	acordo := AcordoTrabalhista{
		NomeReclamante: "Maria Souza",
		NomeEmpresa:    "ACASA Residencial",
		NomeAdvogado:   "Dr. Carlos Lima",
		ChavePix:       "maria@exemplo.com",
		ValorTotal:     d("3000.00"),
		QtdParcelas:    3,
	}
	require.NoError(t, repo.Create(nil, &acordo))

	primeiro := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	parcelas, err := parcelaacordo.GerarParcelas(acordo.ValorTotal, 3, primeiro, nil)
	require.NoError(t, err)
	for _, p := range parcelas {
		p.AcordoTrabalhistaID = acordo.ID
	}
	require.NoError(t, parcelaacordo.NewRepository(conn).CreateInBatch(parcelas))

	return &acordo
}

func TestFindByID_CarregaParcelasOrdenadas(t *testing.T) {
	conn := newTestDB(t)
	acordo := criarAcordoComParcelas(t, conn)

	carregado, err := NewRepository(conn).FindByID(acordo.ID)
	require.NoError(t, err)
	require.Len(t, carregado.Parcelas, 3)
	for i, p := range carregado.Parcelas {
		assert.Equal(t, i+1, p.Numero)
	}
}

func TestDeleteByID_SemParcelasPagas(t *testing.T) {
	conn := newTestDB(t)
	acordo := criarAcordoComParcelas(t, conn)
	repo := NewRepository(conn)

	require.NoError(t, repo.DeleteByID(acordo.ID))

	_, err := repo.FindByID(acordo.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var restantes int64
	require.NoError(t, conn.Model(&parcelaacordo.ParcelaAcordo{}).
		Where("acordo_trabalhista_id = ?", acordo.ID).Count(&restantes).Error)
	assert.Zero(t, restantes, "exclusão leva as parcelas junto")
}

func TestDeleteByID_RecusadoComParcelaPaga(t *testing.T) {
	conn := newTestDB(t)
	acordo := criarAcordoComParcelas(t, conn)
	repo := NewRepository(conn)

	parcRepo := parcelaacordo.NewRepository(conn)
	parcelas, err := parcRepo.ListByAcordoID(acordo.ID)
	require.NoError(t, err)
	require.NoError(t, parcRepo.MarcarComoPaga(parcelas[0].ID, time.Now(), "comprovante.pdf"))

	err = repo.DeleteByID(acordo.ID)
	assert.ErrorIs(t, err, ErrAcordoComParcelasPagas)

	// Nada foi apagado.
	carregado, err := repo.FindByID(acordo.ID)
	require.NoError(t, err)
	assert.Len(t, carregado.Parcelas, 3)
}

func TestDeleteByID_Inexistente(t *testing.T) {
	conn := newTestDB(t)
	err := NewRepository(conn).DeleteByID(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMarcarComoPaga_RegistraDataEComprovante(t *testing.T) {
	conn := newTestDB(t)
	acordo := criarAcordoComParcelas(t, conn)
	parcRepo := parcelaacordo.NewRepository(conn)

	parcelas, err := parcRepo.ListByAcordoID(acordo.ID)
	require.NoError(t, err)

	quando := time.Date(2026, time.February, 9, 0, 0, 0, 0, time.UTC)
	require.NoError(t, parcRepo.MarcarComoPaga(parcelas[0].ID, quando, "pix-123.pdf"))

	paga, err := parcRepo.FindByID(parcelas[0].ID)
	require.NoError(t, err)
	assert.Equal(t, parcelaacordo.StatusPago, paga.Status)
	require.NotNil(t, paga.DataPagamento)
	assert.True(t, paga.DataPagamento.Equal(quando))
	assert.Equal(t, "pix-123.pdf", paga.Comprovante)
}
