package financeiro

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/AcasaResidencial/api-financeiro/internal/competencia"
)

func comp(t *testing.T, s string) competencia.Competencia {
	t.Helper()
	c, err := competencia.Parse(s)
	require.NoError(t, err)
	return c
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestValorEsperado_MesesSelecionados(t *testing.T) {
	reg := RegistroFinanceiro{
		Mensalidade: dec(1000),
		Climatizacao: FluxoTaxa{
			Valor:             dec(200),
			MesesSelecionados: datatypes.JSONSlice[string]{"2026-01", "2026-02"},
		},
	}

	assert.True(t, dec(1200).Equal(reg.ValorEsperado(comp(t, "2026-01"))))
	assert.True(t, dec(1200).Equal(reg.ValorEsperado(comp(t, "2026-02"))))
	assert.True(t, dec(1000).Equal(reg.ValorEsperado(comp(t, "2026-03"))))
}

func TestValorEsperado_JanelaContigua(t *testing.T) {
	// Sem meses selecionados: vale a janela [2026-03, 2026-05].
	reg := RegistroFinanceiro{
		Mensalidade: dec(1000),
		Manutencao: FluxoTaxa{
			Valor:       dec(150),
			MesInicio:   "2026-03",
			QtdParcelas: 3,
		},
	}

	assert.True(t, dec(1000).Equal(reg.ValorEsperado(comp(t, "2026-02"))))
	assert.True(t, dec(1150).Equal(reg.ValorEsperado(comp(t, "2026-03"))))
	assert.True(t, dec(1150).Equal(reg.ValorEsperado(comp(t, "2026-04"))))
	assert.True(t, dec(1150).Equal(reg.ValorEsperado(comp(t, "2026-05"))))
	assert.True(t, dec(1000).Equal(reg.ValorEsperado(comp(t, "2026-06"))))
}

func TestValorEsperado_JanelaCruzandoVirada(t *testing.T) {
	reg := RegistroFinanceiro{
		Mensalidade: dec(1000),
		Enxoval: FluxoTaxa{
			Valor:       dec(80),
			MesInicio:   "2025-12",
			QtdParcelas: 3,
		},
	}

	assert.True(t, dec(1080).Equal(reg.ValorEsperado(comp(t, "2025-12"))))
	assert.True(t, dec(1080).Equal(reg.ValorEsperado(comp(t, "2026-01"))))
	assert.True(t, dec(1080).Equal(reg.ValorEsperado(comp(t, "2026-02"))))
	assert.True(t, dec(1000).Equal(reg.ValorEsperado(comp(t, "2026-03"))))
}

func TestValorEsperado_SelecionadosPrevalecemSobreJanela(t *testing.T) {
	// A janela cobriria 2026-03, mas a seleção explícita manda.
	reg := RegistroFinanceiro{
		Mensalidade: dec(1000),
		DecimoTerceiro: FluxoTaxa{
			Valor:             dec(500),
			MesesSelecionados: datatypes.JSONSlice[string]{"2026-11"},
			MesInicio:         "2026-03",
			QtdParcelas:       6,
		},
	}

	assert.True(t, dec(1000).Equal(reg.ValorEsperado(comp(t, "2026-03"))))
	assert.True(t, dec(1500).Equal(reg.ValorEsperado(comp(t, "2026-11"))))
}

func TestValorEsperado_RetroativoSomenteFevereiroDoAno(t *testing.T) {
	reg := RegistroFinanceiro{
		Mensalidade:           dec(1000),
		ReajustadoAnoCorrente: true,
		AnoReajuste:           2026,
		ValorRetroativo:       dec(300),
	}

	assert.True(t, dec(1300).Equal(reg.ValorEsperado(comp(t, "2026-02"))))
	assert.True(t, dec(1000).Equal(reg.ValorEsperado(comp(t, "2026-01"))))
	assert.True(t, dec(1000).Equal(reg.ValorEsperado(comp(t, "2027-02"))))
}

func TestValorEsperado_FluxoSemConfiguracaoNaoCobra(t *testing.T) {
	reg := RegistroFinanceiro{
		Mensalidade:  dec(1000),
		Climatizacao: FluxoTaxa{Valor: dec(200)}, // nem seleção, nem janela
		Manutencao:   FluxoTaxa{Valor: dec(150), MesInicio: "2026-01", QtdParcelas: 0},
	}

	assert.True(t, dec(1000).Equal(reg.ValorEsperado(comp(t, "2026-01"))))
}

func TestTotalBaseMensal_IgnoraDecimoTerceiro(t *testing.T) {
	reg := RegistroFinanceiro{
		Mensalidade:    dec(1500),
		Climatizacao:   FluxoTaxa{Valor: dec(200)},
		Manutencao:     FluxoTaxa{Valor: dec(150)},
		Enxoval:        FluxoTaxa{Valor: dec(80)},
		DecimoTerceiro: FluxoTaxa{Valor: dec(500)},
	}

	assert.True(t, dec(1930).Equal(reg.TotalBaseMensal()))
}

func TestProjetarReceitaAnual(t *testing.T) {
	inativacao := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)
	registros := []RegistroFinanceiro{
		{Mensalidade: dec(1000), Ativo: true},
		{
			Mensalidade: dec(1000),
			Ativo:       true,
			Climatizacao: FluxoTaxa{
				Valor:             dec(200),
				MesesSelecionados: datatypes.JSONSlice[string]{"2026-01"},
			},
		},
		{
			Mensalidade:    dec(2000),
			Ativo:          false,
			DataInativacao: &inativacao,
			PerdaReceita:   dec(2000),
		},
	}

	itens := ProjetarReceitaAnual(registros, 2026)
	require.Len(t, itens, 12)

	// Janeiro: 1000 + 1200; inativo não entra na receita prevista.
	assert.Equal(t, "2026-01", itens[0].Competencia)
	assert.True(t, dec(2200).Equal(itens[0].ReceitaPrevista))
	assert.True(t, decimal.Zero.Equal(itens[0].PerdaReceita))

	// Abril: perda de receita do registro inativado em 2026-04.
	assert.Equal(t, "2026-04", itens[3].Competencia)
	assert.True(t, dec(2000).Equal(itens[3].ReceitaPrevista))
	assert.True(t, dec(2000).Equal(itens[3].PerdaReceita))

	// Em outro ano a perda não aparece.
	itens2027 := ProjetarReceitaAnual(registros, 2027)
	for _, item := range itens2027 {
		assert.True(t, decimal.Zero.Equal(item.PerdaReceita), item.Competencia)
	}
}
