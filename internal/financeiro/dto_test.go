package financeiro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestRegistroDTO_Validar(t *testing.T) {
	valido := RegistroDTO{
		Mensalidade:  dec(1000),
		Climatizacao: FluxoTaxaDTO{Valor: dec(200)},
	}
	assert.NoError(t, valido.validar())

	casos := []struct {
		nome string
		dto  RegistroDTO
	}{
		{"mensalidade negativa", RegistroDTO{Mensalidade: dec(-100)}},
		{"climatizacao negativa", RegistroDTO{Mensalidade: dec(100), Climatizacao: FluxoTaxaDTO{Valor: dec(-500)}}},
		{"manutencao negativa", RegistroDTO{Manutencao: FluxoTaxaDTO{Valor: dec(-1)}}},
		{"enxoval negativo", RegistroDTO{Enxoval: FluxoTaxaDTO{Valor: dec(-1)}}},
		{"decimo terceiro negativo", RegistroDTO{DecimoTerceiro: FluxoTaxaDTO{Valor: dec(-1)}}},
		{"retroativo negativo", RegistroDTO{ValorRetroativo: dec(-300)}},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			assert.Error(t, c.dto.validar())
		})
	}
}

func TestValorEsperado_NuncaNegativoComDTOValidado(t *testing.T) {
	// Um fluxo com valor negativo produziria valor esperado abaixo de zero;
	// o validar barra o corpo antes de qualquer escrita.
	dto := RegistroDTO{
		Mensalidade: dec(100),
		Climatizacao: FluxoTaxaDTO{
			Valor:             dec(-500),
			MesesSelecionados: []string{"2026-01"},
		},
	}
	assert.Error(t, dto.validar())

	// Com valores válidos o total da competência segue não negativo.
	reg := RegistroFinanceiro{
		Mensalidade: dec(100),
		Climatizacao: FluxoTaxa{
			Valor:             dec(500),
			MesesSelecionados: datatypes.JSONSlice[string]{"2026-01"},
		},
	}
	assert.False(t, reg.ValorEsperado(comp(t, "2026-01")).IsNegative())
}
