// internal/financeiro/dto.go
package financeiro

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// FluxoTaxaDTO espelha FluxoTaxa no corpo das requisições.
type FluxoTaxaDTO struct {
	Valor             decimal.Decimal `json:"valor"`
	DiaVencimento     int             `json:"diaVencimento"`
	MesesSelecionados []string        `json:"mesesSelecionados"`
	MesInicio         string          `json:"mesInicio"`
	QtdParcelas       int             `json:"qtdParcelas"`
}

func (d FluxoTaxaDTO) paraModel() FluxoTaxa {
	return FluxoTaxa{
		Valor:             d.Valor,
		DiaVencimento:     d.DiaVencimento,
		MesesSelecionados: datatypes.JSONSlice[string](d.MesesSelecionados),
		MesInicio:         d.MesInicio,
		QtdParcelas:       d.QtdParcelas,
	}
}

// RegistroDTO é usado no POST/PUT de /hospedes/{id}/financeiro.
// SaldoDevedor e PerdaReceita ficam de fora: são derivados, nunca
// aceitos do chamador.
type RegistroDTO struct {
	Mensalidade   decimal.Decimal `json:"mensalidade"`
	DiaVencimento int             `json:"diaVencimento"`

	Climatizacao   FluxoTaxaDTO `json:"climatizacao"`
	Manutencao     FluxoTaxaDTO `json:"manutencao"`
	Enxoval        FluxoTaxaDTO `json:"enxoval"`
	DecimoTerceiro FluxoTaxaDTO `json:"decimoTerceiro"`

	ReajustadoAnoCorrente bool            `json:"reajustadoAnoCorrente"`
	ValorRetroativo       decimal.Decimal `json:"valorRetroativo"`
	AnoReajuste           int             `json:"anoReajuste"`
}

// validar garante que nenhum valor monetário do corpo é negativo. Sem
// isso um fluxo com valor negativo faria o valor esperado da competência
// ficar abaixo de zero.
func (d RegistroDTO) validar() error {
	if d.Mensalidade.IsNegative() {
		return errors.New("mensalidade não pode ser negativa")
	}
	taxas := []struct {
		nome string
		dto  FluxoTaxaDTO
	}{
		{"climatizacao", d.Climatizacao},
		{"manutencao", d.Manutencao},
		{"enxoval", d.Enxoval},
		{"decimoTerceiro", d.DecimoTerceiro},
	}
	for _, t := range taxas {
		if t.dto.Valor.IsNegative() {
			return fmt.Errorf("valor da taxa %s não pode ser negativo", t.nome)
		}
	}
	if d.ValorRetroativo.IsNegative() {
		return errors.New("valor retroativo não pode ser negativo")
	}
	return nil
}

func (d RegistroDTO) aplicar(reg *RegistroFinanceiro) {
	reg.Mensalidade = d.Mensalidade
	reg.DiaVencimento = d.DiaVencimento
	reg.Climatizacao = d.Climatizacao.paraModel()
	reg.Manutencao = d.Manutencao.paraModel()
	reg.Enxoval = d.Enxoval.paraModel()
	reg.DecimoTerceiro = d.DecimoTerceiro.paraModel()
	reg.ReajustadoAnoCorrente = d.ReajustadoAnoCorrente
	reg.ValorRetroativo = d.ValorRetroativo
	reg.AnoReajuste = d.AnoReajuste
}

// ReajusteDTO é usado no POST /hospedes/{id}/reajustes. Exatamente um dos
// dois campos de valor deve vir preenchido; o outro é calculado.
type ReajusteDTO struct {
	Percentual      *decimal.Decimal `json:"percentual"`
	NovaMensalidade *decimal.Decimal `json:"novaMensalidade"`
	Observacoes     string           `json:"observacoes"`
}
