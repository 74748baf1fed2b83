// internal/financeiro/calculo.go
package financeiro

import (
	"github.com/shopspring/decimal"

	"github.com/AcasaResidencial/api-financeiro/internal/competencia"
)

/* ======================== Valor esperado da competência ======================== */

// ValorEsperado calcula o total devido pelo hóspede na competência: a
// mensalidade, mais cada taxa opcional devida no mês, mais a cobrança
// retroativa quando a competência é fevereiro do ano de reajuste.
// Função pura; não consulta o banco.
func (r *RegistroFinanceiro) ValorEsperado(c competencia.Competencia) decimal.Decimal {
	total := r.Mensalidade
	for _, taxa := range r.Taxas() {
		if taxa.CobraEm(c) {
			total = total.Add(taxa.Valor)
		}
	}
	if r.ReajustadoAnoCorrente && c.Mes == 2 && c.Ano == r.AnoReajuste {
		total = total.Add(r.ValorRetroativo)
	}
	return total
}

// Taxas devolve os quatro fluxos opcionais na ordem de exibição.
func (r *RegistroFinanceiro) Taxas() []FluxoTaxa {
	return []FluxoTaxa{r.Climatizacao, r.Manutencao, r.Enxoval, r.DecimoTerceiro}
}

// TotalBaseMensal soma a mensalidade com os valores base de climatização,
// manutenção e enxoval, sem considerar em quais meses cada taxa é cobrada.
// É o valor congelado como perda de receita na inativação.
func (r *RegistroFinanceiro) TotalBaseMensal() decimal.Decimal {
	return r.Mensalidade.
		Add(r.Climatizacao.Valor).
		Add(r.Manutencao.Valor).
		Add(r.Enxoval.Valor)
}

/* ============================ Projeção de receita ============================ */

// ItemReceitaMensal é a linha de um mês na projeção anual de receita.
type ItemReceitaMensal struct {
	Competencia     string          `json:"competencia"`
	ReceitaPrevista decimal.Decimal `json:"receitaPrevista"`
	PerdaReceita    decimal.Decimal `json:"perdaReceita"`
}

// ProjetarReceitaAnual produz, para cada um dos 12 meses do ano, a soma do
// valor esperado de todos os registros ativos e, separadamente, a perda de
// receita dos registros inativados naquele mês. Projeção somente leitura,
// consumida pelos painéis.
func ProjetarReceitaAnual(registros []RegistroFinanceiro, ano int) []ItemReceitaMensal {
	itens := make([]ItemReceitaMensal, 0, 12)
	for mes := 1; mes <= 12; mes++ {
		c := competencia.Competencia{Ano: ano, Mes: mes}
		item := ItemReceitaMensal{
			Competencia:     c.String(),
			ReceitaPrevista: decimal.Zero,
			PerdaReceita:    decimal.Zero,
		}
		for i := range registros {
			r := &registros[i]
			if r.Ativo {
				item.ReceitaPrevista = item.ReceitaPrevista.Add(r.ValorEsperado(c))
				continue
			}
			if r.DataInativacao != nil &&
				r.DataInativacao.Year() == ano && int(r.DataInativacao.Month()) == mes {
				item.PerdaReceita = item.PerdaReceita.Add(r.PerdaReceita)
			}
		}
		itens = append(itens, item)
	}
	return itens
}
