// internal/parcelaacordo/parcelas.go
package parcelaacordo

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrQtdParcelasInvalida indica quantidade de parcelas menor que 1.
	ErrQtdParcelasInvalida = errors.New("quantidade de parcelas deve ser no mínimo 1")
	// ErrValoresCustomInvalidos indica que a lista de valores customizados
	// não tem uma entrada por parcela.
	ErrValoresCustomInvalidos = errors.New("informe exatamente um valor por parcela")
	// ErrSomaParcelasInvalida indica que a soma dos valores customizados
	// diverge do total do acordo além da tolerância de 0,01.
	ErrSomaParcelasInvalida = errors.New("a soma das parcelas não corresponde ao valor total do acordo")
	// ErrValorParcelaInvalido indica parcela customizada com valor zero
	// ou negativo.
	ErrValorParcelaInvalido = errors.New("cada parcela deve ter valor positivo")
)

var toleranciaSoma = decimal.RequireFromString("0.01")

// GerarParcelas monta o cronograma de parcelas de um acordo. Função pura:
// a persistência (acordo + parcelas em uma transação) é passo separado.
//
// Divisão igual (valoresCustom nil): cada parcela recebe total/qtd
// arredondado para centavos e a ÚLTIMA parcela absorve o resto do
// arredondamento, garantindo soma exatamente igual ao total.
//
// Divisão customizada: cada valor precisa ser positivo e a soma precisa
// bater com o total dentro de 0,01. É pré-condição, não correção a
// posteriori.
//
// Vencimentos: primeiroVencimento + i meses via AddDate, que normaliza
// estouro de dia (31/jan + 1 mês cai em março). Comportamento assumido
// deliberadamente; os vencimentos reais dos acordos usam dias baixos.
func GerarParcelas(total decimal.Decimal, qtd int, primeiroVencimento time.Time, valoresCustom []decimal.Decimal) ([]*ParcelaAcordo, error) {
	if qtd < 1 {
		return nil, ErrQtdParcelasInvalida
	}

	valores := make([]decimal.Decimal, qtd)
	if valoresCustom != nil {
		if len(valoresCustom) != qtd {
			return nil, ErrValoresCustomInvalidos
		}
		soma := decimal.Zero
		for _, v := range valoresCustom {
			if !v.IsPositive() {
				return nil, ErrValorParcelaInvalido
			}
			soma = soma.Add(v)
		}
		if soma.Sub(total).Abs().Cmp(toleranciaSoma) > 0 {
			return nil, ErrSomaParcelasInvalida
		}
		copy(valores, valoresCustom)
	} else {
		base := total.Div(decimal.NewFromInt(int64(qtd))).Round(2)
		acumulado := decimal.Zero
		for i := 0; i < qtd-1; i++ {
			valores[i] = base
			acumulado = acumulado.Add(base)
		}
		valores[qtd-1] = total.Sub(acumulado)
	}

	parcelas := make([]*ParcelaAcordo, 0, qtd)
	for i := 0; i < qtd; i++ {
		parcelas = append(parcelas, &ParcelaAcordo{
			Numero:         i + 1,
			Valor:          valores[i],
			DataVencimento: primeiroVencimento.AddDate(0, i, 0),
			Status:         StatusPendente,
		})
	}
	return parcelas, nil
}

// StatusDerivado devolve o status "como está agora": Pago é definitivo;
// Pendente com vencimento anterior a hoje é reportado como Atrasado. A
// transição para Atrasado nunca é gravada; é recalculada a cada leitura.
func StatusDerivado(p ParcelaAcordo, hoje time.Time) string {
	if p.Status == StatusPago {
		return StatusPago
	}
	if inicioDoDia(p.DataVencimento).Before(inicioDoDia(hoje)) {
		return StatusAtrasado
	}
	return StatusPendente
}

// AplicarStatusDerivado sobrescreve o status de cada parcela com o valor
// derivado. Deve ser chamado em TODA listagem, para que o chamador sempre
// veja o atraso vigente, não o último estado gravado.
func AplicarStatusDerivado(parcelas []ParcelaAcordo, hoje time.Time) {
	for i := range parcelas {
		parcelas[i].Status = StatusDerivado(parcelas[i], hoje)
	}
}

func inicioDoDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
