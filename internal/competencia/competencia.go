// internal/competencia/competencia.go
package competencia

import (
	"fmt"
	"time"
)

// Competencia identifica um mês-calendário de cobrança no formato "AAAA-MM".
// É a granularidade mínima do faturamento: taxas, pagamentos e projeções
// são sempre referidos a uma competência.
type Competencia struct {
	Ano int
	Mes int // 1 a 12
}

// Parse converte uma chave "AAAA-MM" em Competencia. A validação é
// estrita: quatro dígitos, hífen, dois dígitos, nada além disso. Chaves
// fora da forma canônica ("2026-1", "26-01") são rejeitadas para que a
// mesma competência nunca exista sob duas grafias.
func Parse(s string) (Competencia, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Competencia{}, fmt.Errorf("competência inválida %q: use o formato AAAA-MM", s)
	}
	if t.Year() < 1 {
		return Competencia{}, fmt.Errorf("competência inválida %q", s)
	}
	return Competencia{Ano: t.Year(), Mes: int(t.Month())}, nil
}

// DoTempo extrai a competência de uma data.
func DoTempo(t time.Time) Competencia {
	return Competencia{Ano: t.Year(), Mes: int(t.Month())}
}

// String devolve a chave no formato "AAAA-MM".
func (c Competencia) String() string {
	return fmt.Sprintf("%04d-%02d", c.Ano, c.Mes)
}

// Indice converte a competência em um índice absoluto de meses
// (ano*12 + mês), permitindo comparar intervalos que cruzam a
// virada do ano.
func (c Competencia) Indice() int {
	return c.Ano*12 + (c.Mes - 1)
}

// AdicionarMeses devolve a competência n meses à frente (n pode ser negativo).
func (c Competencia) AdicionarMeses(n int) Competencia {
	idx := c.Indice() + n
	return Competencia{Ano: idx / 12, Mes: idx%12 + 1}
}

// DentroDaJanela informa se c pertence à janela contígua
// [inicio, inicio+qtd-1] meses, inclusive nas duas pontas.
func (c Competencia) DentroDaJanela(inicio Competencia, qtd int) bool {
	if qtd <= 0 {
		return false
	}
	i := c.Indice()
	return i >= inicio.Indice() && i <= inicio.Indice()+qtd-1
}
