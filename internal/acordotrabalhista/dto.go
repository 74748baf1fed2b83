// internal/acordotrabalhista/dto.go
package acordotrabalhista

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarAcordoDTO é o corpo do POST /acordos. Quando ValoresParcelas vem
// preenchido, a divisão é customizada (um valor por parcela, soma
// validada contra ValorTotal); caso contrário as parcelas são iguais.
type CriarAcordoDTO struct {
	NomeReclamante  string `json:"nomeReclamante"`
	NomeEmpresa     string `json:"nomeEmpresa"`
	NomeAdvogado    string `json:"nomeAdvogado"`
	ChavePix        string `json:"chavePix"`
	NumeroProcesso  string `json:"numeroProcesso"`
	VaraTrabalhista string `json:"varaTrabalhista"`
	Comarca         string `json:"comarca"`
	Observacoes     string `json:"observacoes"`

	ValorTotal         decimal.Decimal   `json:"valorTotal"`
	QtdParcelas        int               `json:"qtdParcelas"`
	PrimeiroVencimento time.Time         `json:"primeiroVencimento"`
	ValoresParcelas    []decimal.Decimal `json:"valoresParcelas"`
}
