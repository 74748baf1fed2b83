// internal/pagamentomensal/model.go
package pagamentomensal

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ToleranciaDiferenca absorve arredondamentos de centavos: diferenças com
// módulo até 0,01 não contam como divergência de pagamento.
var ToleranciaDiferenca = decimal.RequireFromString("0.01")

// PagamentoMensal registra, por hóspede e competência, o valor esperado e o
// efetivamente pago no mês. Existe no máximo uma linha por (hóspede,
// competência); o lançamento tem semântica de upsert e nunca é removido
// pelo fluxo normal.
type PagamentoMensal struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	HospedeID   uint   `gorm:"not null;uniqueIndex:idx_hospede_competencia" json:"hospedeId"`
	Competencia string `gorm:"size:7;not null;uniqueIndex:idx_hospede_competencia" json:"competencia"` // "AAAA-MM"

	ValorEsperado decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"valorEsperado"`
	ValorPago     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"valorPago"`
	// Diferenca = esperado - pago; positivo indica pagamento a menor.
	Diferenca    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"diferenca"`
	TemDiferenca bool            `gorm:"not null;default:false" json:"temDiferenca"`

	MensalidadePaga bool       `gorm:"not null;default:false" json:"mensalidadePaga"`
	DataPagamento   *time.Time `json:"dataPagamento"`
	Observacoes     string     `json:"observacoes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CalcularDiferenca preenche Diferenca e TemDiferenca a partir dos valores.
func (p *PagamentoMensal) CalcularDiferenca() {
	p.Diferenca = p.ValorEsperado.Sub(p.ValorPago)
	p.TemDiferenca = p.Diferenca.Abs().Cmp(ToleranciaDiferenca) > 0
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&PagamentoMensal{})
}
