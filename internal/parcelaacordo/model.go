// internal/parcelaacordo/model.go
package parcelaacordo

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Situações de uma parcela. "Atrasado" nunca é persistido: é derivado na
// leitura comparando o vencimento com a data atual.
const (
	StatusPendente = "Pendente"
	StatusPago     = "Pago"
	StatusAtrasado = "Atrasado"
)

// ParcelaAcordo representa uma única parcela de um acordo trabalhista.
type ParcelaAcordo struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	AcordoTrabalhistaID uint            `gorm:"not null;index" json:"acordoTrabalhistaId"`
	Numero              int             `gorm:"not null" json:"numero"` // 1-based, único dentro do acordo
	Valor               decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"valor"`
	DataVencimento      time.Time       `gorm:"not null" json:"dataVencimento"`
	Status              string          `gorm:"size:20;not null;default:'Pendente';index" json:"status"`
	DataPagamento       *time.Time      `json:"dataPagamento"`
	Comprovante         string          `gorm:"size:255" json:"comprovante"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ParcelaAcordo{})
}
