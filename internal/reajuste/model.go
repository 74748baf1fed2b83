// internal/reajuste/model.go
package reajuste

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReajusteFinanceiro é uma linha imutável do histórico de reajustes da
// mensalidade de um hóspede. Uma vez criada, nunca é alterada ou removida.
type ReajusteFinanceiro struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	HospedeID           uint            `gorm:"not null;index" json:"hospedeId"`
	DataReajuste        time.Time       `gorm:"not null" json:"dataReajuste"`
	MensalidadeAnterior decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"mensalidadeAnterior"`
	NovaMensalidade     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"novaMensalidade"`
	Percentual          decimal.Decimal `gorm:"type:numeric(7,4);not null" json:"percentual"`
	Observacoes         string          `json:"observacoes"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ReajusteFinanceiro{})
}
