// internal/acordotrabalhista/model.go
package acordotrabalhista

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AcasaResidencial/api-financeiro/internal/parcelaacordo"
)

// AcordoTrabalhista representa um acordo negociado em reclamação
// trabalhista, parcelado em um cronograma fixo definido na criação.
type AcordoTrabalhista struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	NomeReclamante  string          `gorm:"size:255;not null" json:"nomeReclamante"`
	NomeEmpresa     string          `gorm:"size:255;not null" json:"nomeEmpresa"`
	NomeAdvogado    string          `gorm:"size:255;not null" json:"nomeAdvogado"`
	ChavePix        string          `gorm:"size:140;not null" json:"chavePix"`
	NumeroProcesso  string          `gorm:"size:25" json:"numeroProcesso"`
	VaraTrabalhista string          `gorm:"size:100" json:"varaTrabalhista"`
	Comarca         string          `gorm:"size:100" json:"comarca"`
	ValorTotal      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"valorTotal"`
	QtdParcelas     int             `gorm:"not null;default:0" json:"qtdParcelas"`
	Observacoes     string          `json:"observacoes"`

	Parcelas []parcelaacordo.ParcelaAcordo `gorm:"foreignKey:AcordoTrabalhistaID;constraint:OnDelete:CASCADE" json:"parcelas"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados e aplica relacionamentos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&AcordoTrabalhista{})
}
