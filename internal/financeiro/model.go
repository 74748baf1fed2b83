// internal/financeiro/model.go
package financeiro

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/AcasaResidencial/api-financeiro/internal/competencia"
)

// FluxoTaxa descreve uma taxa opcional recorrente (climatização, manutenção,
// enxoval ou décimo terceiro) e em quais competências ela é cobrada.
//
// A resolução segue três modos mutuamente exclusivos:
//   - explícito: MesesSelecionados não vazio, cobra somente nesses meses;
//   - recorrente: MesInicio preenchido e QtdParcelas >= 1, cobra na janela
//     contígua [MesInicio, MesInicio+QtdParcelas-1];
//   - nenhum: a taxa não é cobrada.
//
// Quando MesesSelecionados não está vazio ele sempre prevalece sobre a janela.
type FluxoTaxa struct {
	Valor             decimal.Decimal             `gorm:"type:numeric(12,2);not null;default:0" json:"valor"`
	DiaVencimento     int                         `gorm:"not null;default:5" json:"diaVencimento"`
	MesesSelecionados datatypes.JSONSlice[string] `json:"mesesSelecionados"`
	MesInicio         string                      `gorm:"size:7" json:"mesInicio"` // "AAAA-MM"; vazio = sem janela
	QtdParcelas       int                         `gorm:"not null;default:0" json:"qtdParcelas"`
}

// CobraEm informa se a taxa é devida na competência informada.
func (f FluxoTaxa) CobraEm(c competencia.Competencia) bool {
	if len(f.MesesSelecionados) > 0 {
		chave := c.String()
		for _, m := range f.MesesSelecionados {
			if m == chave {
				return true
			}
		}
		return false
	}
	if f.MesInicio == "" || f.QtdParcelas <= 0 {
		return false
	}
	inicio, err := competencia.Parse(f.MesInicio)
	if err != nil {
		return false
	}
	return c.DentroDaJanela(inicio, f.QtdParcelas)
}

// RegistroFinanceiro concentra as condições de cobrança de um hóspede:
// mensalidade base, taxas opcionais, reajuste retroativo e os agregados
// derivados (saldo devedor e perda de receita).
type RegistroFinanceiro struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	HospedeID uint `gorm:"not null;uniqueIndex" json:"hospedeId"`

	Mensalidade   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"mensalidade"`
	DiaVencimento int             `gorm:"not null;default:5" json:"diaVencimento"`

	Climatizacao   FluxoTaxa `gorm:"embedded;embeddedPrefix:climatizacao_" json:"climatizacao"`
	Manutencao     FluxoTaxa `gorm:"embedded;embeddedPrefix:manutencao_" json:"manutencao"`
	Enxoval        FluxoTaxa `gorm:"embedded;embeddedPrefix:enxoval_" json:"enxoval"`
	DecimoTerceiro FluxoTaxa `gorm:"embedded;embeddedPrefix:decimo_terceiro_" json:"decimoTerceiro"`

	// Cobrança retroativa: quando o reajuste do ano vigente entra em vigor
	// em janeiro mas só é faturado em fevereiro, ValorRetroativo é somado
	// uma única vez na competência de fevereiro de AnoReajuste.
	ReajustadoAnoCorrente bool            `gorm:"not null;default:false" json:"reajustadoAnoCorrente"`
	ValorRetroativo       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"valorRetroativo"`
	AnoReajuste           int             `gorm:"not null;default:0" json:"anoReajuste"`

	Ativo          bool            `gorm:"not null;default:true;index" json:"ativo"`
	DataInativacao *time.Time      `json:"dataInativacao"`
	PerdaReceita   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"perdaReceita"`

	// SaldoDevedor é derivado: soma de todas as diferenças registradas em
	// pagamento_mensals. Nunca é editado diretamente; é sempre recalculado
	// a partir do histórico completo.
	SaldoDevedor decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"saldoDevedor"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&RegistroFinanceiro{})
}
