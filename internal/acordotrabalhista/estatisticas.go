// internal/acordotrabalhista/estatisticas.go
package acordotrabalhista

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AcasaResidencial/api-financeiro/internal/parcelaacordo"
)

// Estatisticas agrega a situação de todos os acordos para o painel.
type Estatisticas struct {
	TotalAcordos      int             `json:"totalAcordos"`
	TotalPago         decimal.Decimal `json:"totalPago"`
	TotalPendente     decimal.Decimal `json:"totalPendente"`
	ParcelasAtrasadas int             `json:"parcelasAtrasadas"`
	ParcelasProximas  int             `json:"parcelasProximas"` // vencem entre hoje e hoje+7 dias, inclusive
}

// CalcularEstatisticas percorre os acordos aplicando o status derivado de
// cada parcela antes de agregar: "pendente" inclui atrasadas no total em
// aberto, e "próximas" são as pendentes com vencimento nos próximos 7 dias.
func CalcularEstatisticas(acordos []AcordoTrabalhista, hoje time.Time) Estatisticas {
	est := Estatisticas{
		TotalAcordos:  len(acordos),
		TotalPago:     decimal.Zero,
		TotalPendente: decimal.Zero,
	}

	inicioHoje := time.Date(hoje.Year(), hoje.Month(), hoje.Day(), 0, 0, 0, 0, hoje.Location())
	limiteProximas := inicioHoje.AddDate(0, 0, 7)

	for i := range acordos {
		for _, p := range acordos[i].Parcelas {
			switch parcelaacordo.StatusDerivado(p, hoje) {
			case parcelaacordo.StatusPago:
				est.TotalPago = est.TotalPago.Add(p.Valor)
			case parcelaacordo.StatusAtrasado:
				est.TotalPendente = est.TotalPendente.Add(p.Valor)
				est.ParcelasAtrasadas++
			default:
				est.TotalPendente = est.TotalPendente.Add(p.Valor)
				venc := p.DataVencimento
				dia := time.Date(venc.Year(), venc.Month(), venc.Day(), 0, 0, 0, 0, venc.Location())
				if !dia.Before(inicioHoje) && !dia.After(limiteProximas) {
					est.ParcelasProximas++
				}
			}
		}
	}
	return est
}
