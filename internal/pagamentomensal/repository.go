// internal/pagamentomensal/repository.go
package pagamentomensal

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Pagamentos Mensais.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// Upsert grava o pagamento da competência: cria a linha se não existir,
// sobrescreve se já existir. A chave é (hospede_id, competencia).
func (r *Repository) Upsert(p *PagamentoMensal) error {
	var existente PagamentoMensal
	err := r.DB.
		Where("hospede_id = ? AND competencia = ?", p.HospedeID, p.Competencia).
		First(&existente).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(p).Error
	}
	if err != nil {
		return err
	}
	p.ID = existente.ID
	p.CreatedAt = existente.CreatedAt
	return r.DB.Save(p).Error
}

// FindByHospedeEMes busca o pagamento de uma competência específica.
func (r *Repository) FindByHospedeEMes(hospedeID uint, comp string) (*PagamentoMensal, error) {
	var p PagamentoMensal
	err := r.DB.
		Where("hospede_id = ? AND competencia = ?", hospedeID, comp).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByHospedeID devolve o histórico de pagamentos de um hóspede em
// ordem cronológica de competência.
func (r *Repository) ListByHospedeID(hospedeID uint) ([]PagamentoMensal, error) {
	var lista []PagamentoMensal
	err := r.DB.
		Where("hospede_id = ?", hospedeID).
		Order("competencia ASC").
		Find(&lista).Error
	return lista, err
}

// RecalcularSaldoDevedor soma as diferenças de TODAS as competências do
// hóspede e grava o total em registro_financeiros.saldo_devedor. É um
// recálculo completo em um único UPDATE atômico, não um delta incremental:
// a cardinalidade é pequena (dezenas de meses por hóspede) e o UPDATE único
// serializa escritores concorrentes no banco.
func (r *Repository) RecalcularSaldoDevedor(hospedeID uint) error {
	return r.DB.Exec(`
		UPDATE registro_financeiros
		SET saldo_devedor = (
			SELECT COALESCE(SUM(diferenca), 0)
			FROM pagamento_mensals
			WHERE hospede_id = ?
		)
		WHERE hospede_id = ?`,
		hospedeID, hospedeID,
	).Error
}
