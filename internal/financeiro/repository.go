// internal/financeiro/repository.go
package financeiro

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Registros Financeiros.
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

// Create insere um novo registro financeiro.
func (r *Repository) Create(reg *RegistroFinanceiro) error {
	return r.DB.Create(reg).Error
}

// FindByHospedeID busca o registro financeiro de um hóspede.
func (r *Repository) FindByHospedeID(hospedeID uint) (*RegistroFinanceiro, error) {
	var reg RegistroFinanceiro
	if err := r.DB.Where("hospede_id = ?", hospedeID).First(&reg).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

// ListAll devolve todos os registros financeiros.
func (r *Repository) ListAll() ([]RegistroFinanceiro, error) {
	var lista []RegistroFinanceiro
	err := r.DB.Find(&lista).Error
	return lista, err
}

// Update salva todos os campos de um registro existente (Save exige PK).
func (r *Repository) Update(reg *RegistroFinanceiro) error {
	return r.DB.Save(reg).Error
}

// Inativar congela a perda de receita e marca o registro como inativo.
// É idempotente: chamado sobre um registro já inativo, não faz nada e
// a perda de receita congelada na primeira transição é preservada.
func (r *Repository) Inativar(db *gorm.DB, hospedeID uint, quando time.Time) error {
	if db == nil {
		db = r.DB
	}
	var reg RegistroFinanceiro
	if err := db.Where("hospede_id = ?", hospedeID).First(&reg).Error; err != nil {
		return err
	}
	if !reg.Ativo {
		return nil
	}
	reg.Ativo = false
	reg.DataInativacao = &quando
	reg.PerdaReceita = reg.TotalBaseMensal()
	return db.Save(&reg).Error
}
