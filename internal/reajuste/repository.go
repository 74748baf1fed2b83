// internal/reajuste/repository.go
package reajuste

import (
	"gorm.io/gorm"
)

// Repository encapsula o acesso ao histórico de reajustes.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere uma nova linha no histórico.
func (r *Repository) Create(rej *ReajusteFinanceiro) error {
	return r.DB.Create(rej).Error
}

// ListByHospedeID devolve o histórico de reajustes de um hóspede,
// do mais recente para o mais antigo.
func (r *Repository) ListByHospedeID(hospedeID uint) ([]ReajusteFinanceiro, error) {
	var lista []ReajusteFinanceiro
	err := r.DB.
		Where("hospede_id = ?", hospedeID).
		Order("data_reajuste DESC").
		Find(&lista).Error
	return lista, err
}
