// internal/acordotrabalhista/repository.go
package acordotrabalhista

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AcasaResidencial/api-financeiro/internal/parcelaacordo"
)

// ErrAcordoComParcelasPagas impede a exclusão de um acordo que já recebeu
// algum pagamento.
var ErrAcordoComParcelasPagas = errors.New("acordo possui parcelas pagas e não pode ser excluído")

// Repository encapsula o acesso a dados de Acordos Trabalhistas.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo acordo (sem parcelas; elas entram em lote na
// mesma transação, ver handler).
func (r *Repository) Create(db *gorm.DB, a *AcordoTrabalhista) error {
	if db == nil {
		db = r.DB
	}
	return db.Create(a).Error
}

// FindByID busca um acordo com suas parcelas.
func (r *Repository) FindByID(id uint) (*AcordoTrabalhista, error) {
	var a AcordoTrabalhista
	if err := r.DB.Preload("Parcelas", func(db *gorm.DB) *gorm.DB {
		return db.Order("numero ASC")
	}).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAll devolve todos os acordos com suas parcelas.
func (r *Repository) ListAll() ([]AcordoTrabalhista, error) {
	var lista []AcordoTrabalhista
	err := r.DB.Preload("Parcelas", func(db *gorm.DB) *gorm.DB {
		return db.Order("numero ASC")
	}).Order("created_at DESC").Find(&lista).Error
	return lista, err
}

// DeleteByID exclui o acordo e suas parcelas em uma transação, recusando
// a exclusão se qualquer parcela já foi paga.
func (r *Repository) DeleteByID(id uint) error {
	if _, err := r.FindByID(id); err != nil {
		return err
	}

	qtdPagas, err := parcelaacordo.NewRepository(r.DB).CountPagasByAcordoID(id)
	if err != nil {
		return err
	}
	if qtdPagas > 0 {
		return ErrAcordoComParcelasPagas
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("acordo_trabalhista_id = ?", id).
			Delete(&parcelaacordo.ParcelaAcordo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&AcordoTrabalhista{}, id).Error
	})
}
