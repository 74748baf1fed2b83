// internal/parcelaacordo/repository.go
package parcelaacordo

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Parcelas de Acordo.
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

// CreateInBatch cria múltiplas parcelas de uma vez (ignora se vazio).
func (r *Repository) CreateInBatch(parcelas []*ParcelaAcordo) error {
	if len(parcelas) == 0 {
		return nil
	}
	return r.DB.Create(parcelas).Error
}

// FindByID busca uma única parcela pelo seu ID.
func (r *Repository) FindByID(id uint) (*ParcelaAcordo, error) {
	var p ParcelaAcordo
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByAcordoID busca todas as parcelas de um acordo, em ordem de número.
func (r *Repository) ListByAcordoID(acordoID uint) ([]ParcelaAcordo, error) {
	var parcelas []ParcelaAcordo
	err := r.DB.
		Where("acordo_trabalhista_id = ?", acordoID).
		Order("numero ASC").
		Find(&parcelas).Error
	return parcelas, err
}

// MarcarComoPaga grava a transição definitiva para "Pago" com a data e o
// comprovante informados. Não existe caminho de volta.
func (r *Repository) MarcarComoPaga(id uint, dataPagamento time.Time, comprovante string) error {
	return r.DB.Model(&ParcelaAcordo{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         StatusPago,
			"data_pagamento": &dataPagamento,
			"comprovante":    comprovante,
		}).Error
}

// CountPagasByAcordoID conta as parcelas já pagas de um acordo.
func (r *Repository) CountPagasByAcordoID(acordoID uint) (int64, error) {
	var qtd int64
	err := r.DB.Model(&ParcelaAcordo{}).
		Where("acordo_trabalhista_id = ? AND status = ?", acordoID, StatusPago).
		Count(&qtd).Error
	return qtd, err
}
