// internal/hospede/repository.go
package hospede

import (
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Hóspedes.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo hóspede.
func (r *Repository) Create(h *Hospede) error {
	return r.DB.Create(h).Error
}

// FindByID busca um hóspede pelo seu ID.
func (r *Repository) FindByID(id uint) (*Hospede, error) {
	var h Hospede
	if err := r.DB.First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// ListAll devolve todos os hóspedes, opcionalmente filtrados por status.
func (r *Repository) ListAll(status string) ([]Hospede, error) {
	var lista []Hospede
	q := r.DB.Order("nome ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&lista).Error
	return lista, err
}

// Update salva todos os campos de um hóspede existente.
func (r *Repository) Update(db *gorm.DB, h *Hospede) error {
	if db == nil {
		db = r.DB
	}
	return db.Save(h).Error
}

// DeleteByID apaga o hóspede; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeleteByID(id uint) error {
	res := r.DB.Delete(&Hospede{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
