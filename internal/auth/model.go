// internal/auth/model.go
package auth

import (
	"gorm.io/gorm"
)

// Usuario é um operador administrativo do sistema (recepção, financeiro,
// direção). Não confundir com hóspede: usuários autenticam, hóspedes não.
type Usuario struct {
	gorm.Model
	Nome  string `gorm:"size:255;not null" json:"nome"`
	Email string `gorm:"size:255;not null;unique" json:"email"`
	Senha string `gorm:"size:255;not null" json:"-"`
	Admin bool   `gorm:"not null;default:false" json:"admin"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
