// internal/hospede/model.go
package hospede

import (
	"time"

	"gorm.io/gorm"
)

// Situações possíveis de um hóspede na residência.
const (
	StatusAtivo    = "Ativo"
	StatusInativo  = "Inativo"
	StatusFalecido = "Falecido"
)

// Hospede representa um residente da casa. Cada hóspede possui no máximo
// um registro financeiro ativo (ver internal/financeiro).
type Hospede struct {
	gorm.Model
	Nome                string     `gorm:"size:255;not null" json:"nome"`
	CPF                 string     `gorm:"size:14;unique" json:"cpf"`
	Quarto              string     `gorm:"size:20" json:"quarto"`
	Status              string     `gorm:"size:20;not null;default:'Ativo';index" json:"status"`
	DataAdmissao        time.Time  `json:"dataAdmissao"`
	DataSaida           *time.Time `json:"dataSaida"`
	NomeResponsavel     string     `gorm:"size:255" json:"nomeResponsavel"`
	TelefoneResponsavel string     `gorm:"size:20" json:"telefoneResponsavel"`
	Observacoes         string     `json:"observacoes"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Hospede{})
}
