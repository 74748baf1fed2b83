// internal/utils/db/conect_database.go
package db

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDataBase abre a conexão com o Postgres a partir das variáveis de
// ambiente DB_HOST, DB_PORT, DB_NAME, DB_USERNAME e DB_PASSWORD.
// DB_SSL_MODE_DISABLE=true desliga o TLS (ambiente local).
func ConnectDataBase() (*gorm.DB, error) {
	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	dbname := getenv("DB_NAME", "acasa")
	username := getenv("DB_USERNAME", "postgres")
	password := os.Getenv("DB_PASSWORD")

	var sslMode string
	if os.Getenv("DB_SSL_MODE_DISABLE") == "true" {
		sslMode = " sslmode=disable"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s%s",
		host, username, password, dbname, port, sslMode)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
}

func getenv(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}
