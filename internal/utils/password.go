// internal/utils/password.go
package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// HashSenha gera um hash bcrypt para a senha informada.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarSenha compara hash bcrypt com a senha em texto puro.
func VerificarSenha(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}

// GerarSenhaProvisoria gera uma senha aleatória de 10 caracteres para o
// primeiro acesso de um usuário recém-cadastrado.
func GerarSenhaProvisoria() (string, error) {
	const alfabeto = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789"
	senha := make([]byte, 10)
	for i := range senha {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alfabeto))))
		if err != nil {
			return "", fmt.Errorf("gerar senha provisória: %w", err)
		}
		senha[i] = alfabeto[n.Int64()]
	}
	return string(senha), nil
}
