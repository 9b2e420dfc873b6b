// cmd/seedoperador/main.go — Crea/actualiza un operador de demo.
// Uso: go run cmd/seedoperador/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "produccion:produccion@tcp(localhost:3306)/roble?charset=utf8mb4&parseTime=True&loc=Local"
	}
	dni := "12345678"
	password := "1234"
	nombre := "Operador Demo"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	result := db.WithContext(context.Background()).Exec(`
		INSERT INTO personal (Nombre, dni, password, activo, encargado, unidad_negocio, porcentaje)
		VALUES (?, ?, ?, 1, 0, 1, 0)
		ON DUPLICATE KEY UPDATE
			password = VALUES(password),
			Nombre = VALUES(Nombre),
			activo = 1
	`, nombre, dni, string(hash))

	if result.Error != nil {
		log.Fatalf("insert error: %v", result.Error)
	}
	fmt.Printf("✅ Operador dni '%s' creado/actualizado con password '%s'\n", dni, password)
}
