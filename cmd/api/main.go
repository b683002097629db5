package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: archivo .env no encontrado: %v", err)
	}

	// Crear la aplicación
	app, err := NewApp(context.Background())
	if err != nil {
		log.Fatalf("Error al iniciar la aplicación: %v", err)
	}
	defer app.Close()

	// Iniciar el servidor
	if err := app.Start(); err != nil {
		log.Fatalf("Error del servidor: %v", err)
	}
}
