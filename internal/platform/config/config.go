package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config junta todo lo que el proceso toma del entorno.
type Config struct {
	// Addr es la dirección de escucha del server HTTP (":8080" default).
	Addr string

	// DBDSN vacío = modo dev con repos in-memory.
	DBDSN string

	LogLevel  string
	LogFormat string
	AppName   string
}

// Load lee .env si existe (dev) y después el entorno. Las variables de
// entorno siempre ganan sobre el archivo.
func Load() Config {
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	return Config{
		Addr:      addr,
		DBDSN:     os.Getenv("DB_DSN"),
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: os.Getenv("LOG_FORMAT"),
		AppName:   os.Getenv("APP_NAME"),
	}
}
