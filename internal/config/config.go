package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"prodcal/internal/store"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBDisabled bool
	ServerPort string

	// NotifyCron schedules the daily reminder scan.
	NotifyCron string

	// PersonDeletePolicy: "keep" leaves task references dangling,
	// "detach" unassigns the person's tasks.
	PersonDeletePolicy store.PersonDeletePolicy

	// ClientDeletePolicy: "orphan" leaves tasks of deleted projects,
	// "cascade" deletes them too.
	ClientDeletePolicy store.ClientDeletePolicy
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "prodcal_user"),
		DBPassword:         getEnv("DB_PASSWORD", "prodcal_pass"),
		DBName:             getEnv("DB_NAME", "prodcal_db"),
		DBDisabled:         getEnv("DB_DISABLED", "false") == "true",
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		NotifyCron:         getEnv("NOTIFY_CRON", "0 7 * * *"),
		PersonDeletePolicy: store.PersonDeletePolicy(getEnv("PERSON_DELETE_POLICY", string(store.PersonDeleteKeep))),
		ClientDeletePolicy: store.ClientDeletePolicy(getEnv("CLIENT_DELETE_POLICY", string(store.ClientDeleteOrphan))),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
