package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	/*
		.env-local для локального запуска, .env.docker для докера
		в скрипте в START пишется или .env-local или .env.docker
		в зависимости от парметров запуска, ./start.sh или ./start.sh docker
	*/
	if err := godotenv.Load(os.Getenv("START")); err != nil {
		log.Fatalf("Env file not found")
	}

	if os.Getenv("DATA_DIR") == "" {
		log.Fatalf("DATA_DIR is not set in environment")
	}
}

func DataDir() string {
	return os.Getenv("DATA_DIR")
}

func Addr() string {
	if addr := os.Getenv("ADDR"); addr != "" {
		return addr
	}
	return ":8082"
}
