package main

import (
	"fmt"
	"log"
	"time"

	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/handler"
	"gamevault/backend/internal/session"
	"gamevault/backend/internal/validation"
)

func init() {
	config.LoadConfig()
}

// @title           GameVault API
// @version         1.0
// @description     CRUD backend for a video-game catalog: games, companies, users and sessions.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	sessions := session.NewStore(time.Duration(config.AppConfig.SessionTTLHours) * time.Hour)
	vocab := validation.DefaultVocabulary()

	router := handler.SetupRouter(sessions, vocab, config.AppConfig)

	addr := ":" + config.AppConfig.Port
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost" + addr + "/swagger/index.html")
	log.Fatal(router.Run(addr))
}
