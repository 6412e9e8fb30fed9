package main

import (
	"log"

	_ "prodcal/docs"
	"prodcal/internal/config"
	"prodcal/internal/server"
)

// @title           Production Calendar API
// @version         1.0
// @description     API for a video production team calendar: tasks, schedule conflicts, productions and reminders.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
