package main

import (
	"log"
	"net/http"

	"doppelx/ai"
	"doppelx/config"
	"doppelx/helpers"
	"doppelx/routes"
	"doppelx/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

func main() {
	log.Println("Starting application...")

	config.Load()
	config.ConnectDB()

	jwtSecret := viper.GetString("jwt.secret_key")
	if jwtSecret == "" {
		log.Fatal("JWT secret key not found in config")
	}
	helpers.SetJWTKey(jwtSecret)

	var responder services.Responder
	if apiKey := viper.GetString("gemini.api_key"); apiKey != "" {
		aiService, err := ai.NewService(apiKey)
		if err != nil {
			log.Fatalf("Could not initialize AI service: %v", err)
		}
		responder = aiService
	} else {
		log.Println("Gemini API key not set, chat will use built-in responses.")
	}

	r := gin.Default()
	api := r.Group("/api")
	routes.SetupRoutes(api, responder)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	port := viper.GetString("server.port")
	log.Printf("Starting server on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
