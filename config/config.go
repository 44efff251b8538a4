package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configs/config.yaml and overlays environment variables
// (SERVER_PORT, MONGO_URI, JWT_SECRET_KEY, GEMINI_API_KEY, ...).
func Load() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Could not find config.yaml, using environment variables only.")
	}

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "doppelx")
}
