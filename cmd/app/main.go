package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"nexye/cmd"
	"nexye/internal/adapters/out/postgres/orderrepo"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	redisClient := goredis.NewClient(&goredis.Options{
		Addr: fmt.Sprintf("%s:%s", configs.RedisHost, configs.RedisPort),
	})

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient)

	warmup := app.CreateTokenWarmupJob()
	if err := warmup.Start(); err != nil {
		log.Fatalf("Failed to start token warm-up job: %v", err)
	}
	defer warmup.Stop()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		RedisHost: goDotEnvVariable("REDIS_HOST"),
		RedisPort: goDotEnvVariable("REDIS_PORT"),

		ShiprocketEmail:    goDotEnvVariable("SHIPROCKET_EMAIL"),
		ShiprocketPassword: goDotEnvVariable("SHIPROCKET_PASSWORD"),
		ShiprocketBaseURL:  goDotEnvVariable("SHIPROCKET_BASE_URL"),
		TokenFile:          goDotEnvVariable("TOKEN_FILE"),

		SessionSecret: goDotEnvVariable("SESSION_SECRET"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
