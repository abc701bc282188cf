package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisHost string
	RedisPort string

	ShiprocketEmail    string
	ShiprocketPassword string
	ShiprocketBaseURL  string
	TokenFile          string

	SessionSecret string
}
