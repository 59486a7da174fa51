package cmd

// Config carries the environment-driven settings of the application.
type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	PaymentMethod string
}
