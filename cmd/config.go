package cmd

// Config carries process configuration loaded from the environment.
// The fee overrides are optional; when all three are set they replace the
// default fee schedule at startup.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	InitialServiceFee   string
	InitialMarkup       string
	InitialDeliveryCost string
}
