package platform

// Config contains host platform API settings.
type Config struct {
	BaseURL string `env:"PLATFORM_BASE_URL" envDefault:"http://localhost:9000"`
	APIKey  string `env:"PLATFORM_API_KEY"`
	Timeout int    `env:"PLATFORM_TIMEOUT"  envDefault:"30"`
}
