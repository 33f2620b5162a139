package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	Database Database `envPrefix:"DB_"`
	Mollie   Mollie   `envPrefix:"MOLLIE_"`
	Auth     Auth     `envPrefix:"AUTH_"`
	Download Download `envPrefix:"DOWNLOAD_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type Database struct {
	// sqlite or mysql
	Driver string `env:"DRIVER" envDefault:"sqlite"`
	DSN    string `env:"DSN" envDefault:"contentshop.db"`
}

type Mollie struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.mollie.com"`
	APIKey     string `env:"API_KEY"`
}

type Auth struct {
	// secret signs both session and download tokens
	Secret        string `env:"SECRET"`
	SessionTTLHrs int    `env:"SESSION_TTL_HOURS" envDefault:"72"`
	SessionCookie string `env:"SESSION_COOKIE" envDefault:"session_token"`
	SecureCookies bool   `env:"SECURE_COOKIES" envDefault:"false"`
}

type Download struct {
	TokenTTLMinutes int `env:"TOKEN_TTL_MINUTES" envDefault:"30"`
}
