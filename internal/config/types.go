package config

// Config holds every setting the server reads from the environment.
type Config struct {
	MongoURI string `env:"MONGO_URI,required,notEmpty"`
	DBName   string `env:"DB_NAME,required,notEmpty"`

	JWTSecret  string `env:"JWT_SECRET,required,notEmpty"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10"`

	// only used for the OAuth handshake cookie
	SessionSecret string `env:"SESSION_SECRET"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleCallbackURL  string `env:"GOOGLE_CALLBACK_URL" envDefault:"http://localhost:8080/api/auth/google/callback"`

	// optional; when empty the OAuth callback answers with JSON
	FrontendURL string `env:"FRONTEND_URL"`

	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}
