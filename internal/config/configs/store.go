package configs

// Store configures the durable local credential storage. The sqlite file
// holding the session token and user snapshot lives under DataDir.
type Store struct {
	// DataDir is created on first use when missing.
	DataDir string `env:"DATA_DIR" envDefault:".simbu"`
}
