package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Blob       BlobConfig       `yaml:"blob"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	AdminRateLimit  int           `yaml:"admin_rate_limit" env:"SERVER_ADMIN_RATE_LIMIT" env-default:"30"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// BlobConfig holds object storage (NATS JetStream) settings.
type BlobConfig struct {
	URL    string `yaml:"url"    env:"BLOB_NATS_URL" env-default:"nats://localhost:4222"`
	Bucket string `yaml:"bucket" env:"BLOB_BUCKET"   env-default:"linguaweb"`
}

// OpenAIConfig holds settings for the external text and speech services.
type OpenAIConfig struct {
	APIKey   string `yaml:"api_key"   env:"OPENAI_API_KEY" env-required:"true"`
	BaseURL  string `yaml:"base_url"  env:"OPENAI_BASE_URL"`
	GPTModel string `yaml:"gpt_model" env:"OPENAI_GPT_MODEL" env-default:"gpt-4-1106-preview"`
	TTSModel string `yaml:"tts_model" env:"OPENAI_TTS_MODEL" env-default:"tts-1"`
	STTModel string `yaml:"stt_model" env:"OPENAI_STT_MODEL" env-default:"whisper-1"`
	Voice    string `yaml:"voice"     env:"OPENAI_VOICE"     env-default:"alloy"`
}

// DictionaryConfig holds allowed-word list and upload settings.
type DictionaryConfig struct {
	// WordsFile overrides the embedded allowed-word list when set.
	WordsFile      string `yaml:"words_file"       env:"DICT_WORDS_FILE"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"DICT_MAX_UPLOAD_BYTES" env-default:"1048576"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
