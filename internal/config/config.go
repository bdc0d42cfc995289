package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvTest  = "test"
	EnvProd  = "prod"

	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	SessionMemory = "memory"
	SessionRedis  = "redis"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"prod"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Storage    Storage    `yaml:"storage"`
	PostgreSQL PostgreSQL `yaml:"postgresql"`
	Session    Session    `yaml:"session"`
	Redis      Redis      `yaml:"redis"`
	OTP        OTP        `yaml:"otp"`
	Location   Location   `yaml:"location"`
	Minio      Minio      `yaml:"minio"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout         time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	AllowedOrigins  []string      `yaml:"allowed_origins" env-default:"*"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
}

type PostgreSQL struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	Username string `yaml:"username" env:"POSTGRES_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	Database string `yaml:"database" env:"POSTGRES_DB" env-default:"pinfinds"`
	MaxConns int32  `yaml:"max_conns" env-default:"10"`
}

type Session struct {
	Backend    string        `yaml:"backend" env:"SESSION_BACKEND" env-default:"memory"`
	Secret     string        `yaml:"secret" env:"SESSION_SECRET" env-required:"true"`
	TTL        time.Duration `yaml:"ttl" env-default:"720h"`
	CookieName string        `yaml:"cookie_name" env-default:"sid"`
	Secure     bool          `yaml:"secure"`
	KeyPrefix  string        `yaml:"key_prefix" env-default:"session:"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env-default:"0"`
}

type OTP struct {
	Code          string        `yaml:"code" env-default:"123456"`
	DispatchDelay time.Duration `yaml:"dispatch_delay"`
}

type Location struct {
	BaseURL string        `yaml:"base_url" env-default:"https://piin.vercel.app"`
	Timeout time.Duration `yaml:"timeout" env-default:"5s"`
	RPS     float64       `yaml:"rps" env-default:"5"`
	Burst   int           `yaml:"burst" env-default:"10"`
}

type Minio struct {
	Enabled         bool   `yaml:"enabled" env:"MINIO_ENABLED"`
	Endpoint        string `yaml:"endpoint" env:"MINIO_ENDPOINT"`
	AccessKeyID     string `yaml:"access_key_id" env:"MINIO_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"MINIO_SECRET_ACCESS_KEY"`
	UseSSL          bool   `yaml:"use_ssl"`
	Bucket          string `yaml:"bucket" env-default:"provider-images"`
	PublicURL       string `yaml:"public_url"`
	MaxUploadSize   int64  `yaml:"max_upload_size" env-default:"5242880"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadByPath(configPath)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("config reading error: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
