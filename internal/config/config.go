package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Port           int           `yaml:"port"`
	DbName         string        `yaml:"db_name"`
	JwtTTL         time.Duration `yaml:"jwt_ttl"`
	AtomicCheckout bool          `yaml:"atomic_checkout"` // run checkout writes inside a single transaction
	LogLevel       string        `yaml:"log_level"`
	LogJSON        bool          `yaml:"log_json"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

type Private struct {
	Mongo             Mongo  `yaml:"mongo"`
	AccessTokenSecret string `yaml:"access_token_secret"`
	UserTokenSecret   string `yaml:"user_token_secret"`
	PaymentSecretKey  string `yaml:"payment_secret_key"`
}

type Mongo struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Uri      string `yaml:"uri"` // overrides user/password/host when set
}

// AccessSecret signs and verifies session tokens.
func (c *Config) AccessSecret() string {
	return c.private.AccessTokenSecret
}

// UserSecret is the second recognized signing secret. Kept for parity with
// the deployed environment; the session token service does not use it.
func (c *Config) UserSecret() string {
	return c.private.UserTokenSecret
}

func (c *Config) PaymentKey() string {
	return c.private.PaymentSecretKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

// MongoURI builds the connection string for the document store.
func (c *Config) MongoURI() string {
	if c.private.Mongo.Uri != "" {
		return c.private.Mongo.Uri
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		c.private.Mongo.User, c.private.Mongo.Password, c.private.Mongo.Host)
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

// applyEnv overrides secrets and credentials with the environment
// variables the original deployment recognized.
func applyEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_USER"); v != "" {
		cfg.private.Mongo.User = v
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		cfg.private.Mongo.Password = v
	}
	if v := os.Getenv("ACCESS_TOKEN_SECRET"); v != "" {
		cfg.private.AccessTokenSecret = v
	}
	if v := os.Getenv("USER_TOKEN"); v != "" {
		cfg.private.UserTokenSecret = v
	}
	if v := os.Getenv("PAYMENT_SECRET_KEY"); v != "" {
		cfg.private.PaymentSecretKey = v
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	applyEnv(cfg)

	if cfg.Public.Port == 0 {
		cfg.Public.Port = 5000
	}
	if cfg.Public.JwtTTL == 0 {
		cfg.Public.JwtTTL = 12 * time.Hour
	}
	if cfg.Public.DbName == "" {
		cfg.Public.DbName = "portfolio"
	}
	return cfg
}
