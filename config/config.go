// server/config/config.go
package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	AllowedOrigins  []string      `mapstructure:"allowedOrigins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// AuthConfig holds the single admin account. PasswordHash is a bcrypt hash.
type AuthConfig struct {
	AdminEmail   string `mapstructure:"adminEmail"`
	PasswordHash string `mapstructure:"passwordHash"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// CatalogConfig selects where the initial collection comes from. Source is
// "file", "mongo" or "none".
type CatalogConfig struct {
	Source   string `mapstructure:"source"`
	SeedFile string `mapstructure:"seedFile"`
}

type MongoConfig struct {
	URI        string `mapstructure:"uri"`
	DBName     string `mapstructure:"dbName"`
	Collection string `mapstructure:"collection"`
}

type S3Config struct {
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"accessKeyID"`
	SecretAccessKey  string `mapstructure:"secretAccessKey"`
	CloudFrontDomain string `mapstructure:"cloudFrontDomain"`
	Prefix           string `mapstructure:"prefix"`
}

// Enabled reports whether catalog export has somewhere to go.
func (c S3Config) Enabled() bool {
	return c.Bucket != "" && c.Region != ""
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Auth    AuthConfig    `mapstructure:"auth"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	S3      S3Config      `mapstructure:"s3"`
}

// LoadConfig reads config.yaml from path, then lets .env and the process
// environment override it.
func LoadConfig(path string) (config Config, err error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.allowedOrigins", []string{"http://localhost:5173"})
	v.SetDefault("server.shutdownTimeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("jwt.expiration", "24h")
	v.SetDefault("catalog.source", "file")
	v.SetDefault("catalog.seedFile", "config/datacenters.yaml")
	v.SetDefault("mongo.collection", "datacenters")
	v.SetDefault("s3.prefix", "exports")

	v.AutomaticEnv()

	_ = v.BindEnv("server.port", "SERVER_PORT")
	_ = v.BindEnv("server.mode", "GIN_MODE")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.pretty", "LOG_PRETTY")
	_ = v.BindEnv("auth.adminEmail", "ADMIN_EMAIL")
	_ = v.BindEnv("auth.passwordHash", "ADMIN_PASSWORD_HASH")
	_ = v.BindEnv("jwt.secret", "JWT_SECRET")
	_ = v.BindEnv("jwt.expiration", "JWT_EXPIRATION")
	_ = v.BindEnv("catalog.source", "CATALOG_SOURCE")
	_ = v.BindEnv("catalog.seedFile", "CATALOG_SEED_FILE")
	_ = v.BindEnv("mongo.uri", "MONGO_URI")
	_ = v.BindEnv("mongo.dbName", "MONGO_DBNAME")
	_ = v.BindEnv("mongo.collection", "MONGO_COLLECTION")
	_ = v.BindEnv("s3.bucket", "S3_BUCKET")
	_ = v.BindEnv("s3.region", "S3_REGION")
	_ = v.BindEnv("s3.accessKeyID", "S3_ACCESS_KEY_ID")
	_ = v.BindEnv("s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
	_ = v.BindEnv("s3.cloudFrontDomain", "S3_CLOUDFRONT_DOMAIN")
	_ = v.BindEnv("s3.prefix", "S3_PREFIX")

	// Without a config file only defaults and the environment apply.
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}
