package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const LOCAL_DB_PATH string = "./database/reservas.json"
const BOLT_DB_PATH string = "./database/reservas.db"

const (
	DriverFile   = "file"
	DriverBolt   = "bolt"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`

	Storage struct {
		Driver   string `yaml:"driver"`
		FilePath string `yaml:"file_path"`
		BoltPath string `yaml:"bolt_path"`
	} `yaml:"storage"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Key      string `yaml:"key"`
	} `yaml:"redis"`

	Mongo struct {
		ConnString string `yaml:"conn_string"`
		Database   string `yaml:"database"`
		Collection string `yaml:"collection"`
	} `yaml:"mongo"`
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Hostname, c.Port)
}

func defaults() Config {
	var c Config
	c.Hostname = "localhost"
	c.Port = 3000
	c.LogLevel = "info"
	c.Storage.Driver = DriverFile
	c.Storage.FilePath = LOCAL_DB_PATH
	c.Storage.BoltPath = BOLT_DB_PATH
	c.Redis.Addr = "localhost:6379"
	c.Redis.Key = "reservas"
	c.Mongo.Database = "hotel-reservas"
	c.Mongo.Collection = "reservas"
	return c
}

// Load builds the configuration from defaults, the optional YAML file named
// by CONFIG_FILE and the environment, in that order. A .env file in the
// working directory is read first when it exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	c := defaults()
	if path, exist := os.LookupEnv("CONFIG_FILE"); exist && path != "" {
		fileBytes, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("cannot read config file %v: %v", path, err)
		}
		if err := yaml.Unmarshal(fileBytes, &c); err != nil {
			return Config{}, fmt.Errorf("cannot parse config file %v: %v", path, err)
		}
	}

	setString(&c.Hostname, "HOSTNAME")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.Storage.Driver, "STORAGE_DRIVER")
	setString(&c.Storage.FilePath, "RESERVAS_FILE")
	setString(&c.Storage.BoltPath, "BOLT_PATH")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Redis.Key, "REDIS_KEY")
	setString(&c.Mongo.ConnString, "MONGODB_CONNSTRING")
	setString(&c.Mongo.Database, "MONGODB_DATABASE")
	setString(&c.Mongo.Collection, "MONGODB_COLLECTION")
	if err := setInt(&c.Port, "PORT"); err != nil {
		return Config{}, err
	}
	if err := setInt(&c.Redis.DB, "REDIS_DB"); err != nil {
		return Config{}, err
	}

	c.Storage.Driver = strings.ToLower(c.Storage.Driver)
	switch c.Storage.Driver {
	case DriverFile, DriverBolt, DriverRedis, DriverMongo, DriverMemory:
	default:
		return Config{}, fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == DriverMongo && c.Mongo.ConnString == "" {
		return Config{}, fmt.Errorf("mongo storage needs MONGODB_CONNSTRING")
	}

	return c, nil
}

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}

func setString(dst *string, key string) {
	if val, err := GetSecret(key); err == nil && val != "" {
		*dst = val
	}
}

func setInt(dst *int, key string) error {
	val, err := GetSecret(key)
	if err != nil || val == "" {
		return nil
	}
	n, convErr := strconv.Atoi(val)
	if convErr != nil {
		return fmt.Errorf("invalid int for %v: %q", key, val)
	}
	*dst = n
	return nil
}
