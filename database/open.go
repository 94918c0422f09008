package database

import (
	"fmt"

	"hotel-reservas/config"
)

// Open builds the backend selected by the configuration.
func Open(cfg config.Config) (Backend, error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		return NewFileBackend(cfg.Storage.FilePath), nil
	case config.DriverBolt:
		return NewBoltBackend(cfg.Storage.BoltPath)
	case config.DriverRedis:
		client, err := DialRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		return NewRedisBackend(client, cfg.Redis.Key), nil
	case config.DriverMongo:
		return DialMongo(cfg.Mongo.ConnString, cfg.Mongo.Database, cfg.Mongo.Collection)
	case config.DriverMemory:
		return NewMemoryBackend(nil), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
