package config

import (
	"context"
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fomosandwich/sandwich-cart/store"
)

type Config struct {
	Port        string
	GinMode     string
	StoreDriver string // mongo | mysql | sqlite | memory
	MongoURI    string
	MongoDB     string
	MySQLDSN    string
	SQLitePath  string
}

func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", ""),
		StoreDriver: getEnv("STORE_DRIVER", "mongo"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "fomosandwich"),
		MySQLDSN:    getEnv("MYSQL_DSN", ""),
		SQLitePath:  getEnv("SQLITE_PATH", "sandwich-cart.db"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenStore membuka order store sesuai driver di konfigurasi.
func OpenStore(ctx context.Context, cfg Config) (store.OrderStore, error) {
	switch cfg.StoreDriver {
	case "mongo":
		return store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDB)
	case "mysql":
		if cfg.MySQLDSN == "" {
			return nil, fmt.Errorf("MYSQL_DSN is required when STORE_DRIVER=mysql")
		}
		db, err := gorm.Open(mysql.Open(cfg.MySQLDSN), &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, err
		}
		return store.NewGormStore(db)
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, err
		}
		return store.NewGormStore(db)
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
