package gorm

import (
	"log/slog"
	"os"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"github.com/sunthewhat/easy-cert-claim/common"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

func InitGorm() {
	db, err := Open(*common.Config.Postgres, common.Config.PostgresReplicas)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	slog.Info("GORM Connected!", "replicas", len(common.Config.PostgresReplicas))

	common.Gorm = db
}

// Open connects to the primary and registers any read replicas. Writes always
// go to the primary; plain reads are balanced across replicas.
func Open(dsn string, replicas []*string) (*gorm.DB, error) {
	lg := slogGorm.New(
		slogGorm.WithHandler(slog.Default().Handler()),
		slogGorm.WithSlowThreshold(100*time.Millisecond),
	)

	connector := postgres.New(
		postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		},
	)

	db, connectionErr := gorm.Open(connector, &gorm.Config{
		Logger:         lg,
		TranslateError: true,
	})
	if connectionErr != nil {
		return nil, connectionErr
	}

	var replicaDialectors []gorm.Dialector
	for _, replica := range replicas {
		if replica == nil || *replica == "" {
			continue
		}
		replicaDialectors = append(replicaDialectors, postgres.New(postgres.Config{
			DSN:                  *replica,
			PreferSimpleProtocol: true,
		}))
	}

	if len(replicaDialectors) > 0 {
		resolverErr := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicaDialectors,
			Policy:   dbresolver.RandomPolicy{},
		}))
		if resolverErr != nil {
			return nil, resolverErr
		}
	}

	return db, nil
}
