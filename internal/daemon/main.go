// Package daemon wires the database, the session storage and the web service together.
package daemon

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/feedback-collector/feedback-collector/internal/config"
	"github.com/feedback-collector/feedback-collector/internal/db"
	controller "github.com/feedback-collector/feedback-collector/internal/db/controller/feedback"
	"github.com/feedback-collector/feedback-collector/internal/db/dsn"
	"github.com/feedback-collector/feedback-collector/internal/web"
)

// SessionTable is the table the sql session storages use.
const SessionTable = "sessions"

// Daemon represents the main application daemon.
type Daemon struct {
	cfg            *config.Config
	db             *gorm.DB
	sessionStorage fiber.Storage
	webService     *web.Service
}

// New opens the database, creates the schema and builds the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	if err = controller.EnsureSchema(gormDB); err != nil {
		return nil, err
	}

	if count, errCount := controller.Count(gormDB); errCount == nil {
		log.Info().Str("engine", cfg.DB.Engine).Int64("entries", count).Msg("database ready")
	}

	d := &Daemon{
		cfg:            cfg,
		db:             gormDB,
		sessionStorage: SessionStorage(cfg),
	}

	d.webService, err = web.New(cfg, gormDB, web.Options{
		SessionStorage: d.sessionStorage,
		FastShutDown:   cfg.DevMode,
	})
	if err != nil {
		d.Close()
		return nil, err
	}

	return d, nil
}

// SessionStorage returns the session backend matching the database engine.
// sqlite keeps sessions in memory.
func SessionStorage(cfg *config.Config) fiber.Storage {
	switch cfg.DB.Engine {
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.MySQL(cfg),
			Table:         SessionTable,
		})
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Postgres(cfg),
			Table:         SessionTable,
		})
	default:
		return nil
	}
}

// Start serves until SIGINT or SIGTERM and a graceful shutdown completed.
func (d *Daemon) Start() error {
	defer d.Close()

	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	errCh := make(chan error, 1)

	go func() {
		errCh <- d.webService.Start(addr)
	}()

	go d.webService.WaitShutdown()

	return <-errCh
}

// Close releases the session storage and the database pool.
func (d *Daemon) Close() {
	if d.sessionStorage != nil {
		if err := d.sessionStorage.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close session storage")
		}
	}

	if d.db == nil {
		return
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		log.Error().Err(err).Msg("failed to get sql handle")
		return
	}

	if err = sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database")
	}
}
