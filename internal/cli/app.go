package cli

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubeengine/internal/config"
	"github.com/SeamusWaldron/cubeengine/internal/logging"
	"github.com/SeamusWaldron/cubeengine/internal/session"
	"github.com/SeamusWaldron/cubeengine/internal/storage"
)

var errNoSession = errors.New("no active session; run 'cube new' or pass --session")

// app bundles what every command needs.
type app struct {
	cfg   *config.Config
	log   *zap.Logger
	db    *storage.DB
	svc   *session.Service
	state *session.StateFile
}

func defaultConfigPath() string {
	path, err := config.ExpandPath("~/.cube_engine/config.yaml")
	if err != nil {
		return ""
	}
	return path
}

// openApp loads config, logging, storage and the state file.
func openApp() (*app, error) {
	path := configPath
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log, err := logging.New(level, cfg.Log.Format, nil)
	if err != nil {
		return nil, err
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	state, err := openStateFile()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	return &app{
		cfg:   cfg,
		log:   log,
		db:    db,
		svc:   session.NewService(db, log),
		state: state,
	}, nil
}

func (a *app) Close() {
	_ = a.log.Sync()
	a.db.Close()
}

func openDB(cfg *config.Config) (*storage.DB, error) {
	path := dbPath
	if path == "" {
		var err error
		if path, err = config.ExpandPath(cfg.Storage.Path); err != nil {
			return nil, err
		}
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func openStateFile() (*session.StateFile, error) {
	if statePath != "" {
		return session.NewStateFile(statePath)
	}
	return session.NewDefaultStateFile()
}

// activeID returns the --session flag or the active session.
func (a *app) activeID() (string, error) {
	if sessionID != "" {
		return sessionID, nil
	}
	if id := a.state.ActiveID(); id != "" {
		return id, nil
	}
	return "", errNoSession
}

// activate records id as the active session.
func (a *app) activate(id string) error {
	if err := a.state.SetActive(id); err != nil {
		return err
	}
	if dbPath != "" {
		return a.state.SetDBPath(dbPath)
	}
	return nil
}

// withApp is the common RunE wrapper.
func withApp(fn func(a *app) error) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
