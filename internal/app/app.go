package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/doggallery/internal/config"
	"github.com/five82/doggallery/internal/dogapi"
	"github.com/five82/doggallery/internal/logger"
	"github.com/five82/doggallery/internal/prefs"
	"github.com/five82/doggallery/internal/state"
	"github.com/five82/doggallery/internal/ui"
)

// Options configure the gallery application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/doggallery/prefs.toml
	ThemeName  string // overrides the saved theme for this run
	LogLevel   string // overrides log.level from the config file
	Version    string
}

// session holds everything Run wires together before handing off to the UI.
type session struct {
	cfg    config.Config
	log    *logger.Logger
	client *dogapi.Client
	store  *state.Store
	ui     ui.Options
}

// Run boots the gallery TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	s, err := newSession(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = s.log.Close() }()

	watchShutdown(ctx, s.store, s.log)

	s.log.WithField("base_url", s.client.BaseURL()).Info("starting gallery")
	if err := ui.Run(s.ui); err != nil {
		s.log.WithError(err).Error("ui exited with error")
		return fmt.Errorf("run ui: %w", err)
	}
	s.store.Close()
	s.log.Info("gallery closed")
	return nil
}

func newSession(ctx context.Context, opts Options) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Log.Level = level
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	prefsPath := opts.PrefsPath
	if strings.TrimSpace(prefsPath) == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		// Saved preferences are optional; carry on with defaults.
		log.WithError(err).Warn("load prefs failed")
	}

	themeName := userPrefs.Theme
	if name := strings.TrimSpace(opts.ThemeName); name != "" {
		themeName = name
	}

	client, err := dogapi.NewClient(dogapi.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: userAgent(cfg.API.UserAgent, opts.Version),
		Logger:    log,
	})
	if err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("init dog api client: %w", err)
	}

	store := &state.Store{}
	ctx = log.WithContext(ctx)

	return &session{
		cfg:    cfg,
		log:    log,
		client: client,
		store:  store,
		ui: ui.Options{
			Context:      ctx,
			Fetcher:      client,
			Store:        store,
			FetchTimeout: cfg.API.Timeout,
			ThemeName:    themeName,
			Columns:      userPrefs.Columns,
			PrefsPath:    prefsPath,
		},
	}, nil
}

func userAgent(configured, version string) string {
	if ua := strings.TrimSpace(configured); ua != "" {
		return ua
	}
	version = strings.TrimSpace(version)
	if version == "" {
		version = "dev"
	}
	return "doggallery/" + version
}
