package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/samvad-hq/storefront-console/internal/config"
	"github.com/samvad-hq/storefront-console/internal/console"
	"github.com/samvad-hq/storefront-console/internal/logger"
	"github.com/samvad-hq/storefront-console/internal/storage"
	"github.com/samvad-hq/storefront-console/internal/web"
	"github.com/samvad-hq/storefront-console/pkg/apiclient"
	"github.com/samvad-hq/storefront-console/pkg/operations"
	"github.com/samvad-hq/storefront-console/pkg/publishers"
)

const readHeaderTimeout = 10 * time.Second

// Console is the admin console runtime. It owns the HTTP server, the activity
// journal and the outcome publishers.
type Console struct {
	cfg     *config.Config
	log     logger.Logger
	store   storage.Store
	fanout  *publishers.Fanout
	service *console.Service
	server  *http.Server
}

// NewConsole builds the console runtime from config.
func NewConsole(ctx context.Context, cfg *config.Config, log logger.Logger) (*Console, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	log = logger.Ensure(log)
	if ctx == nil {
		ctx = context.Background()
	}

	fanout, err := buildFanout(ctx, cfg.PublishersFile, log)
	if err != nil {
		return nil, err
	}

	storeOpts := storage.Options{
		EntryTTL:        cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	}
	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storeOpts)
	if err != nil {
		_ = fanout.Close()
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"entry_ttl_seconds":        int(cfg.StorageTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	service := NewService(cfg, fanout, store, log)
	handler, err := web.NewRouter(service, web.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		ActivityLimit:  cfg.ActivityLimit,
		Log:            log,
	})
	if err != nil {
		_ = fanout.Close()
		_ = store.Close()
		return nil, fmt.Errorf("build router: %w", err)
	}

	return &Console{
		cfg:     cfg,
		log:     log,
		store:   store,
		fanout:  fanout,
		service: service,
		server: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// NewService wires the console service to the configured remote API.
// fanout and store may be nil.
func NewService(cfg *config.Config, fanout *publishers.Fanout, store storage.Store, log logger.Logger) *console.Service {
	client := apiclient.NewClient(apiclient.NewRestyTransport(cfg.RequestTimeout))
	var journal console.Journal
	if store != nil {
		journal = store
	}
	var events console.EventPublisher
	if fanout != nil {
		events = fanout
	}
	return console.NewService(operations.Default(), client, apiclient.NewEndpoint(cfg.APIBaseURL), events, log, journal)
}

// Run serves the console until the context is cancelled.
func (c *Console) Run(ctx context.Context) error {
	if c == nil || c.server == nil {
		return fmt.Errorf("console is not initialized")
	}
	defer c.closeResources()

	c.log.InfoObj("console listening", "console_state", map[string]any{
		"listen_addr":      c.cfg.ListenAddr,
		"api_base_url":     c.service.BaseURL(),
		"publishers_count": c.fanout.Size(),
		"storage_type":     c.cfg.StorageType,
	})
	return serve(ctx, c.server, c.cfg.ShutdownTimeout, c.log)
}

// buildFanout loads sinks from path. An empty path yields a fanout with no publishers.
func buildFanout(ctx context.Context, path string, log logger.Logger) (*publishers.Fanout, error) {
	if strings.TrimSpace(path) == "" {
		log.InfoObj("no publishers file configured; outcome events disabled", "publishers_file", path)
		return publishers.NewFanout(nil), nil
	}

	publisherReg, err := publishers.LoadRegistry(path)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}
	enabledPublishers := publisherReg.Enabled()

	pubClients, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), enabledPublishers, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}

	publisherSummaries := make([]map[string]string, 0, len(enabledPublishers))
	for _, pubCfg := range enabledPublishers {
		publisherSummaries = append(publisherSummaries, map[string]string{
			"id":   pubCfg.ID,
			"type": pubCfg.Type,
		})
	}
	log.InfoObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(publisherSummaries),
		"publishers": publisherSummaries,
	})
	return publishers.NewFanout(pubClients), nil
}

// closeResources releases the journal and publisher clients, logging any errors encountered.
func (c *Console) closeResources() {
	if err := c.fanout.Close(); err != nil {
		c.log.ErrorObj("publishers close failed", "error", err.Error())
	}
	if c.store == nil {
		return
	}
	if err := c.store.Close(); err != nil {
		c.log.ErrorObj("storage close failed", "error", err.Error())
	}
}
