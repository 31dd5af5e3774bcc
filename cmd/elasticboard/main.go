package main

import (
	"context"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/elasticboard/elasticboard/internal/adapters/elasticsearch"
	"github.com/elasticboard/elasticboard/internal/adapters/googlemaps"
	"github.com/elasticboard/elasticboard/internal/adapters/pingboard"
	"github.com/elasticboard/elasticboard/internal/app"
	"github.com/elasticboard/elasticboard/internal/config"
	"github.com/elasticboard/elasticboard/internal/domain"
	"github.com/elasticboard/elasticboard/internal/ports"
)

func main() {
	configPath := flag.StringP("config", "c", "elasticboard.yml", "path to the configuration file")
	email := flag.String("email", "", "only sync users matching this email")
	recreateIndex := flag.Bool("recreate-index", false, "delete and recreate the index before syncing")
	verbose := flag.BoolP("verbose", "v", false, "enable debug logging")
	flag.Parse()

	// Configure logging based on verbosity
	var logger *slog.Logger
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	slog.SetDefault(logger)

	if err := run(context.Background(), *configPath, *email, *recreateIndex); err != nil {
		logger.Error("sync failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, email string, recreateIndex bool) error {
	logger := slog.Default()

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger.Info("configuration loaded",
		"config", configPath,
		"pingboardURL", settings.PingboardURL,
		"mapsConfigured", cfg.Maps.IsConfigured(),
		"elasticsearchConfigured", cfg.Elasticsearch.IsConfigured(),
		"index", settings.Index,
	)

	table := domain.DefaultFieldTable()
	table.AddCustomFields(customFields(cfg.Pingboard.CustomFields))

	source := pingboard.New(
		settings.PingboardURL,
		cfg.Pingboard.ClientID,
		cfg.Pingboard.ClientSecret,
		settings.PageSize,
		settings.HTTPTimeout,
	)
	if err := source.Authenticate(ctx); err != nil {
		return err
	}
	logger.Info("pingboard client authenticated")

	var geocoder ports.Geocoder
	if cfg.Maps.IsConfigured() {
		g, err := googlemaps.New(cfg.Maps.Key, settings.GeocodeReqsPerSec)
		if err != nil {
			return err
		}
		geocoder = g
		logger.Info("maps client initialized")
	} else if cfg.Maps.Service != "" && cfg.Maps.Service != config.ServiceGoogle {
		logger.Warn("unsupported maps service, geocoding disabled", "service", cfg.Maps.Service)
	} else {
		logger.Info("maps service not configured, geocoding disabled")
	}

	var searchIndex ports.SearchIndex
	if cfg.Elasticsearch.IsConfigured() {
		es, err := elasticsearch.New(cfg.Elasticsearch.Hosts, cfg.Elasticsearch.User, cfg.Elasticsearch.Secret)
		if err != nil {
			return err
		}
		searchIndex = es
	} else {
		logger.Info("elasticsearch not configured, indexing disabled")
	}

	mapping, err := elasticsearch.BuildUserIndexMapping(table)
	if err != nil {
		return err
	}

	sync := app.NewSyncService(
		source,
		geocoder,
		searchIndex,
		settings.Index,
		mapping,
		table,
		cfg.Maps.Fields,
		settings.GeocodeReqsPerSec,
	)

	return sync.Run(ctx, app.RunOptions{Email: email, RecreateIndex: recreateIndex})
}

// customFields converts configured custom-field entries into the domain form
func customFields(cfgFields map[string]config.CustomFieldConfig) map[string]domain.CustomField {
	fields := make(map[string]domain.CustomField, len(cfgFields))
	for id, cf := range cfgFields {
		fields[id] = domain.CustomField{Name: cf.Name, Type: domain.FieldType(cf.Type)}
	}
	return fields
}
