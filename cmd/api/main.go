package main

import (
	"io"
	"log"
	"os"

	"github.com/holidaydesk/backoffice/internal/config"
	"github.com/holidaydesk/backoffice/internal/logging"
	"github.com/holidaydesk/backoffice/internal/repository/eventsapi"
	"github.com/holidaydesk/backoffice/internal/repository/postgres"
	"github.com/holidaydesk/backoffice/internal/service"
	"github.com/holidaydesk/backoffice/internal/store"
	transport "github.com/holidaydesk/backoffice/internal/transport/http"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr, "backoffice-api")
		if err != nil {
			log.Printf("logstash disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stderr, writer))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	catalogs := service.NewCatalogService(postgres.NewCatalogRepo(db))
	builder := service.NewBuilderService(catalogs)
	packages := service.NewPackageService(
		store.NewAdapter(postgres.NewPackageRepo(db)),
		eventsapi.NewClient(cfg.EventsAPIBaseURL, cfg.EventsAPITimeout),
	)

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterCatalogs(e, catalogs)
	transport.RegisterBuilder(e, builder)
	transport.RegisterPackages(e, packages)
	transport.RegisterAPISpec(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
