package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ardanlabs/conf"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"directory/backend/foundation/web"
	"directory/backend/internal/auth"
	"directory/backend/internal/pkg/config"
	"directory/backend/internal/pkg/recordstore"
	"directory/backend/internal/router"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("running server: %v", err)
	}
}

func run() error {
	var flags struct {
		Web struct {
			APIHost string `conf:"default:0.0.0.0:8080"`
		}
		ConfigFile string `conf:"default:config.yaml"`
	}

	if err := conf.Parse(os.Args[1:], "DIRECTORY", &flags); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			usage, err := conf.Usage("DIRECTORY", &flags)
			if err != nil {
				return errors.Wrap(err, "generating config usage")
			}
			fmt.Println(usage)
			return nil
		}
		return errors.Wrap(err, "parsing config")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	defer logger.Sync()

	cfg, err := config.NewConfig(flags.ConfigFile)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	authenticator, err := auth.New(cfg.JWTKey)
	if err != nil {
		return errors.Wrap(err, "constructing auth")
	}

	store := recordstore.NewClient(recordstore.Config{
		BaseURL:   cfg.StoreBaseURL,
		ProjectID: cfg.StoreProjectID,
		APIKey:    cfg.StoreAPIKey,
	}, logger)

	app := web.NewApp(logger)

	logger.Info("starting server", zap.String("host", flags.Web.APIHost))

	r := router.NewRouter(app, store, cfg, flags.Web.APIHost, authenticator)

	return r.Init()
}
