package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/syllo/pkg/syllo"
	"github.com/cognicore/syllo/pkg/syllo/config"
	"github.com/cognicore/syllo/pkg/syllo/store/sqlite"
	"github.com/cognicore/syllo/pkg/syllo/template"
)

type serverConfig struct {
	Addr         string `yaml:"addr"`
	DBPath       string `yaml:"db_path"`
	Templates    string `yaml:"templates"`
	Translations string `yaml:"translations"`
}

func main() {
	configPath := flag.String("config", "", "Path to server config YAML (optional)")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	flag.Parse()

	conf, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *addr != "" {
		conf.Addr = *addr
	}
	if conf.Addr == "" {
		conf.Addr = ":8080"
	}

	ctx := context.Background()
	engine, cleanup, err := buildEngine(ctx, conf)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         conf.Addr,
		Handler:      newRouter(engine),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", conf.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("serve: %v", err)
	}
}

func loadConfig(path string) (serverConfig, error) {
	var conf serverConfig
	if path == "" {
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, err
	}
	return conf, nil
}

// buildEngine assembles the quiz engine from the configured sources. A
// SQLite library takes precedence over a YAML one; with neither, the
// built-in library serves.
func buildEngine(ctx context.Context, conf serverConfig) (*syllo.Engine, func(), error) {
	cleanup := func() {}

	loader := config.Loader{
		TemplatesPath:    conf.Templates,
		TranslationsPath: conf.Translations,
	}
	comp, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}

	library := comp.Library
	if conf.DBPath != "" {
		st, err := sqlite.Open(ctx, conf.DBPath)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { st.Close() }

		templates, err := st.LoadTemplates(ctx)
		if err != nil {
			st.Close()
			return nil, nil, err
		}
		library, err = template.NewLibrary(templates)
		if err != nil {
			st.Close()
			return nil, nil, err
		}
	}

	engine, err := syllo.New(syllo.Options{
		Library: library,
		Bundle:  comp.Bundle,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return engine, cleanup, nil
}
