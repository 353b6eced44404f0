// syllo-seed writes a template library into a SQLite store or a YAML
// file, starting from the built-in library or an existing YAML one.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/cognicore/syllo/pkg/syllo/config"
	"github.com/cognicore/syllo/pkg/syllo/store/sqlite"
	"github.com/cognicore/syllo/pkg/syllo/template"
)

func main() {
	input := flag.String("input", "", "Templates YAML to seed from (default: built-in library)")
	dbPath := flag.String("db", "", "SQLite database to write")
	outPath := flag.String("out", "", "Templates YAML to write")
	flag.Parse()

	if *dbPath == "" && *outPath == "" {
		log.Fatal("--db or --out required")
	}

	library := template.Builtin()
	if *input != "" {
		lib, err := config.LoadTemplates(*input)
		if err != nil {
			log.Fatalf("load templates: %v", err)
		}
		library = lib
	}
	templates := library.All()

	if *dbPath != "" {
		ctx := context.Background()
		st, err := sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		defer st.Close()

		if err := st.SaveTemplates(ctx, templates); err != nil {
			log.Fatalf("save templates: %v", err)
		}
		log.Printf("wrote %d templates to %s", len(templates), *dbPath)
	}

	if *outPath != "" {
		if err := config.SaveTemplates(*outPath, templates); err != nil {
			log.Fatalf("write templates: %v", err)
		}
		log.Printf("wrote %d templates to %s", len(templates), *outPath)
	}
}
