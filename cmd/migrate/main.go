package main

import (
	"errors"
	"flag"
	"log"

	"social_feed/internal/pkg/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	down := flag.Bool("down", false, "roll back one version")
	force := flag.Int("force", -1, "force version (clears dirty state)")
	source := flag.String("path", "file://migrations", "migrations source")
	flag.Parse()

	config.LoadConfig()

	m, err := migrate.New(*source, config.GlobalConfig.Database.URL())
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	switch {
	case *force >= 0:
		err = m.Force(*force)
	case *down:
		err = m.Steps(-1)
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal(err)
	}

	version, dirty, _ := m.Version()
	log.Printf("Migration successful, version=%d dirty=%v", version, dirty)
}
