package main

import (
	"alcyxob/run-tracker/internal/cli"
	"alcyxob/run-tracker/internal/config"
	"alcyxob/run-tracker/internal/importer"
	"alcyxob/run-tracker/internal/repository/flatfile"
	"alcyxob/run-tracker/internal/service"
	"alcyxob/run-tracker/internal/storage"
	"context"
	"errors"
	"log"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	// --- Configuration ---
	flags := config.NewFlagSet(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("FATAL: %v", err)
	}
	cfg, err := config.LoadConfig(flags)
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	loc, err := cfg.Import.TimeLocation()
	if err != nil {
		log.Fatalf("FATAL: Invalid import location: %v", err)
	}

	// No signal handling: with store.atomic an interrupted save leaves the previous file intact
	ctx := context.Background()

	// --- Initialize Storage & Repository ---
	fileStorage := storage.NewLocalStorage(cfg.Store.Atomic)
	runRepo := flatfile.NewFlatFileRunRepository(cfg.Store.Path, fileStorage)

	// --- Initialize Services ---
	runService := service.NewRunService(runRepo)
	if err := runService.Load(ctx); err != nil {
		log.Printf("WARN: Continuing with %d runs read from '%s': %v", len(runService.AllRuns()), cfg.Store.Path, err)
	}
	fitImporter := importer.NewFITImporter(loc)

	// --- One-shot import mode ---
	if len(cfg.Import.Files) > 0 {
		if err := importFiles(ctx, runService, fitImporter, cfg.Import.Files); err != nil {
			log.Fatalf("FATAL: %v", err)
		}
		return
	}

	// --- Interactive session ---
	app := cli.NewApp(runService, fitImporter, os.Stdin, os.Stdout, cfg.History.Limit, nil)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func importFiles(ctx context.Context, runService service.RunService, fitImporter *importer.FITImporter, paths []string) error {
	imported := 0
	var errs []error
	for _, path := range paths {
		runs, err := fitImporter.ImportFile(ctx, path)
		if err != nil {
			log.Printf("ERROR: %v", err)
			errs = append(errs, err)
			continue
		}
		for _, run := range runs {
			if err := runService.AddRun(ctx, run); err != nil {
				return err
			}
			log.Printf("INFO: Imported %s", run)
			imported++
		}
	}
	log.Printf("INFO: Imported %d run(s) from %d file(s)", imported, len(paths))
	return errors.Join(errs...)
}
