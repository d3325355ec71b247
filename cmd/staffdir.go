package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staffdir/pkg/config"
	"staffdir/pkg/i18n"
	"staffdir/pkg/persist"
	"staffdir/pkg/server"
	"staffdir/pkg/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Command line flags (defaults come from the environment)
	var (
		addr        = flag.String("addr", cfg.Server.Addr, "Listen address")
		dataFile    = flag.String("data-file", cfg.Store.DataFile, "Snapshot file path for persistence")
		storeFormat = flag.String("store-format", cfg.Store.Format, "Snapshot payload format: json or binary")
		debounce    = flag.Duration("debounce", cfg.Store.Debounce, "Persistence coalescing window")
		seed        = flag.Int("seed", 0, "Generate N sample employees into an empty directory")
		showHelp    = flag.Bool("help", false, "Show help message")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nstaffdir is an employee directory server with in-memory state and snapshot persistence.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                   # Start with defaults\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -addr :9090 -store-format binary  # Custom port, compact snapshots\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -seed 200                         # Fill an empty directory with sample data\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nSafety Note:\n")
		fmt.Fprintf(os.Stderr, "  Writes are debounced; a hard kill loses at most the last window.\n")
		fmt.Fprintf(os.Stderr, "  Graceful shutdown (SIGINT/SIGTERM) always flushes the final state.\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if err := i18n.Load(mustSubLocales()); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	encoding := persist.EncodingJSON
	if *storeFormat == "binary" {
		encoding = persist.EncodingBinary
	} else if *storeFormat != "json" {
		log.Fatalf("Invalid -store-format %q (want json or binary)", *storeFormat)
	}

	st := store.New(
		store.WithPersister(persist.NewFile(*dataFile, encoding)),
		store.WithDebounce(*debounce),
	)
	defer st.Close()

	log.Printf("INFO: Loading data from: %s", *dataFile)
	if err := st.Load(); err != nil {
		log.Fatalf("Failed to load snapshot: %v", err)
	}

	if *seed > 0 {
		if st.Len() > 0 {
			log.Printf("WARN: Directory already has %d employees, skipping -seed", st.Len())
		} else {
			seedEmployees(st, *seed)
			log.Printf("INFO: Seeded %d sample employees", st.Len())
		}
	}

	srv := server.NewServer(st, cfg.CORS.AllowedOrigins)
	srv.Start()
	defer srv.Stop()

	httpServer := &http.Server{
		Addr:    *addr,
		Handler: srv.Handler(),
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting staffdir server on %s", *addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Flush the final state; the debounce window gives no guarantee here
	log.Printf("INFO: Saving data to: %s", *dataFile)
	if err := st.SaveNow(); err != nil {
		log.Printf("ERROR: Final save failed: %v", err)
	}

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
