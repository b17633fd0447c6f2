package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bcspragu/subsums/web"
	"github.com/namsral/flag"
	log "github.com/sirupsen/logrus"
)

func main() {
	fs := flag.NewFlagSetWithEnvPrefix(os.Args[0], "SUBSUMS", flag.ExitOnError)
	var (
		addr        = fs.String("addr", ":8080", "HTTP service address")
		maxElements = fs.Int("max_elements", web.DefaultMaxElements, "Longest input accepted by /api/groups")
		maxTuples   = fs.Uint64("max_tuples", web.DefaultMaxTuples, "Most sequences a single /api/sums request may enumerate")
		logLevel    = fs.String("log_level", "info", "Logging level: debug, info, warn or error")
	)
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	lvl, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("invalid log level: %v", err)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	srv := &http.Server{
		Addr: *addr,
		Handler: web.New(&web.Config{
			MaxElements: *maxElements,
			MaxTuples:   *maxTuples,
		}),
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("failed to shut down cleanly: %v", err)
		}
	}()

	log.WithFields(log.Fields{
		"max_elements": *maxElements,
		"max_tuples":   *maxTuples,
	}).Infof("Server is running on %q", *addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("ListenAndServe: ", err)
	}
}
