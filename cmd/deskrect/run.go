package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/frudas24/deskrect/internal/app"
	"github.com/frudas24/deskrect/internal/config"
	"github.com/frudas24/deskrect/internal/monitor"
	"github.com/frudas24/deskrect/internal/session"
	"github.com/frudas24/deskrect/internal/wininput"
	"github.com/frudas24/deskrect/internal/winlock"
)

// run wires the application and blocks until shutdown.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logStartup(cfg)

	sess := session.New(cfg.UIPassword)

	injector, err := wininput.NewInjector()
	if err != nil {
		return err
	}

	var keeper winlock.Keeper = winlock.Passthrough{}
	if cfg.ScrollLock {
		keeper = winlock.New()
	}

	appInstance, err := app.New(cfg, sess, injector, keeper, monitor.ListMonitors)
	if err != nil {
		return err
	}
	if err := appInstance.Start(); err != nil {
		return err
	}
	defer func() {
		if err := appInstance.Stop(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux)
	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("DeskRect starting")
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Printf("env check: ok (%s)", envPath)
	} else {
		log.Printf("env check: missing (%s)", envPath)
	}
	log.Printf("calib path: %s", cfg.CalibPath)
	log.Printf("scroll lock: %t", cfg.ScrollLock)
	logListenStatus(cfg.ListenAddr)
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("local url: http://%s", net.JoinHostPort(host, port))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
