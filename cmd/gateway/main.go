package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"
	"golang.org/x/sync/errgroup"

	"github.com/atinyakov/go-movie-gateway/internal/app/server"
	grpcserver "github.com/atinyakov/go-movie-gateway/internal/app/server/grpc"
	"github.com/atinyakov/go-movie-gateway/internal/app/service"
	"github.com/atinyakov/go-movie-gateway/internal/config"
	"github.com/atinyakov/go-movie-gateway/internal/gateway"
	"github.com/atinyakov/go-movie-gateway/internal/httpx"
	"github.com/atinyakov/go-movie-gateway/internal/logger"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

const shutdownTimeout = 10 * time.Second

func main() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))

	options, err := config.Parse()
	exitOnError("config", err)

	log := logger.New()
	exitOnError("logger", log.Init(options.LogLevel, "json"))
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, options, log); err != nil {
		log.Log.Error("gateway stopped", zap.Error(err))
		log.Sync()
		stop()
		exitOnError("serve", err)
	}
}

func run(ctx context.Context, options *config.Options, log *logger.Logger) error {
	zapLogger := log.Log

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	client := httpx.NewClient(httpx.Options{Timeout: options.UpstreamTimeout})
	fetcher := gateway.NewFetcher(client, log.Named("fetcher"))
	movieGateway := gateway.New(fetcher, options.Sources(), log.Named("gateway"))
	manager := service.NewMovieManager(movieGateway, log.Named("manager"))

	srv := &http.Server{
		Addr:    options.Port,
		Handler: server.Init(manager, zapLogger),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if options.EnableHTTPS {
			certs := &autocert.Manager{
				Cache:      autocert.DirCache("cache-dir"),
				Prompt:     autocert.AcceptTOS,
				HostPolicy: autocert.HostWhitelist(options.TLSHosts...),
			}
			srv.Addr = ":443"
			srv.TLSConfig = certs.TLSConfig()
			zapLogger.Info("Server is running with TLS", zap.Strings("hosts", options.TLSHosts))
			err = srv.ListenAndServeTLS("", "")
		} else {
			zapLogger.Info("Server is running", zap.String("hostname", options.Port))
			err = srv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	var grpcSrv *grpcserver.Server
	if options.GRPCAddress != "" {
		grpcSrv = grpcserver.New(options.GRPCAddress, log.Named("grpc"), manager)
		g.Go(grpcSrv.Start)
	}

	g.Go(func() error {
		<-ctx.Done()
		zapLogger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if grpcSrv != nil {
			grpcSrv.GracefulStop()
		}
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func exitOnError(stage string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", stage, err)
	os.Exit(1)
}
