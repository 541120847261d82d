package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"hunt-api/internal/routers"
	"hunt-api/internal/shared"
	"hunt-api/internal/tracing"

	"github.com/manifold-inc/manifold-sdk/lib/eflag"
	"go.uber.org/zap"
)

func main() {
	// Flags / ENV Variables
	addr := flag.String("addr", shared.DefaultAddr, "Listen address")
	debug := flag.Bool("debug", false, "Debug enabled")
	metricsAPIKey := flag.String("metrics-api-key", "", "Metrics api key")
	bodyLimit := flag.String("body-limit", shared.DefaultBodyLimit, "Max request body size")
	maxHeaderBytes := flag.Int("max-header-bytes", shared.DefaultMaxHeaderBytes, "Max request header size")
	otelEndpoint := flag.String("otel-endpoint", "", "OTLP gRPC collector host:port, empty disables tracing export")
	otelInsecure := flag.Bool("otel-insecure", false, "Disable TLS to the OTLP collector")
	serviceName := flag.String("service-name", shared.DefaultServiceName, "Service name reported in traces")

	err := eflag.SetFlagsFromEnvironment()
	if err != nil {
		panic(err)
	}
	flag.Parse()

	var logger *zap.Logger
	if !*debug {
		logger, err = zap.NewProduction()
		if err != nil {
			panic("Failed init logger")
		}
	}
	if *debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			panic("Failed init logger")
		}
	}
	log := logger.Sugar()
	defer func() {
		_ = log.Sync()
	}()

	tracer, shutdownTracing, err := tracing.Init(context.Background(), tracing.Config{
		Endpoint:    *otelEndpoint,
		Insecure:    *otelInsecure,
		ServiceName: *serviceName,
	})
	if err != nil {
		panic(err)
	}

	e := routers.NewServer(routers.ServerConfig{
		MetricsAPIKey:  *metricsAPIKey,
		BodyLimit:      *bodyLimit,
		MaxHeaderBytes: *maxHeaderBytes,
	}, log, tracer)

	go func() {
		log.Infow("Starting server", "addr", *addr)
		if err := e.Start(*addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("shutting down the server", "error", err)
		}
	}()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// Wait for interrupt signal to gracefully shut down the server
	<-ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), shared.DefaultShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Errorw("Failed graceful shutdown", "error", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Warnw("Failed flushing traces", "error", err)
	}
}
