package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/TranushReddy/crop-market/internal/market/bootstrap"
	"github.com/TranushReddy/crop-market/internal/pkg/database"
	"github.com/TranushReddy/crop-market/internal/pkg/env"
	"github.com/TranushReddy/crop-market/internal/pkg/logging"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	httpPort := ":8080"
	redisAddr := ""
	dbHost := "localhost"
	dbPort := "5432"
	dbUser := "admin"
	dbPassword := "password"
	dbName := "crop_market_db"

	env.TrySetFromEnv(env.EnvHttpPort, &httpPort)
	env.TrySetFromEnv(env.EnvRedisAddr, &redisAddr)
	env.TrySetFromEnv(env.EnvDatabaseHost, &dbHost)
	env.TrySetFromEnv(env.EnvDatabasePort, &dbPort)
	env.TrySetFromEnv(env.EnvDatabaseUser, &dbUser)
	env.TrySetFromEnv(env.EnvDatabasePassword, &dbPassword)
	env.TrySetFromEnv(env.EnvDatabaseName, &dbName)

	cfg := bootstrap.MarketConfig{
		DbSettings: database.PostgresSettings{
			User:       dbUser,
			Password:   dbPassword,
			Host:       dbHost,
			Port:       dbPort,
			DBName:     dbName,
			SSlEnabled: false,
		},
		RedisAddr: redisAddr,
		HttpPort:  httpPort,
	}

	app := bootstrap.NewMarketApp(cfg, defaultLogger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- app.Run(mainCtx)
	}()

	select {
	case <-mainCtx.Done():
		app.Shutdown()
	case err := <-errChan:
		if err != nil {
			defaultLogger.Error("application stopped with error", "error", err.Error())
		}
		app.Shutdown()
	}
}
