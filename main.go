package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"scholarbot/app/client/duckduck"
	"scholarbot/app/client/llmproxy"
	"scholarbot/app/client/rocketchat"
	"scholarbot/app/config"
	"scholarbot/app/server"
	"scholarbot/app/service/assistant"
	"scholarbot/app/service/outbox"
	"scholarbot/app/service/session"
	"scholarbot/app/util/mylog"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func main() {
	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, rocketchat.NewClient)
	do.Provide(di, llmproxy.NewClient)
	do.Provide(di, duckduck.NewClient)
	do.Provide(di, session.New)
	do.Provide(di, assistant.New)
	do.Provide(di, outbox.New)
	do.Provide(di, server.New)

	slog.Info("Service started")

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	go do.MustInvoke[*outbox.Service](di).Run(appCtx)
	go do.MustInvoke[*server.Service](di).Run(appCtx)

	<-appCtx.Done()
}
