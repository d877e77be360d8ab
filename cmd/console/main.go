package main // back-office console entry point

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/minhvo/retail-suite/internal/api"
	"github.com/minhvo/retail-suite/internal/config"
	"github.com/minhvo/retail-suite/internal/handler"
	"github.com/minhvo/retail-suite/internal/queue"
	"github.com/minhvo/retail-suite/internal/router"
	"github.com/minhvo/retail-suite/internal/session"
)

func main() {
	cfg := config.Load()

	rdb := config.NewRedisClient()
	var store session.Store
	if rdb != nil {
		store = session.NewRedisStore(rdb, cfg.SessionTTL())
	} else {
		log.Println("redis unavailable, using in-memory session store")
		store = session.NewMemoryStore()
	}
	mgr := session.NewManager(store)

	client := api.New(cfg.APIBaseURL, cfg.BackendTimeout)

	// consume storefront order events in the background; the
	// consumer reconnects on its own when the broker drops
	go func() {
		if err := queue.StartOrderConsumer(); err != nil {
			log.Printf("order consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e, cfg, mgr)
	auth := handler.NewAuthHandler(cfg, client, mgr)
	con := handler.NewConsoleHandler(cfg, client, mgr)
	rep := handler.NewReportHandler(client, mgr)
	router.RegisterConsole(e, auth, con, rep, config.LoadReportCacheConfig(), rdb)

	addr := ":" + cfg.Port
	log.Printf("console listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
