package main // storefront entry point

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/minhvo/retail-suite/internal/api"
	"github.com/minhvo/retail-suite/internal/config"
	"github.com/minhvo/retail-suite/internal/handler"
	"github.com/minhvo/retail-suite/internal/router"
	"github.com/minhvo/retail-suite/internal/session"
)

func main() {
	cfg := config.Load()

	// Redis backs sessions when reachable; otherwise the in-process
	// store keeps the app usable for local development.
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

	e := echo.New()
	router.RegisterRoutes(e, cfg, mgr)
	auth := handler.NewAuthHandler(cfg, client, mgr)
	shop := handler.NewStorefrontHandler(cfg, client, mgr)
	router.RegisterStorefront(e, auth, shop, rdb)

	addr := ":" + cfg.Port
	log.Printf("storefront listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
