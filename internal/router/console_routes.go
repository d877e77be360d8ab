package router

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/minhvo/retail-suite/internal/config"
	"github.com/minhvo/retail-suite/internal/handler"
	"github.com/minhvo/retail-suite/internal/middleware"
	"github.com/minhvo/retail-suite/internal/permission"
)

// RegisterConsole registers the back-office endpoints under /v1.
// All resource routes require a staff session; per-action
// permission checks happen inside the view layer, where the
// resource name is only known at request time. Fixed-resource
// routes (staff registration, reports) get the permission
// middleware directly.
func RegisterConsole(e *echo.Echo, auth *handler.AuthHandler, con *handler.ConsoleHandler, rep *handler.ReportHandler, cacheCfg config.ReportCacheConfig, rdb *redis.Client) {
	g := e.Group("/v1")

	g.POST("/auth/login", auth.StaffLogin, middleware.LoginRateLimit(rdb, 10, time.Minute))
	g.POST("/auth/logout", auth.Logout)
	g.GET("/auth/me", auth.Me)

	staff := g.Group("", middleware.RequireStaff)
	staff.POST("/auth/register", auth.StaffRegister, middleware.RequirePermission("staffs", permission.ActionCreate))

	staff.GET("/resources", con.Tabs)
	staff.GET("/resources/:resource", con.List)
	staff.GET("/resources/:resource/new", con.CreateForm)
	staff.POST("/resources/:resource", con.Create)
	staff.POST("/resources/:resource/delete", con.BulkDelete)
	staff.GET("/resources/:resource/:id", con.EditForm)
	staff.PUT("/resources/:resource/:id", con.Update)
	staff.DELETE("/resources/:resource/:id", con.Delete)
	staff.GET("/resources/:resource/:id/relations", con.Relations)
	staff.PUT("/children/:resource/:id", con.UpdateChild)
	staff.GET("/options/:field", con.Options)

	reports := staff.Group("/reports",
		middleware.RequirePermission("reports", permission.ActionView),
		middleware.ReportCache(cacheCfg, rdb),
	)
	reports.GET("/summary", rep.Summary)
	reports.GET("/:name", rep.Report)
}
