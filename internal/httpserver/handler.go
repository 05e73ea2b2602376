package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers the single exposed operation.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	srv.gin.POST("/invoke", srv.middleware.RateLimit(), srv.invoke)
	srv.l.Infof(ctx, "Tool invocation route registered at POST /invoke")
}

// Run maps all handlers and blocks serving HTTP.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", srv.port)
	srv.l.Infof(context.Background(), "HTTP server listening on %s", addr)
	return srv.gin.Run(addr)
}
