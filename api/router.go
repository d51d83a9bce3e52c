package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/beka-birhanu/rumba/api/i"
	service_i "github.com/beka-birhanu/rumba/service/i"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
	gatherer    prometheus.Gatherer
	logger      service_i.Logger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
	Gatherer    prometheus.Gatherer // Source of /metrics, nil disables the endpoint
	Logger      service_i.Logger
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		gatherer:    config.Gatherer,
		logger:      config.Logger,
	}
}

// Handler builds the gin engine with every route registered.
//
// Routes:
// - {baseURL}/v1/...: controller routes.
// - /metrics: Prometheus exposition, when a gatherer is configured.
func (r *Router) Handler() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if r.logger != nil {
		router.Use(requestLogger(r.logger))
	}

	if r.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}

	return router
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	return r.Handler().Run(r.addr)
}

func requestLogger(logger service_i.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		msg := fmt.Sprintf("%s %s status=%d bytes=%d duration_ms=%d",
			ctx.Request.Method, ctx.Request.URL.Path, ctx.Writer.Status(), ctx.Writer.Size(), time.Since(start).Milliseconds())
		if ctx.Writer.Status() >= http.StatusInternalServerError {
			logger.Error(msg)
			return
		}
		logger.Debug(msg)
	}
}
