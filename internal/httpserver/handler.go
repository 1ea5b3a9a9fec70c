package httpserver

import (
	"token-srv/internal/middleware"
	tokenHTTP "token-srv/internal/token/delivery/http"
	tokenUC "token-srv/internal/token/usecase"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "token-srv/docs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const Api = "/v1"

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.logger, srv.gate, srv.discord)

	srv.gin.Use(
		mw.RequestID(),
		mw.Logging(),
		mw.Recovery(),
		middleware.CORS(middleware.DefaultCORSConfig(srv.corsOrigins)),
		mw.Locale(),
	)

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metricsEnabled {
		srv.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{})))
	}

	base := srv.gin.Group(srv.baseURL)

	// Swagger UI
	base.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Token routes
	tokenUsecase := tokenUC.New(srv.logger, srv.jwtMgr, srv.registry)
	tokenHandler := tokenHTTP.New(srv.logger, tokenUsecase, srv.discord)
	tokenHandler.RegisterRoutes(base.Group(Api), mw)
}
