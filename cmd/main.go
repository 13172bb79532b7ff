package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/blockchain"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/config"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/middleware"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/model"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/reject"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/safe"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/tenderly"
	"github.com/kollektive-hackathon/safe-frames/internal/propose"
	"github.com/kollektive-hackathon/safe-frames/internal/simulate"
	"github.com/kollektive-hackathon/safe-frames/internal/welcome"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	cfg := setupViper()
	setupZerolog(cfg.LogLevel)

	if err := model.SetupValidators(); err != nil {
		log.Fatal().Err(err).Msg("Failed to register request validators")
	}

	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}

	safeClient, err := safe.NewClient(cfg.Safe, httpClient)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Safe transaction service client")
	}

	chain, err := blockchain.Dial(cfg.ChainRpcURL, cfg.UpstreamTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize chain RPC client")
	}
	defer chain.Close()

	simulator := tenderly.NewClient(cfg.Tenderly, httpClient)
	if err := simulator.CheckConfig(); err != nil {
		log.Warn().Err(err).Msg("Simulation is not configured, simulate requests will fail")
	}

	apiRouter := setupApiRouter(cfg, safeClient, chain, simulator)

	log.Info().
		Str("port", cfg.Port).
		Str("basePath", cfg.BasePath).
		Str("safeService", safeClient.BaseURL()).
		Msg("Starting frames server")

	server := &http.Server{
		Addr:         cfg.Port,
		Handler:      apiRouter,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2*cfg.UpstreamTimeout + 10*time.Second,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func setupApiRouter(cfg config.Config, safeClient *safe.Client, chain *blockchain.RpcClient, simulator *tenderly.Client) *gin.Engine {
	apiRouter := gin.New()
	middleware.RegisterGlobalMiddleware(apiRouter)

	apiRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	apiRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))
	apiRouter.NoRoute(func(c *gin.Context) {
		problem := reject.NotFoundProblem()
		c.JSON(problem.Status, problem.WithPath(c.Request.URL.Path))
	})

	routerGroup := apiRouter.Group(cfg.BasePath)

	welcome.RegisterRoutes(routerGroup)
	propose.RegisterRoutes(routerGroup, safeClient)
	simulate.RegisterRoutes(routerGroup, safeClient, chain, simulator)

	return apiRouter
}

func setupViper() config.Config {
	v := viper.GetViper()
	config.Setup(v)
	return config.Load(v)
}

func setupZerolog(level string) {
	zerolog.LevelFieldName = "severity"
	zerolog.TimestampFieldName = "time"
	zerolog.TimeFieldFormat = time.RFC3339Nano

	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}
