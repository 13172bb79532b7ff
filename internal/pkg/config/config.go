package config

import (
	"strings"
	"time"

	"github.com/kollektive-hackathon/safe-frames/internal/pkg/safe"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/tenderly"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const defaultUpstreamTimeout = 10 * time.Second

type Config struct {
	Port            string
	BasePath        string
	LogLevel        string
	ChainRpcURL     string
	UpstreamTimeout time.Duration
	Safe            safe.Config
	Tenderly        tenderly.Config
}

// Setup points viper at the environment and an optional .env file.
func Setup(v *viper.Viper) {
	v.AutomaticEnv()
	v.SetConfigFile("./.env")
	v.SetConfigType("env")

	v.SetDefault("PORT", ":8080")
	v.SetDefault("FRAMES_BASE_PATH", "/frames")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CHAIN_ID", "84532")
	v.SetDefault("CHAIN_RPC_URL", "https://sepolia.base.org")
	v.SetDefault("TENDERLY_API_URL", tenderly.DefaultAPIURL)
	v.SetDefault("UPSTREAM_TIMEOUT", defaultUpstreamTimeout.String())

	if err := v.ReadInConfig(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded, using environment only")
	}
}

func Load(v *viper.Viper) Config {
	timeout := v.GetDuration("UPSTREAM_TIMEOUT")
	if timeout <= 0 {
		log.Warn().Str("value", v.GetString("UPSTREAM_TIMEOUT")).Msg("Invalid UPSTREAM_TIMEOUT, using default")
		timeout = defaultUpstreamTimeout
	}

	chainId := v.GetString("CHAIN_ID")
	networkId := v.GetString("TENDERLY_NETWORK_ID")
	if networkId == "" {
		networkId = chainId
	}

	port := v.GetString("PORT")
	if !strings.Contains(port, ":") {
		port = ":" + port
	}

	return Config{
		Port:            port,
		BasePath:        "/" + strings.Trim(v.GetString("FRAMES_BASE_PATH"), "/"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		ChainRpcURL:     v.GetString("CHAIN_RPC_URL"),
		UpstreamTimeout: timeout,
		Safe: safe.Config{
			ChainID:    chainId,
			ServiceURL: v.GetString("SAFE_TX_SERVICE_URL"),
			APIKey:     v.GetString("SAFE_API_KEY"),
		},
		Tenderly: tenderly.Config{
			AccessKey:   v.GetString("TENDERLY_ACCESS_KEY"),
			AccountSlug: v.GetString("TENDERLY_ACCOUNT_SLUG"),
			ProjectSlug: v.GetString("TENDERLY_PROJECT_SLUG"),
			NetworkID:   networkId,
			APIURL:      v.GetString("TENDERLY_API_URL"),
		},
	}
}
