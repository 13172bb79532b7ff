package welcome

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/model"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/reject"
	"github.com/rs/zerolog"
)

type welcomeHandler struct {
	basePath string
	now      func() time.Time
}

func RegisterRoutes(rg *gin.RouterGroup) {
	registerRoutes(rg, time.Now)
}

func registerRoutes(rg *gin.RouterGroup, now func() time.Time) {
	handler := &welcomeHandler{
		basePath: strings.TrimRight(rg.BasePath(), "/"),
		now:      now,
	}

	rg.GET("", handler.landing)
	rg.POST("", handler.landing)
}

func (h welcomeHandler) landing(c *gin.Context) {
	var params model.LandingParams
	if err := c.ShouldBindQuery(&params); err != nil {
		problem := reject.FromError(model.InvalidRequest(err)).Problem
		c.JSON(problem.Status, problem.WithPath(c.Request.URL.Path))
		return
	}

	if params.IsWebhook() {
		zerolog.Ctx(c.Request.Context()).Info().
			Str("hash", params.Hash).
			Str("chainId", params.ChainID).
			Msg("Rendering transaction notification")

		notification := deriveNotification(params.WebhookRequest(), h.now())
		c.JSON(http.StatusOK, renderNotification(notification))
		return
	}

	c.JSON(http.StatusOK, renderWelcome(h.basePath, params.Query()))
}
