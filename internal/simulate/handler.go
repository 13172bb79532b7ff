package simulate

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/model"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/reject"
)

type simulateHandler struct {
	simulation *simulationService
	basePath   string
}

func RegisterRoutes(rg *gin.RouterGroup, safeReader TransactionReader, chain BlockNumberReader, simulator Simulator) {
	handler := &simulateHandler{
		simulation: &simulationService{
			safe:      safeReader,
			chain:     chain,
			simulator: simulator,
		},
		basePath: strings.TrimRight(rg.BasePath(), "/"),
	}

	routes := rg.Group("/propose/simulate")
	routes.GET("", handler.simulate)
	routes.POST("", handler.simulate)
}

func (h simulateHandler) simulate(c *gin.Context) {
	var params model.SimulationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		problem := reject.FromError(model.InvalidRequest(err)).Problem
		c.JSON(problem.Status, problem.WithPath(c.Request.URL.Path))
		return
	}

	request := params.TransactionRequest()
	result, err := h.simulation.Simulate(c.Request.Context(), request)
	if err != nil {
		problem := reject.FromError(err).Problem
		c.JSON(problem.Status, problem.WithPath(c.Request.URL.Path))
		return
	}

	outcome := deriveOutcome(request, result)
	c.JSON(http.StatusOK, renderOutcome(outcome, h.basePath, request.Query()))
}
