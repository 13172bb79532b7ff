package propose

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/model"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/reject"
)

type proposeHandler struct {
	propose  *proposeService
	basePath string
}

func RegisterRoutes(rg *gin.RouterGroup, safeReader SafeReader) {
	handler := &proposeHandler{
		propose:  &proposeService{safe: safeReader},
		basePath: strings.TrimRight(rg.BasePath(), "/"),
	}

	routes := rg.Group("/propose")
	routes.GET("", handler.review)
	routes.POST("", handler.review)
}

func (h proposeHandler) review(c *gin.Context) {
	var params model.ReviewParams
	if err := c.ShouldBindQuery(&params); err != nil {
		problem := reject.FromError(model.InvalidRequest(err)).Problem
		c.JSON(problem.Status, problem.WithPath(c.Request.URL.Path))
		return
	}

	request := params.TransactionRequest()
	state := h.propose.Load(c.Request.Context(), request)
	review := deriveReview(request, state)

	c.JSON(http.StatusOK, renderReview(review, h.basePath, request.Query()))
}
