package http

import (
	"net/http"
	"strconv"

	leaderboardService "anoa.com/clubrank/internal/modules/leaderboard/service"
	"anoa.com/clubrank/internal/ranking"
	"anoa.com/clubrank/pkg/response"
	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	service leaderboardService.LeaderboardService
}

func NewLeaderboardHandler(service leaderboardService.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	timeFrame := c.DefaultQuery("time_frame", ranking.TimeFrameAll)
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	limitStr := c.DefaultQuery("limit", strconv.Itoa(ranking.DefaultLeaderboardLimit))
	limit, _ := strconv.Atoi(limitStr)
	if limit < 1 {
		limit = ranking.DefaultLeaderboardLimit
	}

	leaderboard, err := h.service.GetLeaderboard(c.Request.Context(), timeFrame, startDate, endDate, limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": leaderboard})
}
