package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodlink/coordination-api/internal/core/ports"
)

type LeaderboardHandler struct {
	leaderboard ports.LeaderboardService
}

func NewLeaderboardHandler(leaderboard ports.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

// Top returns donors ranked by completed donations, descending.
//
// @Summary      Donor leaderboard
// @Tags         leaderboard
// @Produce      json
// @Success      200  {array}  ports.LeaderboardEntry
// @Router       /leaderboard [get]
func (h *LeaderboardHandler) Top(c echo.Context) error {
	entries, err := h.leaderboard.Top(c.Request().Context())
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []ports.LeaderboardEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}
