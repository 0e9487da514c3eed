package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

type SOSHandler struct {
	sos ports.SOSService
}

func NewSOSHandler(sos ports.SOSService) *SOSHandler {
	return &SOSHandler{sos: sos}
}

type sosRequest struct {
	RequesterName string `json:"requesterName" validate:"required"`
	Email         string `json:"email"         validate:"required,email"`
	BloodGroup    string `json:"bloodGroup"    validate:"required"`
	City          string `json:"city"          validate:"required"`
	Phone         string `json:"phone"`
}

type sosResponse struct {
	Message       string             `json:"message"`
	Request       *domain.SOSRequest `json:"request"`
	MatchedDonors int                `json:"matchedDonors"`
}

// Create submits an emergency blood request. Matching donors are
// alerted asynchronously; the response reports how many were found.
// An identical request within the dedup window is rejected with 409.
//
// @Summary      Raise an SOS
// @Tags         sos
// @Accept       json
// @Produce      json
// @Param        body  body      sosRequest  true  "Emergency details"
// @Success      201   {object}  sosResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /sos [post]
func (h *SOSHandler) Create(c echo.Context) error {
	var req sosRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	request, err := h.sos.Create(c.Request().Context(), ports.SOSInput{
		RequesterName: req.RequesterName,
		Email:         req.Email,
		BloodGroup:    req.BloodGroup,
		City:          req.City,
		Phone:         req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sosResponse{
		Message:       "SOS request submitted",
		Request:       request,
		MatchedDonors: request.MatchedDonors,
	})
}

// List returns all SOS requests, admin only.
//
// @Summary      List SOS requests
// @Tags         sos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.SOSRequest
// @Failure      403  {object}  map[string]string
// @Router       /sos [get]
func (h *SOSHandler) List(c echo.Context) error {
	requests, err := h.sos.List(c.Request().Context())
	if err != nil {
		return err
	}
	if requests == nil {
		requests = []*domain.SOSRequest{}
	}
	return c.JSON(http.StatusOK, requests)
}
