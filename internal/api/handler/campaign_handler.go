package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

type CampaignHandler struct {
	campaigns ports.CampaignService
}

func NewCampaignHandler(campaigns ports.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns}
}

type createCampaignRequest struct {
	Title             string    `json:"title"     validate:"required"`
	Description       string    `json:"description"`
	Date              time.Time `json:"date"      validate:"required"`
	Location          string    `json:"location"  validate:"required"`
	Organizer         string    `json:"organizer" validate:"required"`
	Email             string    `json:"email"     validate:"omitempty,email"`
	Phone             string    `json:"phone"`
	City              string    `json:"city"      validate:"required"`
	TargetDonors      int       `json:"targetDonors"`
	BloodGroupsNeeded []string  `json:"bloodGroupsNeeded"`
}

type updateCampaignRequest struct {
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	Date              *time.Time `json:"date"`
	Location          *string    `json:"location"`
	Organizer         *string    `json:"organizer"`
	Email             *string    `json:"email"`
	Phone             *string    `json:"phone"`
	City              *string    `json:"city"`
	TargetDonors      *int       `json:"targetDonors"`
	RegisteredDonors  *int       `json:"registeredDonors"`
	BloodGroupsNeeded []string   `json:"bloodGroupsNeeded"`
}

// List returns campaigns, optionally filtered by status and city query
// parameters.
//
// @Summary      List campaigns
// @Tags         campaigns
// @Produce      json
// @Param        status  query    string  false  "upcoming, active or completed"
// @Param        city    query    string  false  "City filter"
// @Success      200     {array}  domain.Campaign
// @Router       /campaigns [get]
func (h *CampaignHandler) List(c echo.Context) error {
	campaigns, err := h.campaigns.List(c.Request().Context(), ports.CampaignFilter{
		Status: domain.CampaignStatus(c.QueryParam("status")),
		City:   c.QueryParam("city"),
	})
	if err != nil {
		return err
	}
	if campaigns == nil {
		campaigns = []*domain.Campaign{}
	}
	return c.JSON(http.StatusOK, campaigns)
}

// Get returns one campaign by id.
//
// @Summary      Get a campaign
// @Tags         campaigns
// @Produce      json
// @Param        id   path      string  true  "Campaign id"
// @Success      200  {object}  domain.Campaign
// @Failure      404  {object}  map[string]string
// @Router       /campaigns/{id} [get]
func (h *CampaignHandler) Get(c echo.Context) error {
	campaign, err := h.campaigns.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, campaign)
}

// Create registers a campaign, admin only. Status is derived from the
// campaign date, never taken from the client.
//
// @Summary      Create a campaign
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCampaignRequest  true  "Campaign details"
// @Success      201   {object}  domain.Campaign
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /campaigns [post]
func (h *CampaignHandler) Create(c echo.Context) error {
	var req createCampaignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	campaign, err := h.campaigns.Create(c.Request().Context(), ports.CreateCampaignInput{
		Title:             req.Title,
		Description:       req.Description,
		Date:              req.Date,
		Location:          req.Location,
		Organizer:         req.Organizer,
		Email:             req.Email,
		Phone:             req.Phone,
		City:              req.City,
		TargetDonors:      req.TargetDonors,
		BloodGroupsNeeded: req.BloodGroupsNeeded,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, campaign)
}

// Update patches a campaign, admin only.
//
// @Summary      Update a campaign
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Campaign id"
// @Param        body  body      updateCampaignRequest  true  "Fields to update"
// @Success      200   {object}  domain.Campaign
// @Failure      404   {object}  map[string]string
// @Router       /campaigns/{id} [put]
func (h *CampaignHandler) Update(c echo.Context) error {
	var req updateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}

	campaign, err := h.campaigns.Update(c.Request().Context(), c.Param("id"), ports.UpdateCampaignInput{
		Title:             req.Title,
		Description:       req.Description,
		Date:              req.Date,
		Location:          req.Location,
		Organizer:         req.Organizer,
		Email:             req.Email,
		Phone:             req.Phone,
		City:              req.City,
		TargetDonors:      req.TargetDonors,
		RegisteredDonors:  req.RegisteredDonors,
		BloodGroupsNeeded: req.BloodGroupsNeeded,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, campaign)
}

// Delete removes a campaign, admin only.
//
// @Summary      Delete a campaign
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Campaign id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c echo.Context) error {
	if err := h.campaigns.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Campaign deleted"})
}
