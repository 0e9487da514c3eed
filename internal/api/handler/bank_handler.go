package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

type BankHandler struct {
	banks ports.BankService
}

func NewBankHandler(banks ports.BankService) *BankHandler {
	return &BankHandler{banks: banks}
}

type createBankRequest struct {
	Name  string             `json:"name"  validate:"required"`
	Email string             `json:"email" validate:"omitempty,email"`
	City  string             `json:"city"  validate:"required"`
	Stock *domain.BloodStock `json:"bloodStock"`
}

type bankCampaignRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"  validate:"required"`
}

// List returns every registered blood bank.
//
// @Summary      List blood banks
// @Tags         banks
// @Produce      json
// @Success      200  {array}  domain.BloodBank
// @Router       /banks [get]
func (h *BankHandler) List(c echo.Context) error {
	banks, err := h.banks.List(c.Request().Context())
	if err != nil {
		return err
	}
	if banks == nil {
		banks = []*domain.BloodBank{}
	}
	return c.JSON(http.StatusOK, banks)
}

// Get returns one blood bank by id.
//
// @Summary      Get a blood bank
// @Tags         banks
// @Produce      json
// @Param        id   path      string  true  "Bank id"
// @Success      200  {object}  domain.BloodBank
// @Failure      404  {object}  map[string]string
// @Router       /banks/{id} [get]
func (h *BankHandler) Get(c echo.Context) error {
	bank, err := h.banks.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bank)
}

// Create registers a blood bank, admin only.
//
// @Summary      Register a blood bank
// @Tags         banks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBankRequest  true  "Bank details"
// @Success      201   {object}  domain.BloodBank
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /banks [post]
func (h *BankHandler) Create(c echo.Context) error {
	var req createBankRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	bank, err := h.banks.Create(c.Request().Context(), ports.CreateBankInput{
		Name:  req.Name,
		Email: req.Email,
		City:  req.City,
		Stock: req.Stock,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, bank)
}

// AddCampaign attaches a drive to a blood bank, admin only.
//
// @Summary      Add a drive to a blood bank
// @Tags         banks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Bank id"
// @Param        body  body      bankCampaignRequest  true  "Drive details"
// @Success      200   {object}  domain.BloodBank
// @Failure      404   {object}  map[string]string
// @Router       /banks/{id}/campaigns [post]
func (h *BankHandler) AddCampaign(c echo.Context) error {
	var req bankCampaignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	bank, err := h.banks.AddCampaign(c.Request().Context(), c.Param("id"), domain.BankCampaign{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bank)
}
