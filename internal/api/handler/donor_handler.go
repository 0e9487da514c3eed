package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

// DonorHandler serves the public donor surface: the directory used by
// people looking for a donor, and the open intake form.
type DonorHandler struct {
	accounts ports.AccountService
}

func NewDonorHandler(accounts ports.AccountService) *DonorHandler {
	return &DonorHandler{accounts: accounts}
}

// donorPublic is the trimmed donor representation exposed without
// authentication. No email, no phone, no medical history.
type donorPublic struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	BloodGroup string   `json:"bloodGroup"`
	City       string   `json:"city"`
	Badges     []string `json:"badges"`
}

// ListPublic returns the public donor directory.
//
// @Summary      List donors (public)
// @Tags         donors
// @Produce      json
// @Success      200  {array}  donorPublic
// @Router       /donors [get]
func (h *DonorHandler) ListPublic(c echo.Context) error {
	donors, err := h.accounts.ListDonors(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]donorPublic, 0, len(donors))
	for _, d := range donors {
		out = append(out, publicView(d))
	}
	return c.JSON(http.StatusOK, out)
}

// Enroll registers a donor through the open intake form. An existing
// account is upgraded in place; an unknown email gets a fresh donor
// account with a placeholder password.
//
// @Summary      Enroll a donor by email
// @Tags         donors
// @Accept       json
// @Produce      json
// @Param        body  body      enrollDonorRequest  true  "Donor details"
// @Success      201   {object}  donorPublic
// @Failure      400   {object}  map[string]string
// @Router       /donors [post]
func (h *DonorHandler) Enroll(c echo.Context) error {
	var req enrollDonorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accounts.EnrollDonorByEmail(c.Request().Context(), req.Name, req.Email, req.BloodGroup, req.City)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, publicView(account))
}

func publicView(a *domain.Account) donorPublic {
	badges := a.Badges
	if badges == nil {
		badges = []string{}
	}
	return donorPublic{
		ID:         a.ID,
		Name:       a.Name,
		BloodGroup: a.BloodGroup,
		City:       a.City,
		Badges:     badges,
	}
}
