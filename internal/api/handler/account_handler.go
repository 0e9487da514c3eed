package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bloodlink/coordination-api/internal/api/metrics"
	"github.com/bloodlink/coordination-api/internal/api/middleware"
	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

// AccountHandler serves the protected account lifecycle routes. The
// ownership/role checks live in the service; this layer only shapes
// requests and responses.
type AccountHandler struct {
	accounts    ports.AccountService
	leaderboard ports.LeaderboardService
}

func NewAccountHandler(accounts ports.AccountService, leaderboard ports.LeaderboardService) *AccountHandler {
	return &AccountHandler{accounts: accounts, leaderboard: leaderboard}
}

// GetProfile returns a single account, owner or admin only.
//
// @Summary      Get an account profile
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  domain.Account
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /auth/profile/{id} [get]
func (h *AccountHandler) GetProfile(c echo.Context) error {
	account, err := h.accounts.GetProfile(c.Request().Context(), middleware.Identity(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// UpdateProfile merges the provided profile fields, owner or admin only.
//
// @Summary      Update an account profile
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Account id"
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/profile/{id} [put]
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}

	account, err := h.accounts.UpdateProfile(c.Request().Context(), middleware.Identity(c), c.Param("id"), ports.UpdateProfileInput{
		Name:       req.Name,
		Phone:      req.Phone,
		City:       req.City,
		BloodGroup: req.BloodGroup,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Message: "Profile updated", User: account})
}

// ChangePassword replaces the stored password hash, owner or admin only.
//
// @Summary      Change an account password
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Account id"
// @Param        body  body      changePasswordRequest  true  "New password"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /auth/change-password/{id} [put]
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accounts.ChangePassword(c.Request().Context(), middleware.Identity(c), c.Param("id"), req.NewPassword)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Message: "Password changed", User: account})
}

// RegisterDonor enrolls the calling account as a donor. Self only: an
// admin cannot enroll someone else. Re-submission is a no-op success.
//
// @Summary      Register as a donor
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Account id"
// @Param        body  body      registerDonorRequest  true  "Donor details"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /auth/register-donor/{id} [put]
func (h *AccountHandler) RegisterDonor(c echo.Context) error {
	var req registerDonorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accounts.RegisterDonor(c.Request().Context(), middleware.Identity(c), c.Param("id"), ports.DonorEnrollInput{
		BloodGroup: req.BloodGroup,
		City:       req.City,
		Phone:      req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Message: "Registered as donor", User: account})
}

// AddMedicalRecord appends a checkup entry, admin only. The record
// timestamp is set by the server; entries are never edited or removed.
//
// @Summary      Add a medical record
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Account id"
// @Param        body  body      medicalRecordRequest  true  "Checkup details"
// @Success      200   {object}  medicalRecordsResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/medical-record/{id} [post]
func (h *AccountHandler) AddMedicalRecord(c echo.Context) error {
	var req medicalRecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accounts.AddMedicalRecord(c.Request().Context(), middleware.Identity(c), c.Param("id"), ports.MedicalRecordInput{
		Weight:              req.Weight,
		BloodPressure:       req.BloodPressure,
		Hemoglobin:          req.Hemoglobin,
		LastDonationDate:    req.LastDonationDate,
		EligibleForDonation: req.EligibleForDonation,
		MedicalNotes:        req.MedicalNotes,
		CheckupBy:           req.CheckupBy,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, medicalRecordsResponse{
		Message:        "Medical record added",
		MedicalRecords: account.MedicalRecords,
	})
}

// RecordDonation appends a completed donation, admin only. Updates
// badges and invalidates the cached leaderboard.
//
// @Summary      Record a donation
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Account id"
// @Param        body  body      donationRequest  true  "Donation details"
// @Success      200   {object}  userResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /donations/{id} [post]
func (h *AccountHandler) RecordDonation(c echo.Context) error {
	var req donationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := ports.DonationInput{Location: req.Location, QuantityML: req.QuantityML}
	if req.Date != nil {
		in.Date = *req.Date
	} else {
		in.Date = time.Now().UTC()
	}

	account, err := h.accounts.RecordDonation(c.Request().Context(), middleware.Identity(c), c.Param("id"), in)
	if err != nil {
		return err
	}

	metrics.DonationsRecordedTotal.Inc()
	h.leaderboard.Invalidate(c.Request().Context())

	return c.JSON(http.StatusOK, userResponse{Message: "Donation recorded", User: account})
}

// ListAccounts returns every account, admin only. Password hashes are
// stripped by the domain type's serialization, unconditionally.
//
// @Summary      List all accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Account
// @Failure      403  {object}  map[string]string
// @Router       /auth/all [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accounts.ListAccounts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNilAccounts(accounts))
}

// ListDonors returns all donor accounts, admin only.
//
// @Summary      List donors with medical records
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Account
// @Failure      403  {object}  map[string]string
// @Router       /auth/donors [get]
func (h *AccountHandler) ListDonors(c echo.Context) error {
	donors, err := h.accounts.ListDonors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNilAccounts(donors))
}

func nonNilAccounts(accounts []*domain.Account) []*domain.Account {
	if accounts == nil {
		return []*domain.Account{}
	}
	return accounts
}
