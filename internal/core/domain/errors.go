package domain

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrAdminRequired      = errors.New("admin rights required")
	ErrValidation         = errors.New("validation failed")
	ErrBankNotFound       = errors.New("blood bank not found")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrSOSDuplicate       = errors.New("duplicate sos request")
)
