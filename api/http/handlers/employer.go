package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"employer-hub/api/http/presenter"
	"employer-hub/pkg/employer"
	"employer-hub/pkg/security/jwt"
	"employer-hub/pkg/upload"
)

// logoField is the multipart field carrying the company logo.
const logoField = "company_logo"

var allowedLogoExt = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".webp": true, ".svg": true,
}

type EmployerHandler struct {
	uc    employer.UseCase
	store upload.Store
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewEmployerHandler(uc employer.UseCase, store upload.Store, maxBytes int64) *EmployerHandler {
	return &EmployerHandler{uc: uc, store: store, maxBytes: maxBytes}
}

// Add creates an employer record with its logo.
// @Summary Add employer
// @Tags    employers
// @Accept  multipart/form-data
// @Produce json
// @Param   company_logo formData file true "company logo (png/jpg/jpeg/webp/svg)"
// @Param   name formData string true "contact name"
// @Param   email formData string true "contact email"
// @Param   company_name formData string true "company name"
// @Param   company_size formData string true "company size"
// @Param   industry formData string true "industry"
// @Param   company_location formData string true "company location"
// @Security BearerAuth
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /addEmployer [post]
func (h *EmployerHandler) Add(c *fiber.Ctx) error {
	claims := jwt.ClaimsFrom(c)
	if claims == nil {
		return presenter.Error(c, http.StatusUnauthorized, "missing session")
	}
	actorID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}

	ref, err := h.saveLogo(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	in := employer.CreateInput{
		Name:            c.FormValue("name"),
		Email:           c.FormValue("email"),
		CompanyName:     c.FormValue("company_name"),
		CompanySize:     c.FormValue("company_size"),
		Industry:        c.FormValue("industry"),
		CompanyLocation: c.FormValue("company_location"),
	}
	created, err := h.uc.Create(c.Context(), in, ref, actorID)
	if err != nil {
		return employerError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"success":  true,
		"message":  "Employer created successfully",
		"employer": created,
	})
}

// Get fetches a single employer by id (query string).
// @Summary Get employer
// @Tags    employers
// @Produce json
// @Param   id query string true "employer id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /getEmployer [get]
func (h *EmployerHandler) Get(c *fiber.Ctx) error {
	e, err := h.uc.Get(c.Context(), c.Query("id"))
	if err != nil {
		return employerError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success":  true,
		"message":  "Employer fetched successfully",
		"employer": e,
	})
}

// List returns all employers, most recent first.
// @Summary List employers
// @Tags    employers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /getAllEmployers [get]
func (h *EmployerHandler) List(c *fiber.Ctx) error {
	employers, err := h.uc.List(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "Server error")
	}
	if employers == nil {
		employers = []employer.Employer{}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success":   true,
		"message":   "Employers fetched successfully",
		"employers": employers,
	})
}

// Update applies a partial update; an uploaded file replaces the logo.
// @Summary Update employer
// @Tags    employers
// @Accept  multipart/form-data
// @Produce json
// @Param   id query string true "employer id (UUID)"
// @Param   company_logo formData file false "replacement logo"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /updateEmployer [put]
func (h *EmployerHandler) Update(c *fiber.Ctx) error {
	ref, err := h.saveLogo(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	upd := employer.Update{
		Name:            c.FormValue("name"),
		Email:           c.FormValue("email"),
		CompanyName:     c.FormValue("company_name"),
		CompanySize:     c.FormValue("company_size"),
		Industry:        c.FormValue("industry"),
		CompanyLocation: c.FormValue("company_location"),
	}
	updated, err := h.uc.Update(c.Context(), c.Query("id"), upd, ref)
	if err != nil {
		return employerError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success":  true,
		"message":  "Employer updated successfully.",
		"employer": updated,
	})
}

// Delete removes an employer and its logo file.
// @Summary Delete employer
// @Tags    employers
// @Produce json
// @Param   id query string true "employer id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /deleteEmployer [delete]
func (h *EmployerHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Context(), c.Query("id"))
	if err != nil {
		return employerError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success":  true,
		"message":  "Employer deleted successfully.",
		"employer": deleted,
	})
}

// saveLogo stores the uploaded logo, if any, and returns its reference.
// An empty reference means the request carried no file. Once this returns a
// reference the use case owns the cleanup on every failure path.
func (h *EmployerHandler) saveLogo(c *fiber.Ctx) (string, error) {
	fh, err := c.FormFile(logoField)
	if err != nil || fh == nil {
		return "", nil
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedLogoExt[ext] {
		return "", fmt.Errorf("unsupported logo format %q: png, jpg, jpeg, webp or svg expected", ext)
	}
	file, err := fh.Open()
	if err != nil {
		return "", errors.New("failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return "", err
	}
	ref, err := h.store.Save(c.Context(), fh.Filename, bytes.NewReader(data))
	if err != nil {
		return "", errors.New("failed to store uploaded file")
	}
	return ref, nil
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}

func employerError(c *fiber.Ctx, err error) error {
	var verr employer.ErrValidation
	switch {
	case errors.As(err, &verr):
		return presenter.Error(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, employer.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "Employer not found.")
	case errors.Is(err, employer.ErrEmailTaken):
		return presenter.Error(c, http.StatusConflict, "Email already in use by another employer.")
	default:
		return presenter.Error(c, http.StatusInternalServerError, "Server error")
	}
}
