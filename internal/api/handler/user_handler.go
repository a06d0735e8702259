package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/picode11/user-admin-api/internal/api/metrics"
	"github.com/picode11/user-admin-api/internal/api/middleware"
	"github.com/picode11/user-admin-api/internal/core/domain"
	"github.com/picode11/user-admin-api/internal/core/ports"
)

// UserHandler exposes the operations an authenticated user performs on their
// own account.
type UserHandler struct {
	users  ports.UserService
	images ports.ImageStore
}

func NewUserHandler(users ports.UserService, images ports.ImageStore) *UserHandler {
	return &UserHandler{users: users, images: images}
}

// Profile returns the current principal's own record.
//
// @Summary      Current user's profile
// @Tags         me
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /me [get]
func (h *UserHandler) Profile(c echo.Context) error {
	principal := middleware.Principal(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return c.JSON(http.StatusOK, toUserResponse(principal))
}

// UploadPhoto replaces the current principal's profile picture.
//
// @Summary      Upload own profile picture
// @Tags         me
// @Accept       mpfd
// @Produce      json
// @Param        photo  formData  file  true  "Image file (jpg, jpeg, png, gif)"
// @Success      200    {object}  userResponse
// @Failure      401    {object}  errorResponse
// @Failure      422    {object}  errorResponse
// @Router       /me/photo [post]
func (h *UserHandler) UploadPhoto(c echo.Context) error {
	principal := middleware.Principal(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return domain.ErrMissingFile
	}

	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	name, err := h.images.Store(src, fh.Filename)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.UploadsTotal.WithLabelValues("success").Inc()

	user, err := h.users.SetProfileImage(c.Request().Context(), principal.ID, name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
