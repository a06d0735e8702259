package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/picode11/user-admin-api/internal/api/metrics"
	"github.com/picode11/user-admin-api/internal/core/ports"
)

// AdminHandler exposes the administrator-only user management operations.
type AdminHandler struct {
	users  ports.UserService
	images ports.ImageStore
}

func NewAdminHandler(users ports.UserService, images ports.ImageStore) *AdminHandler {
	return &AdminHandler{users: users, images: images}
}

// Dashboard returns the account overview counts.
//
// @Summary      Admin dashboard statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  ports.UserStats
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.users.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// List returns all users, newest first.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Success      200  {object}  userListResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserListResponse(users))
}

// Get returns a single user by id.
//
// @Summary      Get a user
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id} [get]
func (h *AdminHandler) Get(c echo.Context) error {
	user, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Create adds a new user.
//
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/users [post]
func (h *AdminHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.UserMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Update edits an existing user. Accepts JSON, form, or multipart bodies; a
// multipart "photo" part replaces the profile picture.
//
// @Summary      Update a user
// @Tags         admin
// @Accept       mpfd
// @Produce      json
// @Param        id    path      string           true  "User id"
// @Param        body  body      editUserRequest  true  "Changed fields"
// @Success      200   {object}  userResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/users/{id} [put]
func (h *AdminHandler) Update(c echo.Context) error {
	var req editUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	photo, err := h.storePhotoIfPresent(c)
	if err != nil {
		return err
	}

	user, err := h.users.Edit(c.Request().Context(), c.Param("id"), ports.EditUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Photo:    photo,
	})
	if err != nil {
		return err
	}

	metrics.UserMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete permanently removes a user.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.UserMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted successfully."})
}

// storePhotoIfPresent stores the optional "photo" multipart part and returns
// the stored filename, or "" when the request carries no photo.
func (h *AdminHandler) storePhotoIfPresent(c echo.Context) (string, error) {
	fh, err := c.FormFile("photo")
	if err != nil {
		return "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name, err := h.images.Store(src, fh.Filename)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("failure").Inc()
		return "", err
	}
	metrics.UploadsTotal.WithLabelValues("success").Inc()
	return name, nil
}
