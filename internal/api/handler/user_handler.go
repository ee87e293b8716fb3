package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile returns the caller's own account.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope{data=domain.User}
// @Failure      401  {object}  errorResponse
// @Router       /user/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Profile retrieved successfully", user)
}

// GetAll lists users with search, filtering and pagination.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        query   query  string  false  "Substring search over email"
// @Param        role    query  string  false  "Exact role filter"
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size"
// @Success      200  {object}  envelope{data=[]domain.User}
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /user/get-all [get]
func (h *UserHandler) GetAll(c echo.Context) error {
	filter := ports.UserFilter{
		Query: c.QueryParam("query"),
		Role:  domain.Role(c.QueryParam("role")),
	}

	opts := paginationOptions(c)
	users, total, err := h.userService.GetAllUsers(c.Request().Context(), filter, opts)
	if err != nil {
		return err
	}

	return respondPage(c, http.StatusOK, "Users retrieved successfully", pageMeta(opts, total), users)
}

// GetByID returns a single user.
//
// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  envelope{data=domain.User}
// @Failure      404  {object}  errorResponse
// @Router       /user/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.userService.GetUserByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User retrieved successfully", user)
}

// UpdateProfile applies a partial update to the caller's own account.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile update"
// @Success      200   {object}  envelope{data=domain.User}
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /user/profile [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), identity.UserID, ports.UserUpdate{Email: req.Email})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Profile updated successfully!", user)
}

// Update applies a partial update to an arbitrary account.
//
// @Summary      Update user by id
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "User update"
// @Success      200   {object}  envelope{data=domain.User}
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /user/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	update := ports.UserUpdate{Email: req.Email}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		update.Role = &role
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User updated successfully!", user)
}

// Delete removes an account.
//
// @Summary      Delete user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  envelope{data=domain.User}
// @Failure      404  {object}  errorResponse
// @Router       /user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	user, err := h.userService.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User deleted successfully", user)
}
