package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/internal/core/ports"
)

type makeAdminEntry struct {
	Email string `json:"email" validate:"required,email"`
}

type makeAdminRequest struct {
	Users []makeAdminEntry `json:"users" validate:"required,min=1,dive"`
}

type updateAdminRequest struct {
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role"  validate:"omitempty,oneof=admin super_admin"`
}

type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// List returns admin accounts with optional search.
//
// @Summary      List admins
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        query  query  string  false  "Substring search over email"
// @Success      200  {object}  envelope{data=[]domain.Admin}
// @Failure      403  {object}  errorResponse
// @Router       /admin [get]
func (h *AdminHandler) List(c echo.Context) error {
	filter := ports.AdminFilter{Query: c.QueryParam("query")}

	admins, err := h.adminService.ListAdmins(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Admins retrieved successfully", admins)
}

// MakeAdmin promotes registered accounts to the admin role.
//
// @Summary      Promote accounts to admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      makeAdminRequest  true  "Accounts to promote"
// @Success      200   {object}  envelope
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/make-admin [post]
func (h *AdminHandler) MakeAdmin(c echo.Context) error {
	var req makeAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	emails := make([]string, 0, len(req.Users))
	for _, u := range req.Users {
		emails = append(emails, u.Email)
	}

	if err := h.adminService.MakeAdmins(c.Request().Context(), emails); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Admins promoted successfully", nil)
}

// Update applies a partial update to an admin account.
//
// @Summary      Update admin by id
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Admin id"
// @Param        body  body      updateAdminRequest  true  "Admin update"
// @Success      200   {object}  envelope{data=domain.Admin}
// @Failure      404   {object}  errorResponse
// @Router       /admin/{id} [patch]
func (h *AdminHandler) Update(c echo.Context) error {
	var req updateAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	update := ports.AdminUpdate{Email: req.Email}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		update.Role = &role
	}

	admin, err := h.adminService.UpdateAdmin(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Admin updated successfully", admin)
}

// Delete removes an admin account.
//
// @Summary      Delete admin by id
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Admin id"
// @Success      200  {object}  envelope{data=domain.Admin}
// @Failure      404  {object}  errorResponse
// @Router       /admin/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	admin, err := h.adminService.DeleteAdmin(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Admin deleted successfully", admin)
}
