package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planora/planora-app/internal/api/metrics"
	"github.com/planora/planora-app/internal/core/domain"
	"github.com/planora/planora-app/internal/core/ports"
)

// AccountHandler serves the authenticated account endpoints: profile
// updates, push-token registration and notifications.
type AccountHandler struct {
	fixtures *Fixtures
}

func NewAccountHandler(fixtures *Fixtures) *AccountHandler {
	return &AccountHandler{fixtures: fixtures}
}

// Categories handles GET /categories.
func (h *AccountHandler) Categories(c echo.Context) error {
	metrics.FixtureRequestsTotal.WithLabelValues("categories").Inc()
	return c.JSON(http.StatusOK, h.fixtures.Categories())
}

type updateProfileRequest struct {
	Name        string `json:"name"  validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// UpdateProfile handles PATCH /auth/update-profile/:id. Callers may only
// patch their own record.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID := c.Param("id")
	if callerID, _ := c.Get("user_id").(string); callerID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "cannot update another user's profile")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.fixtures.UpdateProfile(userID, ports.ProfileUpdate{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		return err
	}
	metrics.FixtureRequestsTotal.WithLabelValues("update_profile").Inc()
	return c.JSON(http.StatusOK, updated)
}

type pushTokenRequest struct {
	UserID string `json:"userId" validate:"required"`
	Token  string `json:"token"  validate:"required"`
}

// RegisterPushToken handles POST /auth/push-token.
func (h *AccountHandler) RegisterPushToken(c echo.Context) error {
	var req pushTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.fixtures.SetPushToken(req.UserID, req.Token)
	metrics.PushTokensRegisteredTotal.Inc()
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

type notificationsResponse struct {
	Success bool                  `json:"success"`
	Count   int                   `json:"count"`
	Data    []domain.Notification `json:"data"`
}

// Notifications handles GET /notifications/:userId, wrapped in the
// {success, count, data} envelope the app expects.
func (h *AccountHandler) Notifications(c echo.Context) error {
	items := h.fixtures.NotificationsFor(c.Param("userId"))
	metrics.FixtureRequestsTotal.WithLabelValues("notifications").Inc()
	return c.JSON(http.StatusOK, notificationsResponse{
		Success: true,
		Count:   len(items),
		Data:    items,
	})
}

// HealthHandler handles GET /health — liveness probe for the stub.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
