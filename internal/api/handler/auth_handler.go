package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/planora/planora-app/internal/api/metrics"
	"github.com/planora/planora-app/internal/core/domain"
)

const tokenTTL = 24 * time.Hour

// AuthHandler serves the stub login endpoint, minting real HS256 tokens so
// the client's auth header handling can be exercised end to end.
type AuthHandler struct {
	fixtures  *Fixtures
	jwtSecret string
}

func NewAuthHandler(fixtures *Fixtures, jwtSecret string) *AuthHandler {
	return &AuthHandler{fixtures: fixtures, jwtSecret: jwtSecret}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login authenticates against the fixtures and returns a token plus the
// account record.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.fixtures.Authenticate(req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	token, err := h.generateToken(user)
	if err != nil {
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

func (h *AuthHandler) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"_id":   user.ID,
		"role":  user.Role,
		"email": user.Email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(h.jwtSecret))
}
