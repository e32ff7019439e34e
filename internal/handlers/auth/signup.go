package auth

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"time"

	"github.com/sirupsen/logrus"

	"airsense/internal/models"
	"airsense/internal/store"
	"airsense/internal/utils"
)

const minPasswordLen = 8

type SignupHandler struct {
	Store     store.Store
	JWTSecret string
	TokenTTL  time.Duration
	Log       *logrus.Logger
}

type SignupRequest struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Password      string          `json:"password"`
	HealthProfile json.RawMessage `json:"health_profile,omitempty"`
	Preferences   json.RawMessage `json:"preferences,omitempty"`
}

type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// ServeHTTP handles POST /api/auth/signup
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if msg := validateSignup(&req); msg != "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: msg,
		})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		h.Log.WithError(err).Error("password hash failed")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Internal error",
		})
		return
	}

	user := &models.User{
		Name:          req.Name,
		Email:         store.NormalizeEmail(req.Email),
		PasswordHash:  hash,
		HealthProfile: req.HealthProfile,
		Preferences:   req.Preferences,
	}
	if err := h.Store.Create(r.Context(), user); err != nil {
		if err == store.ErrDuplicateEmail {
			utils.JSON(w, http.StatusConflict, utils.APIResponse{
				Success: false,
				Message: "Email already registered",
			})
			return
		}
		h.Log.WithError(err).Error("signup insert failed")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Internal error",
		})
		return
	}

	token, err := utils.GenerateJWT(user.ID, h.JWTSecret, h.TokenTTL)
	if err != nil {
		h.Log.WithError(err).Error("token generation failed")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Internal error",
		})
		return
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "User created successfully",
		Data:    AuthResponse{User: user, Token: token},
	})
}

func validateSignup(req *SignupRequest) string {
	if req.Name == "" {
		return "name is required"
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return "valid email is required"
	}
	if len(req.Password) < minPasswordLen {
		return "password must be at least 8 characters"
	}
	return ""
}
