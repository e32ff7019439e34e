package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"airsense/internal/store"
	"airsense/internal/utils"
)

type LoginHandler struct {
	Store     store.Store
	JWTSecret string
	TokenTTL  time.Duration
	Log       *logrus.Logger
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// dummyHash keeps the unknown-email path doing the same bcrypt work as a
// wrong-password attempt, so response timing does not reveal which one
// failed. Hashing a random value means no submitted password can match it.
var dummyHash, _ = utils.HashPassword(uuid.NewString())

// ServeHTTP handles POST /api/auth/login
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	// Unknown email and wrong password must be indistinguishable.
	user, err := h.Store.FindByEmail(r.Context(), store.NormalizeEmail(req.Email))
	if err == store.ErrNotFound {
		_ = utils.CheckPassword(req.Password, dummyHash)
		h.rejectCredentials(w)
		return
	} else if err != nil {
		h.Log.WithError(err).Error("login lookup failed")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Internal error",
		})
		return
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		h.rejectCredentials(w)
		return
	}

	now := time.Now().UTC()
	if err := h.Store.TouchLastLogin(r.Context(), user.ID); err != nil {
		h.Log.WithError(err).Error("last login update failed")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Internal error",
		})
		return
	}
	user.LastLoginAt = &now

	token, err := utils.GenerateJWT(user.ID, h.JWTSecret, h.TokenTTL)
	if err != nil {
		h.Log.WithError(err).Error("token generation failed")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Internal error",
		})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Login successful",
		Data:    AuthResponse{User: user, Token: token},
	})
}

func (h *LoginHandler) rejectCredentials(w http.ResponseWriter) {
	utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{
		Success: false,
		Message: "Invalid email or password",
	})
}
