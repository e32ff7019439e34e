package user

import (
	"encoding/json"
	"net/http"

	"airsense/internal/middleware"
	"airsense/internal/store"
	"airsense/internal/utils"
)

type ProfileHandler struct {
	Store store.Store
}

type ProfileRequest struct {
	HealthProfile json.RawMessage `json:"health_profile,omitempty"`
	Preferences   json.RawMessage `json:"preferences,omitempty"`
}

// ServeHTTP handles PUT /api/user/profile
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}
	if req.HealthProfile == nil && req.Preferences == nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "nothing to update"})
		return
	}

	if err := h.Store.UpdateProfile(r.Context(), userID, req.HealthProfile, req.Preferences); err != nil {
		if err == store.ErrNotFound {
			utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Internal error"})
		return
	}

	u, err := h.Store.FindByID(r.Context(), userID)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Internal error"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Profile updated",
		Data:    map[string]interface{}{"user": u},
	})
}
