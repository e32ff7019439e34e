package user

import (
	"net/http"

	"airsense/internal/middleware"
	"airsense/internal/store"
	"airsense/internal/utils"
)

type DeleteHandler struct {
	Store store.Store
}

// ServeHTTP handles DELETE /api/user/account. The delete is permanent;
// outstanding tokens keep validating but resolve to no account.
func (h *DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	if err := h.Store.Delete(r.Context(), userID); err != nil {
		if err == store.ErrNotFound {
			utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Internal error"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Account deleted",
	})
}
