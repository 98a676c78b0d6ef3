package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	username, ok := r.Context().Value("username").(string)
	if !ok || username == "" {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	profile, err := h.UserService.GetProfile(r.Context(), username, "")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, profile, http.StatusOK)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	viewerID, _ := r.Context().Value("userID").(string)

	profile, err := h.UserService.GetProfile(r.Context(), username, viewerID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, profile, http.StatusOK)
}

func (h *Handlers) FollowUser(w http.ResponseWriter, r *http.Request) {
	followedID := mux.Vars(r)["id"]
	viewerID, _ := r.Context().Value("userID").(string)

	if err := h.SocialService.Follow(r.Context(), viewerID, followedID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Following"}, http.StatusOK)
}

func (h *Handlers) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	followedID := mux.Vars(r)["id"]
	viewerID, _ := r.Context().Value("userID").(string)

	if err := h.SocialService.Unfollow(r.Context(), viewerID, followedID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Unfollowed"}, http.StatusOK)
}
