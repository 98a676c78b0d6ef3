package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"shopmap/internal/models"
)

type ShopDetailResponse struct {
	Shop         *models.Shop  `json:"shop"`
	Posts        []models.Post `json:"posts"`
	BookmarkedBy bool          `json:"bookmarkedByMe"`
}

// SearchShop resolves a free-text shop name through the geocoding collaborator
// and returns the single best match for the post form to pre-fill.
func (h *Handlers) SearchShop(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		WriteError(w, "Query parameter q is required", http.StatusBadRequest)
		return
	}

	candidate, err := h.Geocoder.Search(r.Context(), query)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, candidate, http.StatusOK)
}

func (h *Handlers) GetShop(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["id"]
	viewerID, _ := r.Context().Value("userID").(string)

	shop, err := h.ShopRepo.GetByID(r.Context(), shopID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	posts, err := h.PostRepo.PostsForShop(r.Context(), shopID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	bookmarked := false
	if viewerID != "" {
		bookmarked, err = h.SocialService.HasBookmarked(r.Context(), viewerID, shopID)
		if err != nil {
			WriteAppError(w, err)
			return
		}
	}

	WriteJSON(w, ShopDetailResponse{
		Shop:         shop,
		Posts:        posts,
		BookmarkedBy: bookmarked,
	}, http.StatusOK)
}

func (h *Handlers) BookmarkShop(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["id"]
	userID, _ := r.Context().Value("userID").(string)

	if err := h.SocialService.BookmarkShop(r.Context(), userID, shopID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Bookmarked"}, http.StatusOK)
}

func (h *Handlers) UnbookmarkShop(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["id"]
	userID, _ := r.Context().Value("userID").(string)

	if err := h.SocialService.UnbookmarkShop(r.Context(), userID, shopID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Bookmark removed"}, http.StatusOK)
}
