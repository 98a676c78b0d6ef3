package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"shopmap/internal/models"
	"shopmap/internal/service"
)

type PostDetailResponse struct {
	Post     *models.Post     `json:"post"`
	Comments []models.Comment `json:"comments"`
}

type CreatePostResponse struct {
	Post *models.Post `json:"post"`
	Shop *models.Shop `json:"shop"`
}

type LikeResponse struct {
	Status     string `json:"status"`
	LikesCount int    `json:"likes_count"`
}

type CommentRequest struct {
	Body string `json:"body" validate:"required"`
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// CreatePost accepts a multipart form: image (file), body, shop_name and the
// optional pre-resolved shop fields shop_osm_id / shop_latitude /
// shop_longitude from the map picker. Without an OSM id the shop name goes
// through the geocoding collaborator.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := r.Context().Value("userID").(string)
	if !ok || authorID == "" {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("File too large (max %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Failed to parse form", http.StatusBadRequest)
		}
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		WriteError(w, "Unsupported file type. Allowed: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	shopName := r.FormValue("shop_name")
	if shopName == "" {
		WriteError(w, "Shop name is required", http.StatusBadRequest)
		return
	}

	req := service.CreatePostRequest{
		AuthorID: authorID,
		Body:     r.FormValue("body"),
		ShopName: shopName,
		FileName: header.Filename,
		File:     file,
		FileSize: header.Size,
	}

	if raw := r.FormValue("shop_osm_id"); raw != "" {
		osmID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			WriteError(w, "Invalid shop_osm_id", http.StatusBadRequest)
			return
		}
		lat, errLat := strconv.ParseFloat(r.FormValue("shop_latitude"), 64)
		lon, errLon := strconv.ParseFloat(r.FormValue("shop_longitude"), 64)
		if errLat != nil || errLon != nil {
			WriteError(w, "Invalid shop coordinates", http.StatusBadRequest)
			return
		}
		req.OSMID = osmID
		req.Latitude = lat
		req.Longitude = lon
	}

	post, shop, err := h.PostService.CreatePost(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, CreatePostResponse{Post: post, Shop: shop}, http.StatusCreated)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	comments, err := h.PostService.CommentsForPost(r.Context(), postID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, PostDetailResponse{Post: post, Comments: comments}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]
	requesterID, _ := r.Context().Value("userID").(string)

	if err := h.PostService.DeletePost(r.Context(), postID, requesterID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Post deleted"}, http.StatusOK)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]
	userID, _ := r.Context().Value("userID").(string)

	count, err := h.SocialService.LikePost(r.Context(), userID, postID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, LikeResponse{Status: "ok", LikesCount: count}, http.StatusOK)
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]
	userID, _ := r.Context().Value("userID").(string)

	count, err := h.SocialService.UnlikePost(r.Context(), userID, postID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, LikeResponse{Status: "ok", LikesCount: count}, http.StatusOK)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]
	authorID, _ := r.Context().Value("userID").(string)

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.PostService.AddComment(r.Context(), postID, authorID, req.Body)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	comments, err := h.PostService.CommentsForPost(r.Context(), postID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, comments, http.StatusOK)
}
