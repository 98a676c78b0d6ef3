package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Username               string    `json:"username" db:"username"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
}

type Shop struct {
	ShopID    string  `json:"shopId" db:"shop_id"`
	OSMID     int64   `json:"osmId" db:"osm_id"`
	Name      string  `json:"name" db:"name"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

type Post struct {
	PostID    string    `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	ShopID    string    `json:"shopId" db:"shop_id"`
	Body      string    `json:"body" db:"body"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	PostID    string    `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// TimelineRow is the materialized candidate row the ranking engine works on:
// the post joined with its author, its shop and the viewer-dependent aggregates,
// so scoring never goes back to the database mid-sort.
type TimelineRow struct {
	PostID         string    `json:"postId" db:"post_id"`
	Body           string    `json:"body" db:"body"`
	ImageURL       string    `json:"imageUrl" db:"image_url"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	AuthorID       string    `json:"authorId" db:"author_id"`
	AuthorUsername string    `json:"authorUsername" db:"author_username"`
	ShopID         string    `json:"shopId" db:"shop_id"`
	ShopName       string    `json:"shopName" db:"shop_name"`
	ShopLatitude   float64   `json:"shopLatitude" db:"shop_latitude"`
	ShopLongitude  float64   `json:"shopLongitude" db:"shop_longitude"`
	LikeCount      int       `json:"likeCount" db:"like_count"`
	CommentCount   int       `json:"commentCount" db:"comment_count"`
	LikedByViewer  bool      `json:"likedByViewer" db:"liked_by_viewer"`
}
