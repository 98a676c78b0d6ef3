package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"shopmap/internal/apperr"
	"shopmap/internal/models"
)

type socialRepository struct {
	db *sqlx.DB
}

func NewSocialRepository(db *sqlx.DB) SocialRepository {
	return &socialRepository{db: db}
}

// Edge inserts rely on the composite primary keys plus ON CONFLICT DO NOTHING,
// so concurrent identical mutations converge to a single edge without raising.

func (r *socialRepository) Follow(ctx context.Context, followerID, followedID string) error {
	query := `
		INSERT INTO follows (follower_id, followed_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followed_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, followerID, followedID)
	if err != nil {
		return apperr.Storage("failed to follow: %v", err)
	}

	return nil
}

func (r *socialRepository) Unfollow(ctx context.Context, followerID, followedID string) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2`

	_, err := r.db.ExecContext(ctx, query, followerID, followedID)
	if err != nil {
		return apperr.Storage("failed to unfollow: %v", err)
	}

	return nil
}

func (r *socialRepository) IsFollowing(ctx context.Context, followerID, followedID string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND followed_id = $2)`

	err := r.db.GetContext(ctx, &exists, query, followerID, followedID)
	if err != nil {
		return false, apperr.Storage("failed to check follow: %v", err)
	}

	return exists, nil
}

func (r *socialRepository) FollowersOf(ctx context.Context, userID string) ([]models.User, error) {
	query := `
		SELECT u.* FROM users u
		JOIN follows f ON f.follower_id = u.user_id
		WHERE f.followed_id = $1
	`

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, userID)
	if err != nil {
		return nil, apperr.Storage("failed to get followers: %v", err)
	}

	return users, nil
}

func (r *socialRepository) FollowingOf(ctx context.Context, userID string) ([]models.User, error) {
	query := `
		SELECT u.* FROM users u
		JOIN follows f ON f.followed_id = u.user_id
		WHERE f.follower_id = $1
	`

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, userID)
	if err != nil {
		return nil, apperr.Storage("failed to get following: %v", err)
	}

	return users, nil
}

func (r *socialRepository) CountFollowers(ctx context.Context, userID string) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM follows WHERE followed_id = $1`

	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, apperr.Storage("failed to count followers: %v", err)
	}

	return count, nil
}

func (r *socialRepository) CountFollowing(ctx context.Context, userID string) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM follows WHERE follower_id = $1`

	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, apperr.Storage("failed to count following: %v", err)
	}

	return count, nil
}

func (r *socialRepository) Like(ctx context.Context, userID, postID string) error {
	query := `
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return apperr.Storage("failed to like post: %v", err)
	}

	return nil
}

func (r *socialRepository) Unlike(ctx context.Context, userID, postID string) error {
	query := `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`

	_, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return apperr.Storage("failed to unlike post: %v", err)
	}

	return nil
}

func (r *socialRepository) HasLiked(ctx context.Context, userID, postID string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND post_id = $2)`

	err := r.db.GetContext(ctx, &exists, query, userID, postID)
	if err != nil {
		return false, apperr.Storage("failed to check like: %v", err)
	}

	return exists, nil
}

func (r *socialRepository) CountLikes(ctx context.Context, postID string) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM likes WHERE post_id = $1`

	err := r.db.GetContext(ctx, &count, query, postID)
	if err != nil {
		return 0, apperr.Storage("failed to count likes: %v", err)
	}

	return count, nil
}

func (r *socialRepository) Bookmark(ctx context.Context, userID, shopID string) error {
	query := `
		INSERT INTO bookmarks (user_id, shop_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, shop_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, userID, shopID)
	if err != nil {
		return apperr.Storage("failed to bookmark shop: %v", err)
	}

	return nil
}

func (r *socialRepository) Unbookmark(ctx context.Context, userID, shopID string) error {
	query := `DELETE FROM bookmarks WHERE user_id = $1 AND shop_id = $2`

	_, err := r.db.ExecContext(ctx, query, userID, shopID)
	if err != nil {
		return apperr.Storage("failed to unbookmark shop: %v", err)
	}

	return nil
}

func (r *socialRepository) HasBookmarked(ctx context.Context, userID, shopID string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM bookmarks WHERE user_id = $1 AND shop_id = $2)`

	err := r.db.GetContext(ctx, &exists, query, userID, shopID)
	if err != nil {
		return false, apperr.Storage("failed to check bookmark: %v", err)
	}

	return exists, nil
}
