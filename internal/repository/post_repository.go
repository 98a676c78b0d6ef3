package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"shopmap/internal/apperr"
	"shopmap/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// timelineSelect joins everything the ranking engine needs into one
// materialized row, so sorting a page never goes back to the database.
const timelineSelect = `
	SELECT p.post_id, p.body, p.image_url, p.created_at,
	       p.author_id, u.username AS author_username,
	       s.shop_id, s.name AS shop_name,
	       s.latitude AS shop_latitude, s.longitude AS shop_longitude,
	       (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.post_id) AS like_count,
	       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.post_id) AS comment_count,
	       EXISTS (SELECT 1 FROM likes l WHERE l.post_id = p.post_id AND l.user_id = $1) AS liked_by_viewer
	FROM posts p
	JOIN users u ON u.user_id = p.author_id
	JOIN shops s ON s.shop_id = p.shop_id
`

// Create inserts the post row. The shop is resolved by the service through
// ShopRepository beforehand, so post.ShopID must already be set.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	post.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO posts (post_id, author_id, shop_id, body, image_url, created_at)
		VALUES (:post_id, :author_id, :shop_id, :body, :image_url, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return apperr.Storage("failed to create post: %v", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post

	query := `SELECT * FROM posts WHERE post_id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("post %s not found", postID)
		}
		return nil, apperr.Storage("failed to get post: %v", err)
	}

	return &post, nil
}

func (r *postRepository) RecentPosts(ctx context.Context, since time.Time) ([]models.Post, error) {
	query := `SELECT * FROM posts WHERE created_at >= $1`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, since)
	if err != nil {
		return nil, apperr.Storage("failed to get recent posts: %v", err)
	}

	return posts, nil
}

func (r *postRepository) TimelineAll(ctx context.Context, viewerID string) ([]models.TimelineRow, error) {
	query := timelineSelect + ` ORDER BY p.created_at DESC`

	var rows []models.TimelineRow
	err := r.db.SelectContext(ctx, &rows, query, viewerID)
	if err != nil {
		return nil, apperr.Storage("failed to load timeline: %v", err)
	}

	return rows, nil
}

// TimelineByFollowed returns posts authored by anyone the viewer follows plus
// the viewer's own, newest first. The union is over authorship, so no post can
// be counted twice.
func (r *postRepository) TimelineByFollowed(ctx context.Context, viewerID string) ([]models.TimelineRow, error) {
	query := timelineSelect + `
		WHERE p.author_id = $1
		   OR p.author_id IN (SELECT followed_id FROM follows WHERE follower_id = $1)
		ORDER BY p.created_at DESC`

	var rows []models.TimelineRow
	err := r.db.SelectContext(ctx, &rows, query, viewerID)
	if err != nil {
		return nil, apperr.Storage("failed to load followed timeline: %v", err)
	}

	return rows, nil
}

func (r *postRepository) PostsForShop(ctx context.Context, shopID string) ([]models.Post, error) {
	query := `SELECT * FROM posts WHERE shop_id = $1 ORDER BY created_at DESC`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, shopID)
	if err != nil {
		return nil, apperr.Storage("failed to get posts for shop: %v", err)
	}

	return posts, nil
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM posts WHERE author_id = $1`

	err := r.db.GetContext(ctx, &count, query, authorID)
	if err != nil {
		return 0, apperr.Storage("failed to count posts: %v", err)
	}

	return count, nil
}

// Delete removes the post row; comments and like edges go with it via
// ON DELETE CASCADE. The image artifact is the service's concern.
func (r *postRepository) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return apperr.Storage("failed to delete post: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage("failed to check deleted rows: %v", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("post %s not found", postID)
	}

	return nil
}
