package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopmap/internal/apperr"
	"shopmap/internal/models"
)

var timelineColumns = []string{
	"post_id", "body", "image_url", "created_at",
	"author_id", "author_username",
	"shop_id", "shop_name", "shop_latitude", "shop_longitude",
	"like_count", "comment_count", "liked_by_viewer",
}

func TestPostRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewPostRepository(sqlxDB)
	ctx := context.Background()

	t.Run("inserts the row with id and timestamp", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO posts").
			WillReturnResult(sqlmock.NewResult(0, 1))

		post := &models.Post{AuthorID: "alice", ShopID: "shop-1", Body: "great ramen", ImageURL: "http://img"}

		err := repo.Create(ctx, post)

		require.NoError(t, err)
		assert.NotEmpty(t, post.PostID)
		assert.False(t, post.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure is a storage error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO posts").
			WillReturnError(errors.New("disk full"))

		err := repo.Create(ctx, &models.Post{AuthorID: "alice", ShopID: "shop-1"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrStorage))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostRepository_Delete(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewPostRepository(sqlxDB)
	ctx := context.Background()

	t.Run("deletes the row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM posts").
			WithArgs("post-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "post-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing post is not found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM posts").
			WithArgs("ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, "ghost")

		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})
}

func TestPostRepository_TimelineByFollowed(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewPostRepository(sqlxDB)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT p.post_id").
		WithArgs("viewer").
		WillReturnRows(sqlmock.NewRows(timelineColumns).
			AddRow("post-2", "newer", "http://img2", now, "bob", "bob",
				"shop-1", "Ramen Taro", 35.68, 139.76, 2, 1, true).
			AddRow("post-1", "older", "http://img1", now.Add(-time.Hour), "viewer", "viewer",
				"shop-2", "Cafe Hana", 35.65, 139.70, 0, 0, false))

	rows, err := repo.TimelineByFollowed(context.Background(), "viewer")

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "post-2", rows[0].PostID)
	assert.Equal(t, "bob", rows[0].AuthorUsername)
	assert.True(t, rows[0].LikedByViewer)
	assert.Equal(t, "post-1", rows[1].PostID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_RecentPosts(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewPostRepository(sqlxDB)

	since := time.Now().Add(-30 * 24 * time.Hour)
	mock.ExpectQuery("SELECT \\* FROM posts WHERE created_at").
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "author_id", "shop_id", "body", "image_url", "created_at"}).
			AddRow("post-1", "alice", "shop-1", "hi", "http://img", time.Now()))

	posts, err := repo.RecentPosts(context.Background(), since)

	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
