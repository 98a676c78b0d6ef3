package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopmap/internal/apperr"
	"shopmap/internal/models"
)

func newSocialFixture() (*fakeSocialRepo, *fakeUserRepo, *fakePostRepo, *fakeShopRepo, SocialService) {
	socialRepo := newFakeSocialRepo()
	userRepo := newFakeUserRepo("alice", "bob")
	postRepo := newFakePostRepo()
	shopRepo := newFakeShopRepo(&models.Shop{ShopID: "shop-1", OSMID: 42, Name: "Cafe Hana"})

	svc := NewSocialService(socialRepo, userRepo, postRepo, shopRepo)
	return socialRepo, userRepo, postRepo, shopRepo, svc
}

func TestSocialService_Follow(t *testing.T) {
	ctx := context.Background()

	t.Run("self-follow is rejected before any write", func(t *testing.T) {
		socialRepo, _, _, _, svc := newSocialFixture()

		err := svc.Follow(ctx, "alice", "alice")

		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrPermission))
		assert.Empty(t, socialRepo.follows)
	})

	t.Run("self-unfollow is rejected too", func(t *testing.T) {
		_, _, _, _, svc := newSocialFixture()

		err := svc.Unfollow(ctx, "alice", "alice")

		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrPermission))
	})

	t.Run("unknown followed user is not found", func(t *testing.T) {
		_, _, _, _, svc := newSocialFixture()

		err := svc.Follow(ctx, "alice", "ghost")

		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})

	t.Run("follow twice keeps a single edge", func(t *testing.T) {
		socialRepo, _, _, _, svc := newSocialFixture()

		require.NoError(t, svc.Follow(ctx, "alice", "bob"))
		require.NoError(t, svc.Follow(ctx, "alice", "bob"))

		assert.Len(t, socialRepo.follows, 1)

		following, err := svc.IsFollowing(ctx, "alice", "bob")
		require.NoError(t, err)
		assert.True(t, following)
	})

	t.Run("unfollow of a missing edge is a no-op", func(t *testing.T) {
		_, _, _, _, svc := newSocialFixture()

		assert.NoError(t, svc.Unfollow(ctx, "alice", "bob"))
	})
}

func TestSocialService_Likes(t *testing.T) {
	ctx := context.Background()

	t.Run("like returns the fresh count", func(t *testing.T) {
		_, _, postRepo, _, svc := newSocialFixture()
		postRepo.posts["post-1"] = &models.Post{PostID: "post-1", AuthorID: "bob"}

		count, err := svc.LikePost(ctx, "alice", "post-1")

		require.NoError(t, err)
		assert.Equal(t, 1, count)

		// liking again stays at one
		count, err = svc.LikePost(ctx, "alice", "post-1")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("similar post ids keep separate counts", func(t *testing.T) {
		_, _, postRepo, _, svc := newSocialFixture()
		postRepo.posts["1"] = &models.Post{PostID: "1", AuthorID: "bob"}
		postRepo.posts["11"] = &models.Post{PostID: "11", AuthorID: "bob"}

		count, err := svc.LikePost(ctx, "alice", "11")
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		count, err = svc.LikePost(ctx, "bob", "1")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("liking a missing post is not found", func(t *testing.T) {
		_, _, _, _, svc := newSocialFixture()

		_, err := svc.LikePost(ctx, "alice", "ghost")

		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})

	t.Run("unlike drops the edge", func(t *testing.T) {
		_, _, postRepo, _, svc := newSocialFixture()
		postRepo.posts["post-1"] = &models.Post{PostID: "post-1", AuthorID: "bob"}

		_, err := svc.LikePost(ctx, "alice", "post-1")
		require.NoError(t, err)

		count, err := svc.UnlikePost(ctx, "alice", "post-1")
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		liked, err := svc.HasLiked(ctx, "alice", "post-1")
		require.NoError(t, err)
		assert.False(t, liked)
	})
}

func TestSocialService_Bookmarks(t *testing.T) {
	ctx := context.Background()

	t.Run("bookmark and unbookmark", func(t *testing.T) {
		_, _, _, _, svc := newSocialFixture()

		require.NoError(t, svc.BookmarkShop(ctx, "alice", "shop-1"))

		bookmarked, err := svc.HasBookmarked(ctx, "alice", "shop-1")
		require.NoError(t, err)
		assert.True(t, bookmarked)

		require.NoError(t, svc.UnbookmarkShop(ctx, "alice", "shop-1"))

		bookmarked, err = svc.HasBookmarked(ctx, "alice", "shop-1")
		require.NoError(t, err)
		assert.False(t, bookmarked)
	})

	t.Run("bookmarking a missing shop is not found", func(t *testing.T) {
		_, _, _, _, svc := newSocialFixture()

		err := svc.BookmarkShop(ctx, "alice", "ghost")

		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})
}
