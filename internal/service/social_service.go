package service

import (
	"context"

	"shopmap/internal/apperr"
	"shopmap/internal/models"
	"shopmap/internal/repository"
)

type SocialService interface {
	Follow(ctx context.Context, followerID, followedID string) error
	Unfollow(ctx context.Context, followerID, followedID string) error
	IsFollowing(ctx context.Context, followerID, followedID string) (bool, error)
	FollowersOf(ctx context.Context, userID string) ([]models.User, error)
	FollowingOf(ctx context.Context, userID string) ([]models.User, error)

	LikePost(ctx context.Context, userID, postID string) (int, error)
	UnlikePost(ctx context.Context, userID, postID string) (int, error)
	HasLiked(ctx context.Context, userID, postID string) (bool, error)

	BookmarkShop(ctx context.Context, userID, shopID string) error
	UnbookmarkShop(ctx context.Context, userID, shopID string) error
	HasBookmarked(ctx context.Context, userID, shopID string) (bool, error)
}

type socialService struct {
	socialRepo repository.SocialRepository
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	shopRepo   repository.ShopRepository
}

func NewSocialService(socialRepo repository.SocialRepository, userRepo repository.UserRepository, postRepo repository.PostRepository, shopRepo repository.ShopRepository) SocialService {
	return &socialService{
		socialRepo: socialRepo,
		userRepo:   userRepo,
		postRepo:   postRepo,
		shopRepo:   shopRepo,
	}
}

// Follow adds the edge if absent. Following yourself indicates a caller bug,
// so unlike a duplicate follow it is rejected instead of silently ignored.
func (s *socialService) Follow(ctx context.Context, followerID, followedID string) error {
	if followerID == followedID {
		return apperr.Permission("cannot follow yourself")
	}

	if _, err := s.userRepo.GetUserByID(ctx, followedID); err != nil {
		return err
	}

	return s.socialRepo.Follow(ctx, followerID, followedID)
}

func (s *socialService) Unfollow(ctx context.Context, followerID, followedID string) error {
	if followerID == followedID {
		return apperr.Permission("cannot unfollow yourself")
	}

	if _, err := s.userRepo.GetUserByID(ctx, followedID); err != nil {
		return err
	}

	return s.socialRepo.Unfollow(ctx, followerID, followedID)
}

func (s *socialService) IsFollowing(ctx context.Context, followerID, followedID string) (bool, error) {
	return s.socialRepo.IsFollowing(ctx, followerID, followedID)
}

func (s *socialService) FollowersOf(ctx context.Context, userID string) ([]models.User, error) {
	return s.socialRepo.FollowersOf(ctx, userID)
}

func (s *socialService) FollowingOf(ctx context.Context, userID string) ([]models.User, error) {
	return s.socialRepo.FollowingOf(ctx, userID)
}

// LikePost records the like (no-op when already liked) and returns the fresh
// like count for the response payload.
func (s *socialService) LikePost(ctx context.Context, userID, postID string) (int, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return 0, err
	}

	if err := s.socialRepo.Like(ctx, userID, postID); err != nil {
		return 0, err
	}

	return s.socialRepo.CountLikes(ctx, postID)
}

func (s *socialService) UnlikePost(ctx context.Context, userID, postID string) (int, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return 0, err
	}

	if err := s.socialRepo.Unlike(ctx, userID, postID); err != nil {
		return 0, err
	}

	return s.socialRepo.CountLikes(ctx, postID)
}

func (s *socialService) HasLiked(ctx context.Context, userID, postID string) (bool, error) {
	return s.socialRepo.HasLiked(ctx, userID, postID)
}

func (s *socialService) BookmarkShop(ctx context.Context, userID, shopID string) error {
	if _, err := s.shopRepo.GetByID(ctx, shopID); err != nil {
		return err
	}

	return s.socialRepo.Bookmark(ctx, userID, shopID)
}

func (s *socialService) UnbookmarkShop(ctx context.Context, userID, shopID string) error {
	if _, err := s.shopRepo.GetByID(ctx, shopID); err != nil {
		return err
	}

	return s.socialRepo.Unbookmark(ctx, userID, shopID)
}

func (s *socialService) HasBookmarked(ctx context.Context, userID, shopID string) (bool, error) {
	return s.socialRepo.HasBookmarked(ctx, userID, shopID)
}
