package service

import (
	"context"

	"shopmap/internal/models"
	"shopmap/internal/repository"
)

// Profile is the public view of a user with its social counts.
type Profile struct {
	User           *models.User `json:"user"`
	PostCount      int          `json:"postCount"`
	FollowerCount  int          `json:"followerCount"`
	FollowingCount int          `json:"followingCount"`
	FollowedByMe   bool         `json:"followedByMe"`
}

type UserService interface {
	GetProfile(ctx context.Context, username, viewerID string) (*Profile, error)
}

type userService struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	socialRepo repository.SocialRepository
}

func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository, socialRepo repository.SocialRepository) UserService {
	return &userService{
		userRepo:   userRepo,
		postRepo:   postRepo,
		socialRepo: socialRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, username, viewerID string) (*Profile, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	postCount, err := s.postRepo.CountByAuthor(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	followerCount, err := s.socialRepo.CountFollowers(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	followingCount, err := s.socialRepo.CountFollowing(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	followedByMe := false
	if viewerID != "" && viewerID != user.UserID {
		followedByMe, err = s.socialRepo.IsFollowing(ctx, viewerID, user.UserID)
		if err != nil {
			return nil, err
		}
	}

	return &Profile{
		User:           user,
		PostCount:      postCount,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
		FollowedByMe:   followedByMe,
	}, nil
}
