package service

import (
	"shopmap/internal/config"
	"shopmap/internal/geocode"
	"shopmap/internal/repository"
	"shopmap/internal/storage"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Post     PostService
	Social   SocialService
	Timeline TimelineService
	Stats    StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, geocoder geocode.Client) *Service {
	return &Service{
		Auth:     NewAuthService(rep.User, cfg),
		User:     NewUserService(rep.User, rep.Post, rep.Social),
		Post:     NewPostService(rep.Post, rep.Comment, rep.Shop, storage, geocoder, cfg),
		Social:   NewSocialService(rep.Social, rep.User, rep.Post, rep.Shop),
		Timeline: NewTimelineService(rep.Post, cfg),
		Stats:    NewStatsService(rep.Stats),
	}
}
