package handlers

import (
	"github.com/go-playground/validator/v10"

	"shopmap/internal/config"
	"shopmap/internal/geocode"
	"shopmap/internal/repository"
	"shopmap/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	UserService     service.UserService
	PostService     service.PostService
	SocialService   service.SocialService
	TimelineService service.TimelineService
	StatsService    service.StatsService
	ShopRepo        repository.ShopRepository
	PostRepo        repository.PostRepository
	Geocoder        geocode.Client
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, geocoder geocode.Client, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:     service.Auth,
		UserService:     service.User,
		PostService:     service.Post,
		SocialService:   service.Social,
		TimelineService: service.Timeline,
		StatsService:    service.Stats,
		ShopRepo:        repo.Shop,
		PostRepo:        repo.Post,
		Geocoder:        geocoder,
		Cfg:             config,
		Validate:        validator.New(),
	}
}
