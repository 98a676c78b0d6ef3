package service

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/google/uuid"

	"shopmap/internal/apperr"
	"shopmap/internal/config"
	"shopmap/internal/geocode"
	"shopmap/internal/models"
	"shopmap/internal/repository"
	"shopmap/internal/storage"
)

type CreatePostRequest struct {
	AuthorID string
	Body     string

	// Shop fields. When OSMID is zero the shop is resolved through the
	// geocoding collaborator using ShopName; otherwise the caller already
	// resolved it (map picker) and the coordinates are taken as-is.
	OSMID     int64
	ShopName  string
	Latitude  float64
	Longitude float64

	FileName string
	File     io.Reader
	FileSize int64
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, *models.Shop, error)
	DeletePost(ctx context.Context, postID, requesterID string) error
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	AddComment(ctx context.Context, postID, authorID, body string) (*models.Comment, error)
	CommentsForPost(ctx context.Context, postID string) ([]models.Comment, error)
}

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	shopRepo    repository.ShopRepository
	storage     storage.Storage
	geocoder    geocode.Client
	cfg         *config.Config
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, shopRepo repository.ShopRepository, storage storage.Storage, geocoder geocode.Client, cfg *config.Config) PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		shopRepo:    shopRepo,
		storage:     storage,
		geocoder:    geocoder,
		cfg:         cfg,
	}
}

// CreatePost resolves the shop first, then uploads the photo, then writes the
// post row. A geocoding failure therefore persists nothing, and a storage
// failure rolls the uploaded object back.
func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, *models.Shop, error) {
	if req.File == nil {
		return nil, nil, apperr.Validation("post image is required")
	}

	shop := &models.Shop{
		OSMID:     req.OSMID,
		Name:      req.ShopName,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	if req.OSMID == 0 {
		candidate, err := p.geocoder.Search(ctx, req.ShopName)
		if err != nil {
			return nil, nil, err
		}
		shop.OSMID = candidate.OSMID
		shop.Name = candidate.Name
		shop.Latitude = candidate.Latitude
		shop.Longitude = candidate.Longitude
	}

	if shop.Name == "" {
		return nil, nil, apperr.Validation("shop name is required")
	}

	shop, err := p.resolveShop(ctx, shop)
	if err != nil {
		return nil, nil, err
	}

	post := &models.Post{
		PostID:   uuid.New().String(),
		AuthorID: req.AuthorID,
		ShopID:   shop.ShopID,
		Body:     req.Body,
	}

	objectName, imageURL, err := p.storage.UploadImage(ctx, post.PostID, req.FileName, req.File, req.FileSize)
	if err != nil {
		return nil, nil, apperr.Storage("failed to upload image: %v", err)
	}
	post.ImageURL = imageURL

	err = p.postRepo.Create(ctx, post)
	if err != nil {
		// the post row never landed, remove the orphaned object
		if delErr := p.storage.DeleteImage(ctx, objectName); delErr != nil {
			log.Printf("Warning: failed to remove orphaned image %s: %v", objectName, delErr)
		}
		return nil, nil, err
	}

	return post, shop, nil
}

// resolveShop reuses the registered row for the OSM id or creates one. The
// upsert on the miss path converges with a concurrent registration of the same
// place through the unique osm_id index.
func (p *postService) resolveShop(ctx context.Context, shop *models.Shop) (*models.Shop, error) {
	existing, err := p.shopRepo.GetByOSMID(ctx, shop.OSMID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	if err := p.shopRepo.Upsert(ctx, shop); err != nil {
		return nil, err
	}

	return shop, nil
}

// DeletePost is author-only. Comments and like edges cascade with the row; the
// image artifact removal is best-effort and never fails the request.
func (p *postService) DeletePost(ctx context.Context, postID, requesterID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != requesterID {
		return apperr.Permission("only the author can delete the post")
	}

	if err := p.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	objectName := storage.ObjectNameFromURL(post.ImageURL, p.cfg.MinIO.BucketName)
	if objectName == "" {
		log.Printf("Warning: could not resolve object name from %s", post.ImageURL)
		return nil
	}
	if err := p.storage.DeleteImage(ctx, objectName); err != nil {
		log.Printf("Warning: failed to remove image %s: %v", objectName, err)
	}

	return nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return p.postRepo.GetByID(ctx, postID)
}

func (p *postService) AddComment(ctx context.Context, postID, authorID, body string) (*models.Comment, error) {
	if body == "" {
		return nil, apperr.Validation("comment body is required")
	}

	if _, err := p.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Body:     body,
	}

	if err := p.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (p *postService) CommentsForPost(ctx context.Context, postID string) ([]models.Comment, error) {
	if _, err := p.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	return p.commentRepo.GetByPostID(ctx, postID)
}
