package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"shopmap/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type ShopRepository interface {
	Upsert(ctx context.Context, shop *models.Shop) error
	GetByID(ctx context.Context, shopID string) (*models.Shop, error)
	GetByOSMID(ctx context.Context, osmID int64) (*models.Shop, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	RecentPosts(ctx context.Context, since time.Time) ([]models.Post, error)
	TimelineAll(ctx context.Context, viewerID string) ([]models.TimelineRow, error)
	TimelineByFollowed(ctx context.Context, viewerID string) ([]models.TimelineRow, error)
	PostsForShop(ctx context.Context, shopID string) ([]models.Post, error)
	CountByAuthor(ctx context.Context, authorID string) (int, error)
	Delete(ctx context.Context, postID string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostID(ctx context.Context, postID string) ([]models.Comment, error)
}

type SocialRepository interface {
	Follow(ctx context.Context, followerID, followedID string) error
	Unfollow(ctx context.Context, followerID, followedID string) error
	IsFollowing(ctx context.Context, followerID, followedID string) (bool, error)
	FollowersOf(ctx context.Context, userID string) ([]models.User, error)
	FollowingOf(ctx context.Context, userID string) ([]models.User, error)
	CountFollowers(ctx context.Context, userID string) (int, error)
	CountFollowing(ctx context.Context, userID string) (int, error)

	Like(ctx context.Context, userID, postID string) error
	Unlike(ctx context.Context, userID, postID string) error
	HasLiked(ctx context.Context, userID, postID string) (bool, error)
	CountLikes(ctx context.Context, postID string) (int, error)

	Bookmark(ctx context.Context, userID, shopID string) error
	Unbookmark(ctx context.Context, userID, shopID string) error
	HasBookmarked(ctx context.Context, userID, shopID string) (bool, error)
}

type StatsRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
	CountRows(ctx context.Context) (*Stats, error)
}

type Repository struct {
	User    UserRepository
	Shop    ShopRepository
	Post    PostRepository
	Comment CommentRepository
	Social  SocialRepository
	Stats   StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Shop:    NewShopRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Social:  NewSocialRepository(db),
		Stats:   NewStatsRepository(db),
	}
}
