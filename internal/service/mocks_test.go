package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"shopmap/internal/apperr"
	"shopmap/internal/geocode"
	"shopmap/internal/models"
)

// Hand-rolled fakes for the repository and collaborator interfaces.

type fakePostRepo struct {
	all      []models.TimelineRow
	followed []models.TimelineRow
	posts    map[string]*models.Post

	created   []*models.Post
	deleted   []string
	createErr error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]*models.Post{}}
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	if f.createErr != nil {
		return f.createErr
	}
	post.CreatedAt = time.Now().UTC()
	f.created = append(f.created, post)
	f.posts[post.PostID] = post
	return nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	post, ok := f.posts[postID]
	if !ok {
		return nil, apperr.NotFound("post %s not found", postID)
	}
	return post, nil
}

func (f *fakePostRepo) RecentPosts(ctx context.Context, since time.Time) ([]models.Post, error) {
	return nil, nil
}

func (f *fakePostRepo) TimelineAll(ctx context.Context, viewerID string) ([]models.TimelineRow, error) {
	return f.all, nil
}

func (f *fakePostRepo) TimelineByFollowed(ctx context.Context, viewerID string) ([]models.TimelineRow, error) {
	return f.followed, nil
}

func (f *fakePostRepo) PostsForShop(ctx context.Context, shopID string) ([]models.Post, error) {
	return nil, nil
}

func (f *fakePostRepo) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	count := 0
	for _, p := range f.posts {
		if p.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

func (f *fakePostRepo) Delete(ctx context.Context, postID string) error {
	if _, ok := f.posts[postID]; !ok {
		return apperr.NotFound("post %s not found", postID)
	}
	delete(f.posts, postID)
	f.deleted = append(f.deleted, postID)
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(ids ...string) *fakeUserRepo {
	users := map[string]*models.User{}
	for _, id := range ids {
		users[id] = &models.User{UserID: id, Username: id}
	}
	return &fakeUserRepo{users: users}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User, password string) error {
	f.users[user.UserID] = user
	return nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, apperr.NotFound("user %s not found", userID)
	}
	return user, nil
}

func (f *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperr.NotFound("user %s not found", username)
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, apperr.NotFound("user with email %s not found", email)
}

func (f *fakeUserRepo) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	return f.GetUserByUsername(ctx, username)
}

func (f *fakeUserRepo) UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error {
	return nil
}

func (f *fakeUserRepo) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	return nil, apperr.NotFound("invalid or expired refresh token")
}

type fakeSocialRepo struct {
	follows   map[string]bool
	likes     map[string]bool
	bookmarks map[string]bool
}

func newFakeSocialRepo() *fakeSocialRepo {
	return &fakeSocialRepo{
		follows:   map[string]bool{},
		likes:     map[string]bool{},
		bookmarks: map[string]bool{},
	}
}

func edge(a, b string) string { return a + "|" + b }

func (f *fakeSocialRepo) Follow(ctx context.Context, followerID, followedID string) error {
	f.follows[edge(followerID, followedID)] = true
	return nil
}

func (f *fakeSocialRepo) Unfollow(ctx context.Context, followerID, followedID string) error {
	delete(f.follows, edge(followerID, followedID))
	return nil
}

func (f *fakeSocialRepo) IsFollowing(ctx context.Context, followerID, followedID string) (bool, error) {
	return f.follows[edge(followerID, followedID)], nil
}

func (f *fakeSocialRepo) FollowersOf(ctx context.Context, userID string) ([]models.User, error) {
	return nil, nil
}

func (f *fakeSocialRepo) FollowingOf(ctx context.Context, userID string) ([]models.User, error) {
	return nil, nil
}

func (f *fakeSocialRepo) CountFollowers(ctx context.Context, userID string) (int, error) {
	count := 0
	for e := range f.follows {
		if strings.SplitN(e, "|", 2)[1] == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeSocialRepo) CountFollowing(ctx context.Context, userID string) (int, error) {
	count := 0
	for e := range f.follows {
		if strings.SplitN(e, "|", 2)[0] == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeSocialRepo) Like(ctx context.Context, userID, postID string) error {
	f.likes[edge(userID, postID)] = true
	return nil
}

func (f *fakeSocialRepo) Unlike(ctx context.Context, userID, postID string) error {
	delete(f.likes, edge(userID, postID))
	return nil
}

func (f *fakeSocialRepo) HasLiked(ctx context.Context, userID, postID string) (bool, error) {
	return f.likes[edge(userID, postID)], nil
}

func (f *fakeSocialRepo) CountLikes(ctx context.Context, postID string) (int, error) {
	count := 0
	for e := range f.likes {
		if strings.SplitN(e, "|", 2)[1] == postID {
			count++
		}
	}
	return count, nil
}

func (f *fakeSocialRepo) Bookmark(ctx context.Context, userID, shopID string) error {
	f.bookmarks[edge(userID, shopID)] = true
	return nil
}

func (f *fakeSocialRepo) Unbookmark(ctx context.Context, userID, shopID string) error {
	delete(f.bookmarks, edge(userID, shopID))
	return nil
}

func (f *fakeSocialRepo) HasBookmarked(ctx context.Context, userID, shopID string) (bool, error) {
	return f.bookmarks[edge(userID, shopID)], nil
}

type fakeShopRepo struct {
	shops   map[string]*models.Shop
	upserts int
}

func newFakeShopRepo(shops ...*models.Shop) *fakeShopRepo {
	m := map[string]*models.Shop{}
	for _, s := range shops {
		m[s.ShopID] = s
	}
	return &fakeShopRepo{shops: m}
}

func (f *fakeShopRepo) Upsert(ctx context.Context, shop *models.Shop) error {
	f.upserts++
	for _, s := range f.shops {
		if s.OSMID == shop.OSMID {
			*shop = *s
			return nil
		}
	}
	if shop.ShopID == "" {
		shop.ShopID = "shop-" + fmt.Sprint(shop.OSMID)
	}
	f.shops[shop.ShopID] = shop
	return nil
}

func (f *fakeShopRepo) GetByID(ctx context.Context, shopID string) (*models.Shop, error) {
	shop, ok := f.shops[shopID]
	if !ok {
		return nil, apperr.NotFound("shop %s not found", shopID)
	}
	return shop, nil
}

func (f *fakeShopRepo) GetByOSMID(ctx context.Context, osmID int64) (*models.Shop, error) {
	for _, s := range f.shops {
		if s.OSMID == osmID {
			return s, nil
		}
	}
	return nil, apperr.NotFound("shop with osm id %d not found", osmID)
}

type fakeCommentRepo struct {
	comments []models.Comment
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	comment.CommentID = fmt.Sprintf("comment-%d", len(f.comments)+1)
	comment.CreatedAt = time.Now().UTC()
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentRepo) GetByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeStorage struct {
	uploaded  []string
	deleted   []string
	uploadErr error
}

func (f *fakeStorage) UploadImage(ctx context.Context, postID string, fileName string, file io.Reader, size int64) (string, string, error) {
	if f.uploadErr != nil {
		return "", "", f.uploadErr
	}
	objectName := "posts/" + postID + "/" + fileName
	f.uploaded = append(f.uploaded, objectName)
	return objectName, "http://localhost:9000/images/" + objectName, nil
}

func (f *fakeStorage) DeleteImage(ctx context.Context, objectName string) error {
	f.deleted = append(f.deleted, objectName)
	return nil
}

func (f *fakeStorage) GetImageURL(ctx context.Context, objectName string) (string, error) {
	return "http://localhost:9000/images/" + objectName, nil
}

type fakeGeocoder struct {
	candidate *geocode.Candidate
	err       error
	calls     int
}

func (f *fakeGeocoder) Search(ctx context.Context, name string) (*geocode.Candidate, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.candidate, nil
}
