package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"
)

// AuthResource covers login, registration and the current session.
type AuthResource struct {
	c *Client
}

type RegisterInput struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Avatar   *string `json:"avatar,omitempty"`
	Cover    *string `json:"cover,omitempty"`
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (r *AuthResource) Register(ctx context.Context, in RegisterInput) error {
	return r.c.do(ctx, "POST", "/auth/register", in, nil, reqOptions{skipAuth: true})
}

func (r *AuthResource) VerifyEmail(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "code": code}
	return r.c.do(ctx, "POST", "/auth/verify-email", body, nil, reqOptions{skipAuth: true})
}

// Login authenticates and installs the returned token on the client.
func (r *AuthResource) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := r.c.do(ctx, "POST", "/auth/login", body, &out, reqOptions{skipAuth: true}); err != nil {
		return nil, err
	}
	r.c.SetToken(out.Token)
	return &out, nil
}

func (r *AuthResource) Me(ctx context.Context) (*User, error) {
	var out User
	if err := r.c.get(ctx, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MangaResource wraps /mangas and /admin/mangas.
type MangaResource struct {
	c *Client
}

type MangaFilters struct {
	Search      string
	Status      string
	Type        string
	CategoryIDs []string
	Language    string
}

func (f MangaFilters) apply(q url.Values) {
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if len(f.CategoryIDs) > 0 {
		q.Set("categories", strings.Join(f.CategoryIDs, ","))
	}
	if f.Language != "" {
		q.Set("language", f.Language)
	}
}

type TranslationInput struct {
	Language    string `json:"language"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateManga struct {
	Cover        string             `json:"cover"`
	Status       string             `json:"status"`
	Type         string             `json:"type"`
	ReleaseDate  *time.Time         `json:"releaseDate,omitempty"`
	MangaUUID    string             `json:"manga_uuid,omitempty"`
	CategoryIDs  []string           `json:"categories"`
	LanguageIDs  []string           `json:"languages"`
	Translations []TranslationInput `json:"translations"`
}

type UpdateManga struct {
	Cover        *string            `json:"cover,omitempty"`
	Status       *string            `json:"status,omitempty"`
	Type         *string            `json:"type,omitempty"`
	ReleaseDate  *time.Time         `json:"releaseDate,omitempty"`
	MangaUUID    *string            `json:"manga_uuid,omitempty"`
	CategoryIDs  []string           `json:"categories,omitempty"`
	LanguageIDs  []string           `json:"languages,omitempty"`
	Translations []TranslationInput `json:"translations,omitempty"`
}

func (r *MangaResource) List(ctx context.Context, page, limit int, filters MangaFilters) (*List[Manga], error) {
	q := listQuery(page, limit)
	filters.apply(q)

	var out List[Manga]
	if err := r.c.get(ctx, "/mangas", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *MangaResource) Get(ctx context.Context, id string) (*Manga, error) {
	var out Manga
	if err := r.c.get(ctx, "/mangas/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *MangaResource) GetByUUID(ctx context.Context, mangaUUID string) (*Manga, error) {
	var out Manga
	if err := r.c.get(ctx, "/mangas/uuid/"+mangaUUID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *MangaResource) Create(ctx context.Context, in CreateManga) (*Manga, error) {
	var out Manga
	if err := r.c.post(ctx, "/admin/mangas", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *MangaResource) Update(ctx context.Context, id string, in UpdateManga) (*Manga, error) {
	var out Manga
	if err := r.c.patch(ctx, "/admin/mangas/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *MangaResource) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, "/admin/mangas/"+id)
}

// ChapterResource wraps /chapters and /admin/chapters.
type ChapterResource struct {
	c *Client
}

type CreateChapter struct {
	MangaID       string     `json:"mangaId"`
	ChapterNumber float64    `json:"chapterNumber"`
	Title         string     `json:"title"`
	ReleaseDate   *time.Time `json:"releaseDate,omitempty"`
	Pages         []string   `json:"pages"`
}

type UpdateChapter struct {
	ChapterNumber *float64   `json:"chapterNumber,omitempty"`
	Title         *string    `json:"title,omitempty"`
	ReleaseDate   *time.Time `json:"releaseDate,omitempty"`
	Pages         []string   `json:"pages,omitempty"`
}

// List pages through chapters; mangaID narrows to one manga when non-empty.
func (r *ChapterResource) List(ctx context.Context, page, limit int, mangaID string) (*List[Chapter], error) {
	q := listQuery(page, limit)
	if mangaID != "" {
		q.Set("manga", mangaID)
	}

	var out List[Chapter]
	if err := r.c.get(ctx, "/chapters", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ChapterResource) Get(ctx context.Context, id string) (*Chapter, error) {
	var out Chapter
	if err := r.c.get(ctx, "/chapters/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ChapterResource) Create(ctx context.Context, in CreateChapter) (*Chapter, error) {
	var out Chapter
	if err := r.c.post(ctx, "/admin/chapters", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ChapterResource) Update(ctx context.Context, id string, in UpdateChapter) (*Chapter, error) {
	var out Chapter
	if err := r.c.put(ctx, "/admin/chapters/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ChapterResource) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, "/admin/chapters/"+id)
}

// CategoryResource wraps /categories and /admin/categories.
type CategoryResource struct {
	c *Client
}

type CreateCategory struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateCategory struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *CategoryResource) List(ctx context.Context, page, limit int) (*List[Category], error) {
	var out List[Category]
	if err := r.c.get(ctx, "/categories", listQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CategoryResource) Get(ctx context.Context, id string) (*Category, error) {
	var out Category
	if err := r.c.get(ctx, "/categories/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CategoryResource) Create(ctx context.Context, in CreateCategory) (*Category, error) {
	var out Category
	if err := r.c.post(ctx, "/admin/categories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CategoryResource) Update(ctx context.Context, id string, in UpdateCategory) (*Category, error) {
	var out Category
	if err := r.c.put(ctx, "/admin/categories/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CategoryResource) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, "/admin/categories/"+id)
}

// LanguageResource wraps /languages and /admin/languages.
type LanguageResource struct {
	c *Client
}

type CreateLanguage struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type UpdateLanguage struct {
	Name *string `json:"name,omitempty"`
	Code *string `json:"code,omitempty"`
}

func (r *LanguageResource) List(ctx context.Context, page, limit int) (*List[Language], error) {
	var out List[Language]
	if err := r.c.get(ctx, "/languages", listQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *LanguageResource) Get(ctx context.Context, id string) (*Language, error) {
	var out Language
	if err := r.c.get(ctx, "/languages/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *LanguageResource) Create(ctx context.Context, in CreateLanguage) (*Language, error) {
	var out Language
	if err := r.c.post(ctx, "/admin/languages", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *LanguageResource) Update(ctx context.Context, id string, in UpdateLanguage) (*Language, error) {
	var out Language
	if err := r.c.put(ctx, "/admin/languages/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *LanguageResource) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, "/admin/languages/"+id)
}

// TagResource wraps /tags and /admin/tags.
type TagResource struct {
	c *Client
}

type CreateTag struct {
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

type UpdateTag struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

func (r *TagResource) List(ctx context.Context, page, limit int) (*List[Tag], error) {
	var out List[Tag]
	if err := r.c.get(ctx, "/tags", listQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *TagResource) Get(ctx context.Context, id string) (*Tag, error) {
	var out Tag
	if err := r.c.get(ctx, "/tags/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *TagResource) Create(ctx context.Context, in CreateTag) (*Tag, error) {
	var out Tag
	if err := r.c.post(ctx, "/admin/tags", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *TagResource) Update(ctx context.Context, id string, in UpdateTag) (*Tag, error) {
	var out Tag
	if err := r.c.put(ctx, "/admin/tags/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *TagResource) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, "/admin/tags/"+id)
}

// PlaylistResource wraps /playlists and /admin/playlists. Responses carry
// tags as join rows; Playlist.UnmarshalJSON flattens them.
type PlaylistResource struct {
	c *Client
}

type CreatePlaylist struct {
	Name        string   `json:"name"`
	Cover       string   `json:"cover"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	TagIDs      []string `json:"tags"`
}

type UpdatePlaylist struct {
	Name        *string  `json:"name,omitempty"`
	Cover       *string  `json:"cover,omitempty"`
	Link        *string  `json:"link,omitempty"`
	Description *string  `json:"description,omitempty"`
	TagIDs      []string `json:"tags,omitempty"`
}

func (r *PlaylistResource) List(ctx context.Context, page, limit int) (*List[Playlist], error) {
	var out List[Playlist]
	if err := r.c.get(ctx, "/playlists", listQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PlaylistResource) Get(ctx context.Context, id string) (*Playlist, error) {
	var out Playlist
	if err := r.c.get(ctx, "/playlists/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PlaylistResource) Create(ctx context.Context, in CreatePlaylist) (*Playlist, error) {
	var out Playlist
	if err := r.c.post(ctx, "/admin/playlists", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PlaylistResource) Update(ctx context.Context, id string, in UpdatePlaylist) (*Playlist, error) {
	var out Playlist
	if err := r.c.put(ctx, "/admin/playlists/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PlaylistResource) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, "/admin/playlists/"+id)
}

// WallpaperResource wraps /wallpapers plus the per-wallpaper image
// subresource.
type WallpaperResource struct {
	c *Client
}

type CreateWallpaper struct {
	Name  string `json:"name"`
	Cover string `json:"cover"`
}

type UpdateWallpaper struct {
	Name  *string `json:"name,omitempty"`
	Cover *string `json:"cover,omitempty"`
}

func (r *WallpaperResource) List(ctx context.Context, page, limit int) (*List[Wallpaper], error) {
	var out List[Wallpaper]
	if err := r.c.get(ctx, "/wallpapers", listQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *WallpaperResource) Get(ctx context.Context, id string) (*Wallpaper, error) {
	var out Wallpaper
	if err := r.c.get(ctx, "/wallpapers/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *WallpaperResource) Create(ctx context.Context, in CreateWallpaper) (*Wallpaper, error) {
	var out Wallpaper
	if err := r.c.post(ctx, "/admin/wallpapers", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *WallpaperResource) Update(ctx context.Context, id string, in UpdateWallpaper) (*Wallpaper, error) {
	var out Wallpaper
	if err := r.c.put(ctx, "/admin/wallpapers/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *WallpaperResource) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, "/admin/wallpapers/"+id)
}

func (r *WallpaperResource) ListImages(ctx context.Context, wallpaperID string, page, limit int) (*List[WallpaperImage], error) {
	var out List[WallpaperImage]
	if err := r.c.get(ctx, "/wallpapers/"+wallpaperID+"/images", listQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *WallpaperResource) AddImage(ctx context.Context, wallpaperID, imageURL string) (*WallpaperImage, error) {
	body := map[string]string{"url": imageURL}
	var out WallpaperImage
	if err := r.c.post(ctx, "/admin/wallpapers/"+wallpaperID+"/images", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *WallpaperResource) DeleteImage(ctx context.Context, wallpaperID, imageID string) error {
	return r.c.delete(ctx, "/admin/wallpapers/"+wallpaperID+"/images/"+imageID)
}

// NotificationResource wraps /notifications and /admin/notifications.
type NotificationResource struct {
	c *Client
}

type CreateNotification struct {
	Title   string          `json:"title"`
	Message string          `json:"message"`
	Type    string          `json:"type"`
	Data    json.RawMessage `json:"data,omitempty"`
	Cover   *string         `json:"cover,omitempty"`
}

type UpdateNotification struct {
	Title   *string         `json:"title,omitempty"`
	Message *string         `json:"message,omitempty"`
	Type    *string         `json:"type,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Cover   *string         `json:"cover,omitempty"`
}

func (r *NotificationResource) List(ctx context.Context, page, limit int) (*List[Notification], error) {
	var out List[Notification]
	if err := r.c.get(ctx, "/notifications", listQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *NotificationResource) Get(ctx context.Context, id string) (*Notification, error) {
	var out Notification
	if err := r.c.get(ctx, "/notifications/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *NotificationResource) Create(ctx context.Context, in CreateNotification) (*Notification, error) {
	var out Notification
	if err := r.c.post(ctx, "/admin/notifications", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *NotificationResource) Update(ctx context.Context, id string, in UpdateNotification) (*Notification, error) {
	var out Notification
	if err := r.c.put(ctx, "/admin/notifications/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *NotificationResource) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, "/admin/notifications/"+id)
}

// UserResource wraps /admin/users. Every endpoint needs an admin token.
type UserResource struct {
	c *Client
}

type CreateUser struct {
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     string  `json:"role,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

type UpdateUser struct {
	Name   *string `json:"name,omitempty"`
	Role   *string `json:"role,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
	Cover  *string `json:"cover,omitempty"`
	Bio    *string `json:"bio,omitempty"`
	Coins  *int    `json:"coins,omitempty"`
}

func (r *UserResource) List(ctx context.Context, page, limit int) (*List[User], error) {
	var out List[User]
	if err := r.c.get(ctx, "/admin/users", listQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UserResource) Get(ctx context.Context, id string) (*User, error) {
	var out User
	if err := r.c.get(ctx, "/admin/users/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UserResource) Create(ctx context.Context, in CreateUser) (*User, error) {
	var out User
	if err := r.c.post(ctx, "/admin/users", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UserResource) Update(ctx context.Context, id string, in UpdateUser) (*User, error) {
	var out User
	if err := r.c.put(ctx, "/admin/users/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UserResource) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, "/admin/users/"+id)
}

// StatisticsResource wraps /admin/statistics.
type StatisticsResource struct {
	c *Client
}

func (r *StatisticsResource) Overview(ctx context.Context) (*Statistics, error) {
	var out Statistics
	if err := r.c.get(ctx, "/admin/statistics", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
