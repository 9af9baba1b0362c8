package client

import (
	"encoding/json"
	"time"
)

// Pagination is the envelope every list endpoint returns alongside its data.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	Next       bool  `json:"next"`
	Prev       bool  `json:"prev"`
}

// List is a decoded page of any entity.
type List[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Language struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Translation struct {
	Language    string `json:"language"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Manga struct {
	ID           string        `json:"id"`
	MangaUUID    string        `json:"manga_uuid"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Cover        string        `json:"cover"`
	Status       string        `json:"status"`
	Type         string        `json:"type"`
	ReleaseDate  *time.Time    `json:"releaseDate"`
	Categories   []Category    `json:"categories"`
	Languages    []Language    `json:"languages"`
	Translations []Translation `json:"translations"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type Chapter struct {
	ID            string    `json:"id"`
	MangaID       string    `json:"mangaId"`
	ChapterNumber float64   `json:"chapterNumber"`
	Title         string    `json:"title"`
	ReleaseDate   *time.Time `json:"releaseDate"`
	Views         int64     `json:"views"`
	Pages         []string  `json:"pages"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Playlist carries its tags flattened. The API returns join rows shaped
// [{"tag": {...}}]; UnmarshalJSON unwraps them so callers only ever see
// []Tag.
type Playlist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Cover       string    `json:"cover"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	Tags        []Tag     `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *Playlist) UnmarshalJSON(raw []byte) error {
	type tagRow struct {
		Tag Tag `json:"tag"`
	}
	type wire struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Cover       string    `json:"cover"`
		Link        string    `json:"link"`
		Description string    `json:"description"`
		Tags        []tagRow  `json:"tags"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}

	var w wire
	if err := json.Unmarshal(raw, &w); err != nil {
		return err
	}

	p.ID = w.ID
	p.Name = w.Name
	p.Cover = w.Cover
	p.Link = w.Link
	p.Description = w.Description
	p.CreatedAt = w.CreatedAt
	p.UpdatedAt = w.UpdatedAt
	p.Tags = make([]Tag, 0, len(w.Tags))
	for _, row := range w.Tags {
		p.Tags = append(p.Tags, row.Tag)
	}
	return nil
}

type Wallpaper struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Cover       string    `json:"cover"`
	TotalImages int64     `json:"totalImages"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type WallpaperImage struct {
	ID          string `json:"id"`
	WallpaperID string `json:"wallpaperId"`
	URL         string `json:"url"`
}

type Notification struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	Cover     *string         `json:"cover"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type User struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
	Avatar        *string    `json:"avatar"`
	Cover         *string    `json:"cover"`
	Bio           *string    `json:"bio"`
	Coins         int        `json:"coins"`
	EmailVerified bool       `json:"emailVerified"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type Statistics struct {
	Mangas         int64            `json:"mangas"`
	Chapters       int64            `json:"chapters"`
	Categories     int64            `json:"categories"`
	Languages      int64            `json:"languages"`
	Tags           int64            `json:"tags"`
	Playlists      int64            `json:"playlists"`
	Wallpapers     int64            `json:"wallpapers"`
	Notifications  int64            `json:"notifications"`
	Users          int64            `json:"users"`
	MangasByStatus map[string]int64 `json:"mangasByStatus"`
}
