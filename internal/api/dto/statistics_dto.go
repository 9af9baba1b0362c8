package dto

// StatisticsResponse backs the dashboard landing page counters and the
// mangas-by-status pie chart.
type StatisticsResponse struct {
	Mangas        int64            `json:"mangas"`
	Chapters      int64            `json:"chapters"`
	Categories    int64            `json:"categories"`
	Languages     int64            `json:"languages"`
	Tags          int64            `json:"tags"`
	Playlists     int64            `json:"playlists"`
	Wallpapers    int64            `json:"wallpapers"`
	Notifications int64            `json:"notifications"`
	Users         int64            `json:"users"`
	MangasByState map[string]int64 `json:"mangasByStatus"`
}
