package models

const watchURLPrefix = "https://www.youtube.com/watch?v="

// 영상 검색 결과 한 건
type Video struct {
	Title        string
	ThumbnailURL string
	VideoID      string
}

// WatchURL은 검색 결과의 영상 ID로 시청 URL을 만든다
func (v Video) WatchURL() string {
	return watchURLPrefix + v.VideoID
}

// 클라이언트에 내려가는 플레이리스트 항목
type PlaylistItem struct {
	Title     string `json:"title" example:"Lo-fi beats to remember"`
	Thumbnail string `json:"thumbnail" example:"https://i.ytimg.com/vi/abc123/default.jpg"`
	URL       string `json:"url" example:"https://www.youtube.com/watch?v=abc123"`
}

func NewPlaylistItem(v Video) PlaylistItem {
	return PlaylistItem{
		Title:     v.Title,
		Thumbnail: v.ThumbnailURL,
		URL:       v.WatchURL(),
	}
}
