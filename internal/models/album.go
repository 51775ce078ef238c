package models

// Album caches master-release metadata fetched from the Discogs catalog.
type Album struct {
	DiscogsID   int    `gorm:"primaryKey;autoIncrement:false" json:"discogs_id"`
	Year        int    `json:"year"`
	Artist      string `gorm:"size:512" json:"artist"`
	Title       string `gorm:"size:512;not null" json:"title"`
	CoverImgURL string `gorm:"size:2048" json:"cover_img_url"`

	// Genres is populated from AlbumGenre rows for detail responses.
	Genres []string `gorm:"-" json:"genres,omitempty"`
}

// TableName specifies the table name for GORM.
func (Album) TableName() string {
	return "albums"
}

// AlbumGenre is one genre label attached to a cached album.
type AlbumGenre struct {
	DiscogsID int    `gorm:"primaryKey;autoIncrement:false" json:"discogs_id"`
	Genre     string `gorm:"primaryKey;size:64" json:"genre"`
}

// TableName specifies the table name for GORM.
func (AlbumGenre) TableName() string {
	return "albums_genres"
}
