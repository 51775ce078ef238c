package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"waxclub/internal/cache"
	"waxclub/internal/models"
	"waxclub/internal/repository"

	"gorm.io/gorm"
)

const (
	discogsBaseURL = "https://api.discogs.com"
	searchCacheTTL = 15 * time.Minute
)

// CatalogService talks to the Discogs catalog: it populates the local album
// cache on first sight of a release and serves authenticated album search.
type CatalogService struct {
	albumRepo repository.AlbumRepository
	http      *http.Client
	baseURL   string
	token     string
	userAgent string
}

// NewCatalogService returns a new CatalogService.
func NewCatalogService(albumRepo repository.AlbumRepository, token, userAgent string) *CatalogService {
	return &CatalogService{
		albumRepo: albumRepo,
		http:      &http.Client{Timeout: 10 * time.Second},
		baseURL:   discogsBaseURL,
		token:     token,
		userAgent: userAgent,
	}
}

// AlbumSearchResult is one hit from the Discogs master search.
type AlbumSearchResult struct {
	DiscogsID int    `json:"discogs_id"`
	Title     string `json:"title"`
	Year      string `json:"year"`
	CoverURL  string `json:"cover_url"`
}

type discogsMaster struct {
	Title   string `json:"title"`
	Year    int    `json:"year"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Genres []string `json:"genres"`
	Images []struct {
		Type string `json:"type"`
		URI  string `json:"uri"`
	} `json:"images"`
}

type discogsSearchPage struct {
	Results []struct {
		ID       int    `json:"id"`
		Title    string `json:"title"`
		Year     string `json:"year"`
		CoverImg string `json:"cover_image"`
	} `json:"results"`
}

func (s *CatalogService) doGet(ctx context.Context, rawURL string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Discogs token="+s.token)
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.NewNotFoundError("No release found in the Discogs catalog.")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("discogs request failed with status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

// EnsureAlbum returns the cached album for the given Discogs ID, fetching
// and persisting master-release metadata on first sight.
func (s *CatalogService) EnsureAlbum(ctx context.Context, discogsID int) (*models.Album, error) {
	album, err := s.albumRepo.Get(ctx, discogsID)
	if err != nil {
		return nil, err
	}
	if album != nil {
		return album, nil
	}

	var master discogsMaster
	if err := s.doGet(ctx, fmt.Sprintf("%s/masters/%d", s.baseURL, discogsID), &master); err != nil {
		return nil, err
	}

	artist := ""
	for i, a := range master.Artists {
		if i > 0 {
			artist += ", "
		}
		artist += a.Name
	}

	coverURL := ""
	for _, img := range master.Images {
		if img.Type == "primary" {
			coverURL = img.URI
			break
		}
	}

	album = &models.Album{
		DiscogsID:   discogsID,
		Year:        master.Year,
		Artist:      artist,
		Title:       master.Title,
		CoverImgURL: coverURL,
	}
	if err := s.albumRepo.Create(ctx, album); err != nil {
		// A concurrent request cached the same release; use its row.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.albumRepo.Get(ctx, discogsID)
		}
		return nil, err
	}
	if err := s.albumRepo.CreateGenres(ctx, discogsID, master.Genres); err != nil {
		return nil, err
	}
	album.Genres = master.Genres
	return album, nil
}

// Search queries Discogs masters by title and artist. Results are cached in
// Redis so repeated searches skip the upstream round trip.
func (s *CatalogService) Search(ctx context.Context, title, artist string) ([]AlbumSearchResult, error) {
	cacheKey := fmt.Sprintf("discogs:search:%s|%s", title, artist)

	var cached []AlbumSearchResult
	if err := cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	q := url.Values{}
	q.Set("type", "master")
	if title != "" {
		q.Set("title", title)
	}
	if artist != "" {
		q.Set("artist", artist)
	}

	var page discogsSearchPage
	if err := s.doGet(ctx, s.baseURL+"/database/search?"+q.Encode(), &page); err != nil {
		return nil, err
	}

	results := make([]AlbumSearchResult, 0, len(page.Results))
	for _, hit := range page.Results {
		results = append(results, AlbumSearchResult{
			DiscogsID: hit.ID,
			Title:     hit.Title,
			Year:      hit.Year,
			CoverURL:  hit.CoverImg,
		})
	}

	// A failed cache write only costs the next caller a round trip.
	_ = cache.SetJSON(ctx, cacheKey, results, searchCacheTTL)

	return results, nil
}
