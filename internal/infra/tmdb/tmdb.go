package infra_tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Ewen02/swipe-movie-sub000/internal/config"
	"github.com/Ewen02/swipe-movie-sub000/internal/model"
)

const posterBaseURL = "https://image.tmdb.org/t/p/w500"

// Client talks to the TMDB v3 API. It is the one concrete catalog provider;
// the usecases only see the capability interfaces.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(cfg config.Catalog) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type titleDTO struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"` // tv
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	GenreIDs     []int   `json:"genre_ids"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"` // tv
	Runtime      int     `json:"runtime"`
}

func (dto titleDTO) toModel() model.Candidate {
	title := dto.Title
	if title == model.EmptyTitle {
		title = dto.Name
	}
	release := dto.ReleaseDate
	if release == "" {
		release = dto.FirstAirDate
	}
	var poster string
	if dto.PosterPath != "" {
		poster = posterBaseURL + dto.PosterPath
	}

	return model.Candidate{
		ID:          dto.ID,
		Title:       title,
		Overview:    dto.Overview,
		PosterLink:  poster,
		GenreIDs:    dto.GenreIDs,
		VoteAverage: dto.VoteAverage,
		VoteCount:   dto.VoteCount,
		Popularity:  dto.Popularity,
		ReleaseDate: release,
		Runtime:     dto.Runtime,
	}
}

type pageDTO struct {
	Page    int        `json:"page"`
	Results []titleDTO `json:"results"`
}

type genreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type genresDTO struct {
	Genres []genreDTO `json:"genres"`
}

type providerDTO struct {
	ProviderID int    `json:"provider_id"`
	Name       string `json:"provider_name"`
}

type watchProvidersDTO struct {
	Results map[string]struct {
		Flatrate []providerDTO `json:"flatrate"`
	} `json:"results"`
}

type Genre struct {
	ID   int
	Name string
}

type WatchProvider struct {
	ID   int
	Name string
}

func (c *Client) Discover(ctx context.Context, query model.CatalogQuery) ([]model.Candidate, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("sort_by", "popularity.desc")
	if query.GenreID > 0 {
		params.Set("with_genres", strconv.Itoa(query.GenreID))
	}
	applyFilters(params, query.MediaType, query.Filters)

	var page pageDTO
	if err := c.get(ctx, fmt.Sprintf("/discover/%s", query.MediaType), params, &page); err != nil {
		return nil, err
	}

	candidates := make([]model.Candidate, 0, len(page.Results))
	for _, dto := range page.Results {
		candidates = append(candidates, dto.toModel())
	}

	return candidates, nil
}

func (c *Client) Details(ctx context.Context, mediaType model.MediaType, movieID int64) (model.Candidate, error) {
	var dto titleDTO
	if err := c.get(ctx, fmt.Sprintf("/%s/%d", mediaType, movieID), url.Values{}, &dto); err != nil {
		return model.Candidate{}, err
	}
	return dto.toModel(), nil
}

func (c *Client) Search(ctx context.Context, mediaType model.MediaType, text string, pageNum int) ([]model.Candidate, error) {
	params := url.Values{}
	params.Set("query", text)
	params.Set("page", strconv.Itoa(pageNum))

	var page pageDTO
	if err := c.get(ctx, fmt.Sprintf("/search/%s", mediaType), params, &page); err != nil {
		return nil, err
	}

	candidates := make([]model.Candidate, 0, len(page.Results))
	for _, dto := range page.Results {
		candidates = append(candidates, dto.toModel())
	}

	return candidates, nil
}

func (c *Client) Genres(ctx context.Context, mediaType model.MediaType) ([]Genre, error) {
	var dto genresDTO
	if err := c.get(ctx, fmt.Sprintf("/genre/%s/list", mediaType), url.Values{}, &dto); err != nil {
		return nil, err
	}

	genres := make([]Genre, 0, len(dto.Genres))
	for _, g := range dto.Genres {
		genres = append(genres, Genre{ID: g.ID, Name: g.Name})
	}

	return genres, nil
}

func (c *Client) WatchProviders(ctx context.Context, mediaType model.MediaType, movieID int64, region string) ([]WatchProvider, error) {
	var dto watchProvidersDTO
	if err := c.get(ctx, fmt.Sprintf("/%s/%d/watch/providers", mediaType, movieID), url.Values{}, &dto); err != nil {
		return nil, err
	}

	regional, ok := dto.Results[region]
	if !ok {
		return nil, nil
	}

	providers := make([]WatchProvider, 0, len(regional.Flatrate))
	for _, p := range regional.Flatrate {
		providers = append(providers, WatchProvider{ID: p.ProviderID, Name: p.Name})
	}

	return providers, nil
}

func applyFilters(params url.Values, mediaType model.MediaType, filters model.Filters) {
	dateField := "primary_release_date"
	if mediaType == model.MediaTypeShow {
		dateField = "first_air_date"
	}

	if filters.RatingFloor > 0 {
		params.Set("vote_average.gte", strconv.FormatFloat(filters.RatingFloor, 'f', 1, 64))
	}
	if filters.YearFrom > 0 {
		params.Set(dateField+".gte", fmt.Sprintf("%d-01-01", filters.YearFrom))
	}
	if filters.YearTo > 0 {
		params.Set(dateField+".lte", fmt.Sprintf("%d-12-31", filters.YearTo))
	}
	if filters.RuntimeMin > 0 {
		params.Set("with_runtime.gte", strconv.Itoa(filters.RuntimeMin))
	}
	if filters.RuntimeMax > 0 {
		params.Set("with_runtime.lte", strconv.Itoa(filters.RuntimeMax))
	}
	if len(filters.Providers) > 0 {
		ids := make([]string, 0, len(filters.Providers))
		for _, p := range filters.Providers {
			ids = append(ids, strconv.Itoa(p))
		}
		params.Set("with_watch_providers", strings.Join(ids, "|"))
	}
	if filters.Region != "" {
		params.Set("watch_region", filters.Region)
	}
	if filters.Language != "" {
		params.Set("with_original_language", filters.Language)
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb: unexpected status %d for %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
