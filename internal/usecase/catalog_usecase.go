package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/repo/persistent"
	"streamhub/pkg/logger"
	"streamhub/pkg/s3"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const movieListCacheTTL = 60 * time.Second

// AdPolicy is the fixed per-session gating policy handed to the client
// player: how many ads to queue and how they are paced.
type AdPolicy struct {
	AdsPerSession      int
	AdDurationSeconds  int
	AdSkipAfterSeconds int
}

// WatchSession is the server's answer to a watch-start request. Ad gating
// itself runs client-side; the premium restriction is the only part
// enforced here.
type WatchSession struct {
	Movie              *entity.Movie `json:"movie"`
	RequiresAds        bool          `json:"requires_ads"`
	AdsCount           int           `json:"ads_count"`
	AdDurationSeconds  int           `json:"ad_duration_seconds"`
	AdSkipAfterSeconds int           `json:"ad_skip_after_seconds"`
}

type CreateMovieInput struct {
	Title        string
	Description  string
	ThumbnailURL string
	VideoURL     string
	Duration     int
	Year         int
	Genre        string
	IsPremium    bool
}

type UpdateMovieInput struct {
	Title        *string
	Description  *string
	ThumbnailURL *string
	VideoURL     *string
	Duration     *int
	Year         *int
	Genre        *string
	IsPremium    *bool
}

type CatalogUseCase interface {
	ListMovies(genre string) ([]*entity.Movie, error)
	GetMovie(id string) (*entity.Movie, error)
	CreateMovie(in CreateMovieInput) (*entity.Movie, error)
	UpdateMovie(id string, in UpdateMovieInput) (*entity.Movie, error)
	DeleteMovie(id string) error
	AttachMedia(movieID, kind string, file io.Reader, contentType string) (*entity.Movie, error)
	StartWatch(userID, movieID string) (*WatchSession, error)
}

type catalogUseCase struct {
	movieRepo   persistent.MovieRepository
	entitlement EntitlementUseCase
	s3Client    *s3.Client
	redisClient *redis.Client
	adPolicy    AdPolicy
	logger      *logger.Logger
}

func NewCatalogUseCase(
	movieRepo persistent.MovieRepository,
	entitlement EntitlementUseCase,
	s3Client *s3.Client,
	redisClient *redis.Client,
	adPolicy AdPolicy,
	logger *logger.Logger,
) CatalogUseCase {
	return &catalogUseCase{
		movieRepo:   movieRepo,
		entitlement: entitlement,
		s3Client:    s3Client,
		redisClient: redisClient,
		adPolicy:    adPolicy,
		logger:      logger,
	}
}

func (uc *catalogUseCase) ListMovies(genre string) ([]*entity.Movie, error) {
	cacheKey := fmt.Sprintf("movies:list:%s", genre)

	if uc.redisClient != nil {
		cached, err := uc.redisClient.Get(context.Background(), cacheKey).Result()
		if err == nil {
			var movies []*entity.Movie
			if err := json.Unmarshal([]byte(cached), &movies); err == nil {
				return movies, nil
			}
		}
	}

	movies, err := uc.movieRepo.GetAllActive(genre)
	if err != nil {
		uc.logger.Error("Failed to list movies: %v", err)
		return nil, fmt.Errorf("failed to list movies")
	}

	if uc.redisClient != nil {
		if data, err := json.Marshal(movies); err == nil {
			uc.redisClient.Set(context.Background(), cacheKey, data, movieListCacheTTL)
		}
	}

	return movies, nil
}

func (uc *catalogUseCase) GetMovie(id string) (*entity.Movie, error) {
	movie, err := uc.movieRepo.GetActiveByID(id)
	if err != nil {
		return nil, fmt.Errorf("movie not found")
	}
	return movie, nil
}

func (uc *catalogUseCase) CreateMovie(in CreateMovieInput) (*entity.Movie, error) {
	movie := &entity.Movie{
		Title:        in.Title,
		Description:  in.Description,
		ThumbnailURL: in.ThumbnailURL,
		VideoURL:     in.VideoURL,
		Duration:     in.Duration,
		Year:         in.Year,
		Genre:        in.Genre,
		IsPremium:    in.IsPremium,
		IsActive:     true,
	}
	if err := uc.movieRepo.Create(movie); err != nil {
		uc.logger.Error("Failed to create movie: %v", err)
		return nil, fmt.Errorf("failed to create movie")
	}

	uc.invalidateListCache(movie.Genre)
	return movie, nil
}

func (uc *catalogUseCase) UpdateMovie(id string, in UpdateMovieInput) (*entity.Movie, error) {
	movie, err := uc.movieRepo.GetActiveByID(id)
	if err != nil {
		return nil, fmt.Errorf("movie not found")
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.ThumbnailURL != nil {
		updates["thumbnail_url"] = *in.ThumbnailURL
	}
	if in.VideoURL != nil {
		updates["video_url"] = *in.VideoURL
	}
	if in.Duration != nil {
		updates["duration"] = *in.Duration
	}
	if in.Year != nil {
		updates["year"] = *in.Year
	}
	if in.Genre != nil {
		updates["genre"] = *in.Genre
	}
	if in.IsPremium != nil {
		updates["is_premium"] = *in.IsPremium
	}

	if err := uc.movieRepo.Update(id, updates); err != nil {
		uc.logger.Error("Failed to update movie %s: %v", id, err)
		return nil, fmt.Errorf("failed to update movie")
	}

	uc.invalidateListCache(movie.Genre)
	if in.Genre != nil && *in.Genre != movie.Genre {
		uc.invalidateListCache(*in.Genre)
	}

	return uc.movieRepo.GetActiveByID(id)
}

func (uc *catalogUseCase) DeleteMovie(id string) error {
	movie, err := uc.movieRepo.GetActiveByID(id)
	if err != nil {
		return fmt.Errorf("movie not found")
	}

	if err := uc.movieRepo.SoftDelete(id); err != nil {
		uc.logger.Error("Failed to delete movie %s: %v", id, err)
		return fmt.Errorf("failed to delete movie")
	}

	uc.invalidateListCache(movie.Genre)
	return nil
}

func (uc *catalogUseCase) AttachMedia(movieID, kind string, file io.Reader, contentType string) (*entity.Movie, error) {
	movie, err := uc.movieRepo.GetActiveByID(movieID)
	if err != nil {
		return nil, fmt.Errorf("movie not found")
	}

	if kind != "thumbnail" && kind != "video" {
		return nil, fmt.Errorf("unknown media kind")
	}

	key := fmt.Sprintf("movies/%s/%s-%s", movieID, kind, uuid.New().String())
	url, err := uc.s3Client.UploadFile(key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload %s for movie %s: %v", kind, movieID, err)
		return nil, fmt.Errorf("failed to upload media")
	}

	column := "thumbnail_url"
	if kind == "video" {
		column = "video_url"
	}
	if err := uc.movieRepo.Update(movieID, map[string]interface{}{column: url}); err != nil {
		uc.logger.Error("Failed to store media URL for movie %s: %v", movieID, err)
		return nil, fmt.Errorf("failed to update movie")
	}

	uc.invalidateListCache(movie.Genre)
	return uc.movieRepo.GetActiveByID(movieID)
}

// StartWatch checks the premium restriction, bumps the view counter and
// tells the client whether an ad queue must run first. The ad queue itself
// is advisory: nothing here verifies the ads were actually completed.
func (uc *catalogUseCase) StartWatch(userID, movieID string) (*WatchSession, error) {
	movie, err := uc.movieRepo.GetActiveByID(movieID)
	if err != nil {
		return nil, fmt.Errorf("movie not found")
	}

	premium, err := uc.entitlement.HasPremiumAccess(userID)
	if err != nil {
		return nil, err
	}

	if movie.IsPremium && !premium {
		return nil, fmt.Errorf("premium subscription required")
	}

	if err := uc.movieRepo.IncrementViews(movieID); err != nil {
		uc.logger.Error("Failed to increment views for movie %s: %v", movieID, err)
	}

	session := &WatchSession{
		Movie:              movie,
		RequiresAds:        !premium,
		AdDurationSeconds:  uc.adPolicy.AdDurationSeconds,
		AdSkipAfterSeconds: uc.adPolicy.AdSkipAfterSeconds,
	}
	if !premium {
		session.AdsCount = uc.adPolicy.AdsPerSession
	}
	return session, nil
}

func (uc *catalogUseCase) invalidateListCache(genre string) {
	if uc.redisClient == nil {
		return
	}
	ctx := context.Background()
	uc.redisClient.Del(ctx, "movies:list:")
	if genre != "" {
		uc.redisClient.Del(ctx, fmt.Sprintf("movies:list:%s", genre))
	}
}
