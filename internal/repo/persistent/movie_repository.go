package persistent

import (
	"streamhub/internal/entity"
	"streamhub/internal/model"

	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(movie *entity.Movie) error
	GetAllActive(genre string) ([]*entity.Movie, error)
	GetActiveByID(id string) (*entity.Movie, error)
	Update(id string, updates map[string]interface{}) error
	SoftDelete(id string) error
	IncrementViews(id string) error
	CountActive() (int64, error)
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(movie *entity.Movie) error {
	movieModel := ToMovieModel(movie)
	if err := r.db.Create(movieModel).Error; err != nil {
		return err
	}
	movie.ID = movieModel.ID
	movie.CreatedAt = movieModel.CreatedAt
	movie.UpdatedAt = movieModel.UpdatedAt
	return nil
}

func (r *movieRepository) GetAllActive(genre string) ([]*entity.Movie, error) {
	query := r.db.Where("is_active = ?", true).Order("created_at DESC")
	if genre != "" {
		query = query.Where("genre = ?", genre)
	}

	var movieModels []model.MovieModel
	if err := query.Find(&movieModels).Error; err != nil {
		return nil, err
	}

	movies := make([]*entity.Movie, len(movieModels))
	for i := range movieModels {
		movies[i] = ToMovieEntity(&movieModels[i])
	}
	return movies, nil
}

func (r *movieRepository) GetActiveByID(id string) (*entity.Movie, error) {
	var movieModel model.MovieModel
	if err := r.db.Where("id = ? AND is_active = ?", id, true).First(&movieModel).Error; err != nil {
		return nil, err
	}
	return ToMovieEntity(&movieModel), nil
}

func (r *movieRepository) Update(id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&model.MovieModel{}).Where("id = ?", id).Updates(updates).Error
}

// SoftDelete flips the active flag; the row stays for audit.
func (r *movieRepository) SoftDelete(id string) error {
	return r.db.Model(&model.MovieModel{}).Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *movieRepository) IncrementViews(id string) error {
	return r.db.Model(&model.MovieModel{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *movieRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&model.MovieModel{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
