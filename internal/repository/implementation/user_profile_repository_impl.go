package implementation

import (
	"context"
	"errors"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/mapper"
	"study-assistant-be/internal/model"
	"study-assistant-be/internal/repository/contract"
	"study-assistant-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StudyMapper
}

func NewUserProfileRepository(db *gorm.DB) contract.UserProfileRepository {
	return &UserProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewStudyMapper(),
	}
}

func (r *UserProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserProfileRepositoryImpl) Create(ctx context.Context, profile *entity.UserProfile) error {
	m := r.mapper.UserProfileToModel(profile)
	if m.ThemePreference == "" {
		m.ThemePreference = string(entity.ThemeLight)
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.UserProfileToEntity(m)
	return nil
}

func (r *UserProfileRepositoryImpl) CreateIfAbsent(ctx context.Context, profile *entity.UserProfile) (bool, error) {
	m := r.mapper.UserProfileToModel(profile)
	if m.ThemePreference == "" {
		m.ThemePreference = string(entity.ThemeLight)
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Omit("FavouriteTopics").
		Create(m)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	*profile = *r.mapper.UserProfileToEntity(m)
	return true, nil
}

func (r *UserProfileRepositoryImpl) Update(ctx context.Context, profile *entity.UserProfile) error {
	m := r.mapper.UserProfileToModel(profile)
	if err := r.db.WithContext(ctx).Omit("FavouriteTopics").Save(m).Error; err != nil {
		return err
	}
	topics := profile.FavouriteTopics
	*profile = *r.mapper.UserProfileToEntity(m)
	profile.FavouriteTopics = topics
	return nil
}

func (r *UserProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserProfile, error) {
	var m model.UserProfile
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("FavouriteTopics"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.UserProfileToEntity(&m), nil
}
