package implementation

import (
	"context"
	"errors"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/mapper"
	"study-assistant-be/internal/model"
	"study-assistant-be/internal/repository/contract"
	"study-assistant-be/internal/repository/scope"
	"study-assistant-be/internal/repository/specification"

	"gorm.io/gorm"
)

type StudyTopicRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StudyMapper
}

func NewStudyTopicRepository(db *gorm.DB) contract.StudyTopicRepository {
	return &StudyTopicRepositoryImpl{
		db:     db,
		mapper: mapper.NewStudyMapper(),
	}
}

func (r *StudyTopicRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StudyTopicRepositoryImpl) Create(ctx context.Context, topic *entity.StudyTopic) error {
	m := r.mapper.StudyTopicToModel(topic)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*topic = *r.mapper.StudyTopicToEntity(m)
	return nil
}

func (r *StudyTopicRepositoryImpl) Update(ctx context.Context, topic *entity.StudyTopic) error {
	m := r.mapper.StudyTopicToModel(topic)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*topic = *r.mapper.StudyTopicToEntity(m)
	return nil
}

func (r *StudyTopicRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StudyTopic, error) {
	var m model.StudyTopic
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.StudyTopicToEntity(&m), nil
}

// FindAll orders by name after any ordering the specifications add.
func (r *StudyTopicRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StudyTopic, error) {
	var models []model.StudyTopic
	query := r.applySpecifications(r.db.WithContext(ctx), specs...).Scopes(scope.OrderByNameAsc)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.StudyTopicsToEntities(models), nil
}

func (r *StudyTopicRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.StudyTopic{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
