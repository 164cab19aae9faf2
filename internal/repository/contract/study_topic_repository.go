package contract

import (
	"context"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/repository/specification"
)

type StudyTopicRepository interface {
	Create(ctx context.Context, topic *entity.StudyTopic) error
	Update(ctx context.Context, topic *entity.StudyTopic) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StudyTopic, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StudyTopic, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
