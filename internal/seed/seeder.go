package seed

import (
	"context"
	_ "embed"
	"fmt"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/repository/specification"
	"study-assistant-be/internal/repository/unitofwork"

	"gopkg.in/yaml.v3"
)

//go:embed topics.yaml
var defaultTopicsYAML []byte

type TopicSeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type catalog struct {
	Topics []TopicSeed `yaml:"topics"`
}

// ParseTopics reads a topic catalog document.
func ParseTopics(data []byte) ([]TopicSeed, error) {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse topic catalog: %w", err)
	}
	for i, t := range c.Topics {
		if t.Name == "" {
			return nil, fmt.Errorf("topic #%d has no name", i+1)
		}
	}
	return c.Topics, nil
}

// DefaultTopics is the catalog embedded in the binary.
func DefaultTopics() ([]TopicSeed, error) {
	return ParseTopics(defaultTopicsYAML)
}

type TopicResult struct {
	Name    string
	Created bool
}

type Seeder struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSeeder(uowFactory unitofwork.RepositoryFactory) *Seeder {
	return &Seeder{uowFactory: uowFactory}
}

// SeedTopics creates the topics that do not exist yet. Existing topics are left
// untouched, so running it twice is harmless.
func (s *Seeder) SeedTopics(ctx context.Context, topics []TopicSeed) ([]TopicResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	results := make([]TopicResult, 0, len(topics))
	for _, t := range topics {
		existing, err := uow.StudyTopicRepository().FindOne(ctx, specification.ByName{Name: t.Name})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			results = append(results, TopicResult{Name: existing.Name})
			continue
		}

		icon := t.Icon
		if icon == "" {
			icon = entity.DefaultTopicIcon
		}
		topic := &entity.StudyTopic{
			Name:        t.Name,
			Description: t.Description,
			Icon:        icon,
			IsActive:    true,
		}
		if err := uow.StudyTopicRepository().Create(ctx, topic); err != nil {
			return nil, err
		}
		results = append(results, TopicResult{Name: topic.Name, Created: true})
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return results, nil
}
