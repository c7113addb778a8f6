package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chapterweb/chaptersite/internal/model"
	"github.com/chapterweb/chaptersite/internal/repository"
	"github.com/chapterweb/chaptersite/internal/validation"
)

type HighlightInput struct {
	Title         string
	Description   string
	InstagramLink string
}

type HighlightService struct {
	highlightRepository repository.HighlightRepository
	image               SingleFileField
}

func NewHighlightService(highlightRepository repository.HighlightRepository, image SingleFileField) *HighlightService {
	return &HighlightService{
		highlightRepository: highlightRepository,
		image:               image,
	}
}

func (s *HighlightService) Highlights() ([]*model.EventHighlight, error) {
	return s.highlightRepository.List()
}

func (s *HighlightService) Create(ctx context.Context, in HighlightInput, file FileInput) (*model.EventHighlight, error) {
	in.Title = strings.TrimSpace(in.Title)
	err := validation.ValidateRequired("title", in.Title)
	if err != nil {
		return nil, newValidationError("title", err.Error())
	}

	ref, err := s.image.Upload(ctx, file)
	if err != nil {
		return nil, err
	}

	highlight := &model.EventHighlight{
		ID:            uuid.New().String(),
		Title:         in.Title,
		Description:   strings.TrimSpace(in.Description),
		ImageURL:      ref.URL,
		ImagePath:     ref.Path,
		InstagramLink: strings.TrimSpace(in.InstagramLink),
		CreatedAt:     time.Now(),
	}

	err = s.highlightRepository.Create(highlight)
	if err != nil {
		s.image.Clear(ctx, ref)
		return nil, err
	}

	slog.Info("event highlight added", "highlight_id", highlight.ID)
	return highlight, nil
}

func (s *HighlightService) Delete(ctx context.Context, id string) error {
	highlight, err := s.highlightRepository.ByID(id)
	if err != nil {
		return err
	}

	err = s.highlightRepository.Delete(id)
	if err != nil {
		return err
	}

	s.image.Clear(ctx, highlight.Image())
	slog.Info("event highlight deleted", "highlight_id", id)
	return nil
}
