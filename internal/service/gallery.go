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

type GalleryInput struct {
	Title    string
	Category string
}

type GalleryService struct {
	galleryRepository repository.GalleryRepository
	image             SingleFileField
}

func NewGalleryService(galleryRepository repository.GalleryRepository, image SingleFileField) *GalleryService {
	return &GalleryService{
		galleryRepository: galleryRepository,
		image:             image,
	}
}

// Images lists the gallery, optionally narrowed to one category.
func (s *GalleryService) Images(category string) ([]*model.GalleryImage, error) {
	return s.galleryRepository.List(strings.TrimSpace(category))
}

// Create uploads the image and records it. The upload is removed again if the record cannot be saved.
func (s *GalleryService) Create(ctx context.Context, in GalleryInput, file FileInput) (*model.GalleryImage, error) {
	in.Title = strings.TrimSpace(in.Title)
	err := validation.ValidateLength("title", in.Title, 200)
	if err != nil {
		return nil, newValidationError("title", err.Error())
	}

	ref, err := s.image.Upload(ctx, file)
	if err != nil {
		return nil, err
	}

	image := &model.GalleryImage{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Category:  strings.TrimSpace(in.Category),
		ImageURL:  ref.URL,
		ImagePath: ref.Path,
		CreatedAt: time.Now(),
	}

	err = s.galleryRepository.Create(image)
	if err != nil {
		s.image.Clear(ctx, ref)
		return nil, err
	}

	slog.Info("gallery image added", "image_id", image.ID, "path", image.ImagePath)
	return image, nil
}

func (s *GalleryService) Delete(ctx context.Context, id string) error {
	image, err := s.galleryRepository.ByID(id)
	if err != nil {
		return err
	}

	err = s.galleryRepository.Delete(id)
	if err != nil {
		return err
	}

	s.image.Clear(ctx, image.Image())
	slog.Info("gallery image deleted", "image_id", id)
	return nil
}
