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

type EventInput struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Venue            string `json:"venue"`
	Category         string `json:"category"`
	RegistrationLink string `json:"registration_link"`
}

func (in *EventInput) validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Date = strings.TrimSpace(in.Date)

	err := validation.ValidateRequired("title", in.Title)
	if err != nil {
		return newValidationError("title", err.Error())
	}
	err = validation.ValidateLength("title", in.Title, 200)
	if err != nil {
		return newValidationError("title", err.Error())
	}
	err = validation.ValidateDate("date", in.Date)
	if err != nil {
		return newValidationError("date", err.Error())
	}
	return nil
}

func (in EventInput) apply(e *model.Event) {
	e.Title = in.Title
	e.Description = strings.TrimSpace(in.Description)
	e.Date = in.Date
	e.Time = strings.TrimSpace(in.Time)
	e.Venue = strings.TrimSpace(in.Venue)
	e.Category = strings.TrimSpace(in.Category)
	e.RegistrationLink = strings.TrimSpace(in.RegistrationLink)
}

type EventService struct {
	eventRepository repository.EventRepository
	poster          SingleFileField
}

func NewEventService(eventRepository repository.EventRepository, poster SingleFileField) *EventService {
	return &EventService{
		eventRepository: eventRepository,
		poster:          poster,
	}
}

func (s *EventService) Events() ([]*model.Event, error) {
	return s.eventRepository.List()
}

func (s *EventService) Event(id string) (*model.Event, error) {
	return s.eventRepository.ByID(id)
}

func (s *EventService) Create(in EventInput) (*model.Event, error) {
	err := in.validate()
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
	}
	in.apply(event)

	err = s.eventRepository.Create(event)
	if err != nil {
		return nil, err
	}

	slog.Info("event created", "event_id", event.ID, "title", event.Title)
	return event, nil
}

func (s *EventService) Update(id string, in EventInput) (*model.Event, error) {
	err := in.validate()
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepository.ByID(id)
	if err != nil {
		return nil, err
	}
	in.apply(event)

	err = s.eventRepository.Update(event)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes the event and then its poster. A poster that cannot be removed is leaked.
func (s *EventService) Delete(ctx context.Context, id string) error {
	event, err := s.eventRepository.ByID(id)
	if err != nil {
		return err
	}

	err = s.eventRepository.Delete(id)
	if err != nil {
		return err
	}

	s.poster.Clear(ctx, event.Poster())
	slog.Info("event deleted", "event_id", id)
	return nil
}

// SetPoster uploads a new poster and removes the previous one once the event is saved.
func (s *EventService) SetPoster(ctx context.Context, id string, file FileInput) (*model.Event, error) {
	event, err := s.eventRepository.ByID(id)
	if err != nil {
		return nil, err
	}

	_, err = s.poster.Replace(ctx, event.Poster(), file, func(ref model.FileRef) error {
		event.SetPoster(ref)
		return s.eventRepository.Update(event)
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// ClearPoster detaches the poster whether or not the object could be deleted.
func (s *EventService) ClearPoster(ctx context.Context, id string) (*model.Event, model.DeleteResult, error) {
	event, err := s.eventRepository.ByID(id)
	if err != nil {
		return nil, model.DeleteResult{}, err
	}

	current := event.Poster()
	event.SetPoster(model.FileRef{})
	err = s.eventRepository.Update(event)
	if err != nil {
		return nil, model.DeleteResult{}, err
	}

	return event, s.poster.Clear(ctx, current), nil
}
