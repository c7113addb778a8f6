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

type NoticeInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

func (in *NoticeInput) validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
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

type NoticeService struct {
	noticeRepository repository.NoticeRepository
	attachments      AttachmentList
}

func NewNoticeService(noticeRepository repository.NoticeRepository, attachments AttachmentList) *NoticeService {
	return &NoticeService{
		noticeRepository: noticeRepository,
		attachments:      attachments,
	}
}

func (s *NoticeService) Notices() ([]*model.Notice, error) {
	return s.noticeRepository.List()
}

func (s *NoticeService) Notice(id string) (*model.Notice, error) {
	return s.noticeRepository.ByID(id)
}

func (s *NoticeService) Create(in NoticeInput) (*model.Notice, error) {
	err := in.validate()
	if err != nil {
		return nil, err
	}

	notice := &model.Notice{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Content:     in.Content,
		Date:        in.Date,
		Attachments: model.Attachments{},
		CreatedAt:   time.Now(),
	}

	err = s.noticeRepository.Create(notice)
	if err != nil {
		return nil, err
	}

	slog.Info("notice created", "notice_id", notice.ID, "title", notice.Title)
	return notice, nil
}

func (s *NoticeService) Update(id string, in NoticeInput) (*model.Notice, error) {
	err := in.validate()
	if err != nil {
		return nil, err
	}

	notice, err := s.noticeRepository.ByID(id)
	if err != nil {
		return nil, err
	}
	notice.Title = in.Title
	notice.Content = in.Content
	notice.Date = in.Date

	err = s.noticeRepository.Update(notice)
	if err != nil {
		return nil, err
	}
	return notice, nil
}

// Delete removes the notice and then every attachment object in one store call.
func (s *NoticeService) Delete(ctx context.Context, id string) error {
	notice, err := s.noticeRepository.ByID(id)
	if err != nil {
		return err
	}

	err = s.noticeRepository.Delete(id)
	if err != nil {
		return err
	}

	if len(notice.Attachments) > 0 {
		s.attachments.RemoveObjects(ctx, notice.Attachments...)
	}
	slog.Info("notice deleted", "notice_id", id)
	return nil
}

// AddAttachments uploads files to the notice. Files rejected individually are
// listed in the result; the notice is saved if at least one file went in.
func (s *NoticeService) AddAttachments(ctx context.Context, id string, files []FileInput) (*model.Notice, AddResult, error) {
	notice, err := s.noticeRepository.ByID(id)
	if err != nil {
		return nil, AddResult{}, err
	}

	result, err := s.attachments.Add(ctx, notice.Attachments, files)
	if err != nil {
		return nil, result, err
	}
	if result.Uploaded == 0 {
		return notice, result, nil
	}

	previous := len(notice.Attachments)
	notice.Attachments = result.Attachments
	err = s.noticeRepository.Update(notice)
	if err != nil {
		s.attachments.RemoveObjects(ctx, result.Attachments[previous:]...)
		return nil, result, err
	}

	slog.Info("notice attachments added", "notice_id", id, "uploaded", result.Uploaded, "rejected", len(result.Rejected))
	return notice, result, nil
}

// RemoveAttachment detaches the attachment at index; the store delete is best effort.
func (s *NoticeService) RemoveAttachment(ctx context.Context, id string, index int) (*model.Notice, model.DeleteResult, error) {
	notice, err := s.noticeRepository.ByID(id)
	if err != nil {
		return nil, model.DeleteResult{}, err
	}

	rest, removed, err := s.attachments.Detach(notice.Attachments, index)
	if err != nil {
		return nil, model.DeleteResult{}, err
	}

	notice.Attachments = rest
	err = s.noticeRepository.Update(notice)
	if err != nil {
		return nil, model.DeleteResult{}, err
	}

	return notice, s.attachments.RemoveObjects(ctx, removed), nil
}
