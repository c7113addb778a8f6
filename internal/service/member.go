package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chapterweb/chaptersite/internal/model"
	"github.com/chapterweb/chaptersite/internal/repository"
	"github.com/chapterweb/chaptersite/internal/validation"
)

type MemberInput struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Email      string `json:"email"`
	LinkedIn   string `json:"linkedin"`
	SortOrder  int    `json:"sort_order"`
}

func (in *MemberInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	err := validation.ValidateRequired("name", in.Name)
	if err != nil {
		return newValidationError("name", err.Error())
	}
	err = validation.ValidateLength("name", in.Name, 100)
	if err != nil {
		return newValidationError("name", err.Error())
	}
	if in.Email != "" {
		err = validation.ValidateEmail(in.Email)
		if err != nil {
			return newValidationError("email", err.Error())
		}
	}
	return nil
}

func (in MemberInput) apply(m *model.Member) {
	m.Name = in.Name
	m.Role = strings.TrimSpace(in.Role)
	m.Department = strings.TrimSpace(in.Department)
	m.Email = in.Email
	m.LinkedIn = strings.TrimSpace(in.LinkedIn)
	m.SortOrder = in.SortOrder
}

type MemberService struct {
	memberRepository repository.MemberRepository
	photo            SingleFileField
}

func NewMemberService(memberRepository repository.MemberRepository, photo SingleFileField) *MemberService {
	return &MemberService{
		memberRepository: memberRepository,
		photo:            photo,
	}
}

// ParseGroup maps a URL segment such as "core-team" to its member group.
func ParseGroup(s string) (model.MemberGroup, error) {
	group := model.MemberGroup(s)
	if _, ok := group.Table(); !ok {
		return "", fmt.Errorf("%w: %s", repository.ErrUnknownGroup, s)
	}
	return group, nil
}

func (s *MemberService) Members(group model.MemberGroup) ([]*model.Member, error) {
	return s.memberRepository.List(group)
}

func (s *MemberService) Create(group model.MemberGroup, in MemberInput) (*model.Member, error) {
	err := in.validate()
	if err != nil {
		return nil, err
	}

	member := &model.Member{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
	}
	in.apply(member)

	err = s.memberRepository.Create(group, member)
	if err != nil {
		return nil, err
	}

	slog.Info("member created", "group", group, "member_id", member.ID)
	return member, nil
}

func (s *MemberService) Update(group model.MemberGroup, id string, in MemberInput) (*model.Member, error) {
	err := in.validate()
	if err != nil {
		return nil, err
	}

	member, err := s.memberRepository.ByID(group, id)
	if err != nil {
		return nil, err
	}
	in.apply(member)

	err = s.memberRepository.Update(group, member)
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) Delete(ctx context.Context, group model.MemberGroup, id string) error {
	member, err := s.memberRepository.ByID(group, id)
	if err != nil {
		return err
	}

	err = s.memberRepository.Delete(group, id)
	if err != nil {
		return err
	}

	s.photo.Clear(ctx, member.Photo())
	slog.Info("member deleted", "group", group, "member_id", id)
	return nil
}

func (s *MemberService) SetPhoto(ctx context.Context, group model.MemberGroup, id string, file FileInput) (*model.Member, error) {
	member, err := s.memberRepository.ByID(group, id)
	if err != nil {
		return nil, err
	}

	_, err = s.photo.Replace(ctx, member.Photo(), file, func(ref model.FileRef) error {
		member.SetPhoto(ref)
		return s.memberRepository.Update(group, member)
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) ClearPhoto(ctx context.Context, group model.MemberGroup, id string) (*model.Member, model.DeleteResult, error) {
	member, err := s.memberRepository.ByID(group, id)
	if err != nil {
		return nil, model.DeleteResult{}, err
	}

	current := member.Photo()
	member.SetPhoto(model.FileRef{})
	err = s.memberRepository.Update(group, member)
	if err != nil {
		return nil, model.DeleteResult{}, err
	}

	return member, s.photo.Clear(ctx, current), nil
}
