package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chapterweb/chaptersite/internal/db/dbtest"
	"github.com/chapterweb/chaptersite/internal/model"
)

func TestEventRepositoryLifecycle(t *testing.T) {
	events := NewEventRepository(dbtest.New(t))

	older := &model.Event{ID: "e1", Title: "Orientation", Date: "2024-01-10", CreatedAt: time.Now()}
	newer := &model.Event{ID: "e2", Title: "Hackathon", Date: "2024-03-02", CreatedAt: time.Now()}
	require.NoError(t, events.Create(older))
	require.NoError(t, events.Create(newer))

	list, err := events.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "e2", list[0].ID)

	newer.SetPoster(model.FileRef{URL: "https://cdn/object/public/images/events/1_a.jpg", Path: "events/1_a.jpg"})
	require.NoError(t, events.Update(newer))

	got, err := events.ByID("e2")
	require.NoError(t, err)
	assert.Equal(t, "events/1_a.jpg", got.Poster().Path)

	require.NoError(t, events.Delete("e1"))
	assert.ErrorIs(t, events.Delete("e1"), ErrEventNotFound)

	_, err = events.ByID("e1")
	assert.ErrorIs(t, err, ErrEventNotFound)

	assert.ErrorIs(t, events.Update(&model.Event{ID: "missing", Title: "x"}), ErrEventNotFound)
}

func TestNoticeRepositoryStoresAttachments(t *testing.T) {
	notices := NewNoticeRepository(dbtest.New(t))

	notice := &model.Notice{
		ID:    "n1",
		Title: "Exam schedule",
		Date:  "2024-04-01",
		Attachments: model.Attachments{
			{Name: "schedule.pdf", URL: "https://cdn/object/public/notice-attachments/notices/1_b.pdf", Type: "application/pdf", StoragePath: "notices/1_b.pdf"},
		},
		CreatedAt: time.Now(),
	}
	require.NoError(t, notices.Create(notice))

	got, err := notices.ByID("n1")
	require.NoError(t, err)
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, notice.Attachments[0], got.Attachments[0])

	got.Attachments = nil
	require.NoError(t, notices.Update(got))

	got, err = notices.ByID("n1")
	require.NoError(t, err)
	assert.NotNil(t, got.Attachments)
	assert.Empty(t, got.Attachments)
}

func TestMemberRepositoryGroups(t *testing.T) {
	members := NewMemberRepository(dbtest.New(t))

	require.NoError(t, members.Create(model.MemberGroupCoreTeam, &model.Member{ID: "m2", Name: "Ravi", SortOrder: 2, CreatedAt: time.Now()}))
	require.NoError(t, members.Create(model.MemberGroupCoreTeam, &model.Member{ID: "m1", Name: "Asha", SortOrder: 1, CreatedAt: time.Now()}))

	list, err := members.List(model.MemberGroupCoreTeam)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Asha", list[0].Name)

	faculty, err := members.List(model.MemberGroupFaculty)
	require.NoError(t, err)
	assert.Empty(t, faculty)

	_, err = members.List(model.MemberGroup("alumni"))
	assert.ErrorIs(t, err, ErrUnknownGroup)

	_, err = members.ByID(model.MemberGroupFaculty, "m1")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestGalleryRepositoryFiltersCategory(t *testing.T) {
	gallery := NewGalleryRepository(dbtest.New(t))

	require.NoError(t, gallery.Create(&model.GalleryImage{ID: "g1", Title: "Stage", Category: "techfest", ImageURL: "/a.jpg", CreatedAt: time.Now()}))
	require.NoError(t, gallery.Create(&model.GalleryImage{ID: "g2", Title: "Lab", Category: "workshop", ImageURL: "/b.jpg", CreatedAt: time.Now()}))

	all, err := gallery.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	techfest, err := gallery.List("techfest")
	require.NoError(t, err)
	require.Len(t, techfest, 1)
	assert.Equal(t, "g1", techfest[0].ID)

	require.NoError(t, gallery.Delete("g1"))
	assert.ErrorIs(t, gallery.Delete("g1"), ErrGalleryImageNotFound)
}
