package model

import "time"

// MemberGroup maps the public URL segment of a member listing to its table.
type MemberGroup string

const (
	MemberGroupFaculty       MemberGroup = "faculty"
	MemberGroupCoreTeam      MemberGroup = "core-team"
	MemberGroupPostHolders   MemberGroup = "post-holders"
	MemberGroupExecutiveTeam MemberGroup = "executive-team"
)

var memberTables = map[MemberGroup]string{
	MemberGroupFaculty:       "faculty",
	MemberGroupCoreTeam:      "core_team",
	MemberGroupPostHolders:   "post_holders",
	MemberGroupExecutiveTeam: "executive_team",
}

// Table returns the table backing the group and whether the group is known.
func (g MemberGroup) Table() (string, bool) {
	table, ok := memberTables[g]
	return table, ok
}

type Member struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Role       string    `db:"role" json:"role"`
	Department string    `db:"department" json:"department"`
	Email      string    `db:"email" json:"email"`
	LinkedIn   string    `db:"linkedin" json:"linkedin"`
	PhotoURL   string    `db:"photo_url" json:"photo_url"`
	PhotoPath  string    `db:"photo_path" json:"photo_path,omitempty"`
	SortOrder  int       `db:"sort_order" json:"sort_order"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

func (m *Member) Photo() FileRef {
	return FileRef{URL: m.PhotoURL, Path: m.PhotoPath}
}

func (m *Member) SetPhoto(ref FileRef) {
	m.PhotoURL = ref.URL
	m.PhotoPath = ref.Path
}
