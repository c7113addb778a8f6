package model

type SeedStatus string

const (
	SeedStatusMigrated SeedStatus = "migrated"
	SeedStatusSkipped  SeedStatus = "skipped"
	SeedStatusFailed   SeedStatus = "failed"
)

type SeedTableResult struct {
	Table  string     `json:"table"`
	Status SeedStatus `json:"status"`
	Rows   int        `json:"rows"`
	Error  string     `json:"error,omitempty"`
}

// SeedReport lists the outcome per table in the order tables were visited.
type SeedReport struct {
	Tables []SeedTableResult `json:"tables"`
}

func (r *SeedReport) count(status SeedStatus) int {
	n := 0
	for _, t := range r.Tables {
		if t.Status == status {
			n++
		}
	}
	return n
}

func (r *SeedReport) Migrated() int { return r.count(SeedStatusMigrated) }
func (r *SeedReport) Skipped() int  { return r.count(SeedStatusSkipped) }
func (r *SeedReport) Failed() int   { return r.count(SeedStatusFailed) }

// Table returns the result for a table, if it was visited.
func (r *SeedReport) Table(name string) (SeedTableResult, bool) {
	for _, t := range r.Tables {
		if t.Table == name {
			return t, true
		}
	}
	return SeedTableResult{}, false
}
