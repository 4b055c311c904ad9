package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/examsprint/internal/domain"
)

// BackupVersion is written into every export.
const BackupVersion = "1.0"

// ExportDateLayout matches the millisecond ISO timestamps of older backups.
const ExportDateLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrInvalidBackup is returned for a backup that cannot be parsed or fails
// validation. The plan is never modified in that case.
var ErrInvalidBackup = errors.New("invalid backup file")

// Backup is the JSON export document. Pointer fields distinguish an absent
// field, which import leaves untouched, from a zero value.
type Backup struct {
	OnboardingComplete *bool            `json:"onboardingComplete,omitempty"`
	Subjects           []domain.Subject `json:"subjects"`
	GlobalTargetDate   *domain.Date     `json:"globalTargetDate,omitempty"`
	Scratchpad         *string          `json:"scratchpad,omitempty"`
	Stats              *domain.Stats    `json:"stats,omitempty"`
	ExportDate         string           `json:"exportDate,omitempty"`
	Version            string           `json:"version,omitempty"`
}

// BuildBackup captures the whole plan for export.
func BuildBackup(p domain.Plan, now time.Time) Backup {
	subjects := p.Clone().Subjects
	target := p.GlobalTargetDate
	scratchpad := p.Scratchpad
	stats := p.Stats
	onboarded := p.OnboardingComplete
	return Backup{
		OnboardingComplete: &onboarded,
		Subjects:           subjects,
		GlobalTargetDate:   &target,
		Scratchpad:         &scratchpad,
		Stats:              &stats,
		ExportDate:         now.UTC().Format(ExportDateLayout),
		Version:            BackupVersion,
	}
}

// Marshal encodes the backup as indented JSON.
func (b Backup) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}
	return data, nil
}

// ParseBackup decodes and validates a backup document.
func ParseBackup(data []byte) (*Backup, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if errs := ValidateBackupFields(fields); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBackup, errors.Join(errs...))
	}
	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return &b, nil
}

// LoadBackup reads and parses a backup file.
func LoadBackup(path string) (*Backup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBackup(data)
}

// Apply overwrites the plan fields present in the backup and leaves the
// rest of p as it was.
func (b Backup) Apply(p domain.Plan) domain.Plan {
	out := p.Clone()
	out.Subjects = domain.Plan{Subjects: b.Subjects}.Clone().Subjects
	for i := range out.Subjects {
		if out.Subjects[i].Topics == nil {
			out.Subjects[i].Topics = []domain.Topic{}
		}
	}
	if b.OnboardingComplete != nil {
		out.OnboardingComplete = *b.OnboardingComplete
	}
	if b.GlobalTargetDate != nil {
		out.GlobalTargetDate = *b.GlobalTargetDate
	}
	if b.Scratchpad != nil {
		out.Scratchpad = *b.Scratchpad
	}
	if b.Stats != nil {
		out.Stats = *b.Stats
	}
	return out
}
