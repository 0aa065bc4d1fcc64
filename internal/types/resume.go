// Package types defines the canonical resume record shared by every
// stage of the pipeline and by external collaborators.
package types

import (
	"encoding/json"
	"strings"
)

// PersonalInfo holds contact details extracted from the whole document.
// Missing values are empty strings, never absent.
type PersonalInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

// Education is a single education entry.
type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationDate string `json:"graduation_date"`
	GPA            string `json:"gpa"`
}

// Experience is a single work experience entry. Responsibilities is
// free text with one bullet per line.
type Experience struct {
	Title            string `json:"title"`
	Company          string `json:"company"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Responsibilities string `json:"responsibilities"`
}

// Project is a single project entry.
type Project struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
}

// Skills holds comma-joined skill lists. Some producers emit a single
// unclassified string instead of the technical/soft split; UnmarshalJSON
// normalizes that shape so consumers never branch on it.
type Skills struct {
	Technical string `json:"technical"`
	Soft      string `json:"soft"`
}

// skillsObject mirrors Skills for decoding without recursing into the
// custom unmarshaler.
type skillsObject struct {
	Technical string `json:"technical"`
	Soft      string `json:"soft"`
}

// UnmarshalJSON accepts either the classified object form or a bare
// string. A bare string becomes the technical list, matching how the
// rewrite collaborator falls back when it cannot classify.
func (s *Skills) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "\"") {
		var unclassified string
		if err := json.Unmarshal(data, &unclassified); err != nil {
			return err
		}
		s.Technical = unclassified
		s.Soft = ""
		return nil
	}

	var obj skillsObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	s.Technical = obj.Technical
	s.Soft = obj.Soft
	return nil
}

// IsEmpty reports whether no skills were captured at all.
func (s Skills) IsEmpty() bool {
	return s.Technical == "" && s.Soft == ""
}

// Resume is the record passed between extraction, scoring, rewriting
// and rendering. Sequence fields are never empty: extractors substitute
// a single all-blank entry when nothing was found, so downstream code
// can iterate without nil checks.
type Resume struct {
	PersonalInfo PersonalInfo `json:"personal_info"`
	Summary      string       `json:"summary"`
	Education    []Education  `json:"education"`
	Experience   []Experience `json:"experience"`
	Skills       Skills       `json:"skills"`
	Projects     []Project    `json:"projects"`
	RawText      string       `json:"raw_text"`
}

// IsZero reports whether the entry has no populated fields.
func (e Education) IsZero() bool {
	return e == Education{}
}

// IsZero reports whether the entry has no populated fields.
func (e Experience) IsZero() bool {
	return e == Experience{}
}

// IsZero reports whether the entry has no populated fields.
func (p Project) IsZero() bool {
	return p == Project{}
}

// HasEducation reports whether any non-placeholder education entry exists.
func (r *Resume) HasEducation() bool {
	for _, e := range r.Education {
		if !e.IsZero() {
			return true
		}
	}
	return false
}

// HasExperience reports whether any non-placeholder experience entry exists.
func (r *Resume) HasExperience() bool {
	for _, e := range r.Experience {
		if !e.IsZero() {
			return true
		}
	}
	return false
}

// HasProjects reports whether any non-placeholder project entry exists.
func (r *Resume) HasProjects() bool {
	for _, p := range r.Projects {
		if !p.IsZero() {
			return true
		}
	}
	return false
}

// Clone returns a deep copy. The rewrite collaborator produces an
// enhanced record from a copy so the original is never mutated.
func (r *Resume) Clone() *Resume {
	out := *r
	out.Education = append([]Education(nil), r.Education...)
	out.Experience = append([]Experience(nil), r.Experience...)
	out.Projects = append([]Project(nil), r.Projects...)
	return &out
}
