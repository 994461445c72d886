// Package types provides type definitions for structured data used throughout the rolemark system.
package types

import (
	"github.com/google/uuid"
)

// SignalType identifies the kind of evidence extracted from resume text.
type SignalType string

const (
	SignalDateRange               SignalType = "DATE_RANGE"
	SignalExperienceYearsEstimate SignalType = "EXPERIENCE_YEARS_ESTIMATE"
	SignalEducationLevelEstimate  SignalType = "EDUCATION_LEVEL_ESTIMATE"
	SignalKeywordMatch            SignalType = "KEYWORD_MATCH"
)

// Confidence is a qualitative reliability tag attached to an extracted signal.
type Confidence string

const (
	ConfidenceLow    Confidence = "LOW"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceHigh   Confidence = "HIGH"
)

// Signal is a discrete piece of extracted evidence from resume text.
// Signals are immutable once created; when the resume's source text changes
// they are regenerated, not updated.
type Signal struct {
	ResumeID        uuid.UUID  `json:"resume_id,omitempty"`
	Type            SignalType `json:"type"`
	Value           string     `json:"value"`
	EvidenceSnippet string     `json:"evidence_snippet,omitempty"`
	Confidence      Confidence `json:"confidence"`
}

// EducationLevel is a candidate or required education level token.
type EducationLevel string

const (
	EducationUnknown   EducationLevel = "UNKNOWN"
	EducationHS        EducationLevel = "HS"
	EducationAssociate EducationLevel = "ASSOCIATE"
	EducationBachelor  EducationLevel = "BACHELOR"
	EducationMaster    EducationLevel = "MASTER"
	EducationPHD       EducationLevel = "PHD"
)

// EducationLevelValues maps education levels to the ordinal scale used for
// partial-credit scoring. Read-only after initialization.
var EducationLevelValues = map[EducationLevel]float64{
	EducationUnknown:   0.0,
	EducationHS:        0.25,
	EducationAssociate: 0.45,
	EducationBachelor:  0.65,
	EducationMaster:    0.85,
	EducationPHD:       1.0,
}
