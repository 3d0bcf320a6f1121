package contents

import "time"

// ContentType identifies the kind of copy a record was requested for
type ContentType string

const (
	TypeProfile ContentType = "profile"
	TypeReview  ContentType = "review"
	TypeInfo    ContentType = "info"
)

// reports whether the content type is one of the supported kinds
func (t ContentType) Valid() bool {
	switch t {
	case TypeProfile, TypeReview, TypeInfo:
		return true
	}

	return false
}

// Record is one generation request and its result.
//
// A record is created pending (no generated content), filled in once by the
// generation step, and optionally made public once by the share step. There
// is no deletion path; ids are never reused.
type Record struct {
	ID               int         `json:"id"`
	Topic            string      `json:"topic"`
	ContentType      ContentType `json:"contentType"`
	GeneratedContent string      `json:"generatedContent,omitempty"`
	SessionID        string      `json:"sessionId,omitempty"`
	ShareID          string      `json:"shareId,omitempty"`
	IsPublic         bool        `json:"isPublic"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// reports whether the generation step has filled in this record
func (r *Record) Generated() bool {
	return r.GeneratedContent != ""
}
