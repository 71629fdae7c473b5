package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Event records one interaction node execution. The subject identifier (a
// company or client id) is stored only as a hash.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Node        string    `json:"node"`
	Branch      string    `json:"branch"`
	Status      int       `json:"status"`
	ErrorCode   string    `json:"errorCode,omitempty"`
	SubjectHash string    `json:"subjectHash,omitempty"`
	RequestID   string    `json:"requestId,omitempty"`
	Caller      string    `json:"caller,omitempty"`
	ClientIP    string    `json:"clientIp,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// HashSubject returns the hex sha256 of subject, or "" for an empty subject.
func HashSubject(subject string) string {
	if subject == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(subject))
	return hex.EncodeToString(sum[:])
}

// stamp fills the ID and timestamp when the caller left them empty.
func stamp(e Event) Event {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	return e
}
