// File: internal/services/message/validator_test.go
package message

import (
	"strings"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	v := NewValidator(DefaultConfig())
	v.now = fixedNow
	return v
}

func validSubmission() Submission {
	return Submission{
		MessageID: "msg-123456",
		SessionID: "session-abcdef",
		Content:   "Hola, como estas?",
		Timestamp: fixedNow().Add(-time.Minute),
		Sender:    "user",
	}
}

func TestValidateAcceptsWellFormedSubmission(t *testing.T) {
	v := newTestValidator(t)
	if err := v.Validate(validSubmission()); err != nil {
		t.Fatalf("expected valid submission to pass, got %v", err)
	}
}

func TestValidateRejectsMissingFields(t *testing.T) {
	v := newTestValidator(t)

	cases := []struct {
		field  string
		mutate func(*Submission)
	}{
		{"message_id", func(s *Submission) { s.MessageID = "" }},
		{"session_id", func(s *Submission) { s.SessionID = "" }},
		{"content", func(s *Submission) { s.Content = "" }},
		{"sender", func(s *Submission) { s.Sender = "" }},
		{"timestamp", func(s *Submission) { s.Timestamp = time.Time{} }},
	}

	for _, tc := range cases {
		sub := validSubmission()
		tc.mutate(&sub)
		err := v.Validate(sub)
		if !IsValidation(err) {
			t.Fatalf("missing %s: expected validation error, got %v", tc.field, err)
		}
		me, _ := AsMessageError(err)
		if me.Field != tc.field {
			t.Fatalf("missing %s: error named field %q", tc.field, me.Field)
		}
	}
}

func TestValidateRejectsWhitespaceOnlyContent(t *testing.T) {
	v := newTestValidator(t)
	sub := validSubmission()
	sub.Content = "   \t\n  "
	if err := v.Validate(sub); !IsValidation(err) {
		t.Fatalf("expected validation error for whitespace-only content, got %v", err)
	}
}

func TestValidateRejectsUnknownSender(t *testing.T) {
	v := newTestValidator(t)
	for _, sender := range []string{"admin", "USER", "System", "assistant"} {
		sub := validSubmission()
		sub.Sender = sender
		err := v.Validate(sub)
		if !IsValidation(err) {
			t.Fatalf("sender %q: expected validation error, got %v", sender, err)
		}
		me, _ := AsMessageError(err)
		if me.Field != "sender" {
			t.Fatalf("sender %q: error named field %q", sender, me.Field)
		}
	}
}

func TestValidateTimestampBoundary(t *testing.T) {
	v := newTestValidator(t)

	// Strictly in the future is rejected.
	sub := validSubmission()
	sub.Timestamp = fixedNow().Add(time.Second)
	if err := v.Validate(sub); !IsValidation(err) {
		t.Fatalf("expected future timestamp to be rejected, got %v", err)
	}

	// Exactly equal to now is valid (boundary inclusive).
	sub.Timestamp = fixedNow()
	if err := v.Validate(sub); err != nil {
		t.Fatalf("expected timestamp == now to be accepted, got %v", err)
	}
}

func TestValidateIDFormats(t *testing.T) {
	v := newTestValidator(t)

	sub := validSubmission()
	sub.MessageID = "msg 123" // spaces not allowed
	if err := v.Validate(sub); !IsValidation(err) {
		t.Fatalf("expected bad message_id format rejection, got %v", err)
	}

	sub = validSubmission()
	sub.SessionID = "session.1" // dots not allowed in session ids
	if err := v.Validate(sub); !IsValidation(err) {
		t.Fatalf("expected bad session_id format rejection, got %v", err)
	}

	sub = validSubmission()
	sub.MessageID = strings.Repeat("a", 101)
	if err := v.Validate(sub); !IsValidation(err) {
		t.Fatalf("expected over-length message_id rejection, got %v", err)
	}
}

func TestValidateRejectsOverlongContent(t *testing.T) {
	v := newTestValidator(t)
	sub := validSubmission()
	sub.Content = strings.Repeat("x", 5001)
	err := v.Validate(sub)
	if !IsValidation(err) {
		t.Fatalf("expected over-length content rejection, got %v", err)
	}
	me, _ := AsMessageError(err)
	if me.Field != "content" {
		t.Fatalf("expected content field named, got %q", me.Field)
	}
}
