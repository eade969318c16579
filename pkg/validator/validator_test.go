package validator

import (
	"strings"
	"testing"
)

type taskPayload struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Sender      string `json:"sender" validate:"omitempty,oneof=user ai"`
}

func TestValidateStructSuccess(t *testing.T) {
	payload := taskPayload{Title: "Buy milk", Sender: "user"}

	if err := ValidateStruct(payload); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	payload := taskPayload{Title: "", Sender: "system"}

	err := ValidateStruct(payload)
	if err == nil {
		t.Fatal("expected validation error")
	}

	failures, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(failures) != 2 {
		t.Fatalf("expected 2 failures, got %d", len(failures))
	}
	if failures[0].Field != "title" || failures[0].Tag != "required" {
		t.Fatalf("unexpected first failure: %+v", failures[0])
	}
	if failures[1].Field != "sender" || failures[1].Tag != "oneof" {
		t.Fatalf("unexpected second failure: %+v", failures[1])
	}
	if !strings.Contains(failures.Error(), "title failed on required") {
		t.Fatalf("unexpected error string: %s", failures.Error())
	}
}

func TestValidateStructMaxBound(t *testing.T) {
	payload := taskPayload{Title: strings.Repeat("x", 256)}

	err := ValidateStruct(payload)
	if err == nil {
		t.Fatal("expected validation error for oversized title")
	}
}
