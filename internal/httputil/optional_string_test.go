package httputil

import (
	"encoding/json"
	"testing"
)

func TestOptionalStringUnmarshal(t *testing.T) {
	type payload struct {
		ParentID OptionalString `json:"parent_id"`
	}

	tests := []struct {
		name        string
		json        string
		wantPresent bool
		wantNil     bool
		wantValue   string
	}{
		{
			name:        "absent field",
			json:        `{}`,
			wantPresent: false,
		},
		{
			name:        "explicit null",
			json:        `{"parent_id": null}`,
			wantPresent: true,
			wantNil:     true,
		},
		{
			name:        "empty string",
			json:        `{"parent_id": ""}`,
			wantPresent: true,
			wantValue:   "",
		},
		{
			name:        "value",
			json:        `{"parent_id": "abc-123"}`,
			wantPresent: true,
			wantValue:   "abc-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			if err := json.Unmarshal([]byte(tt.json), &p); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}

			if p.ParentID.Present != tt.wantPresent {
				t.Fatalf("Present = %v, want %v", p.ParentID.Present, tt.wantPresent)
			}
			if !tt.wantPresent {
				return
			}
			if tt.wantNil {
				if p.ParentID.Value != nil {
					t.Errorf("Value = %q, want nil", *p.ParentID.Value)
				}
				return
			}
			if p.ParentID.Value == nil || *p.ParentID.Value != tt.wantValue {
				t.Errorf("Value = %v, want %q", p.ParentID.Value, tt.wantValue)
			}
		})
	}
}

func TestOptionalStringRejectsNonString(t *testing.T) {
	var o OptionalString
	if err := json.Unmarshal([]byte(`42`), &o); err == nil {
		t.Error("expected error for non-string value")
	}
}
