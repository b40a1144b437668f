package pathutil

import (
	"errors"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name      string
		segment   string
		wantID    int64
		wantError error
	}{
		{name: "valid ID", segment: "123", wantID: 123},
		{name: "max int64", segment: "9223372036854775807", wantID: 9223372036854775807},
		{name: "not a number", segment: "abc", wantError: ErrInvalidID},
		{name: "zero", segment: "0", wantError: ErrInvalidID},
		{name: "negative", segment: "-1", wantError: ErrInvalidID},
		{name: "empty", segment: "", wantError: ErrInvalidID},
		{name: "overflow", segment: "9223372036854775808", wantError: ErrInvalidID},
		{name: "trailing garbage", segment: "12x", wantError: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID, err := ParseID(tt.segment)
			if !errors.Is(err, tt.wantError) {
				t.Errorf("ParseID() error = %v, wantError %v", err, tt.wantError)
				return
			}
			if gotID != tt.wantID {
				t.Errorf("ParseID() = %v, want %v", gotID, tt.wantID)
			}
		})
	}
}
