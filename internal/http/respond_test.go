package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDecodeIDParam(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr bool
	}{
		{"valid", "42", 42, false},
		{"large", "9007199254740993", 9007199254740993, false},
		{"missing", "", 0, true},
		{"non-numeric", "abc", 0, true},
		{"zero", "0", 0, true},
		{"negative", "-5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users/x", nil)
			if tt.value != "" {
				req = attachIDParam(req, "id", tt.value)
			}
			got, err := decodeIDParam(req, "id")
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeIDParam(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("decodeIDParam(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}
