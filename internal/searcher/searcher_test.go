package searcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsable(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		enabled bool
		wantErr bool
	}{
		{"present and enabled", 1, true, false},
		{"missing", 0, false, true},
		{"present but disabled", 1, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := usable(tt.count, tt.enabled)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrResumeNotFound)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
