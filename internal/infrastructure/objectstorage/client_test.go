package objectstorage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/errors"
)

func TestSanitizeObjectPath(t *testing.T) {
	t.Run("valid paths", func(t *testing.T) {
		tests := []struct {
			input string
			want  string
		}{
			{input: "uploads/abc-123", want: "uploads/abc-123"},
			{input: "uploads/report%20final.pdf", want: "uploads/report final.pdf"},
		}

		for _, tt := range tests {
			got, err := SanitizeObjectPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		}
	})

	t.Run("rejected paths", func(t *testing.T) {
		inputs := []string{
			"uploads/../secrets",
			"uploads//etc/passwd",
			`uploads\..\secrets`,
			"uploads/%2e%2e/secrets", // encoded traversal decodes to ".."
			"uploads/%zz",            // broken escape
		}

		for _, input := range inputs {
			_, err := SanitizeObjectPath(input)
			assert.True(t, errors.IsValidationError(err), "expected %q to be rejected", input)
		}
	})
}
