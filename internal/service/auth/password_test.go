package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExactVerifierCompare(t *testing.T) {
	t.Parallel()

	verifier := NewExactVerifier()

	tests := []struct {
		name     string
		stored   string
		supplied string
		want     bool
	}{
		{name: "identical", stored: "s3cret", supplied: "s3cret", want: true},
		{name: "different", stored: "s3cret", supplied: "other", want: false},
		{name: "case matters", stored: "s3cret", supplied: "S3CRET", want: false},
		{name: "whitespace matters", stored: "s3cret", supplied: " s3cret", want: false},
		{name: "prefix is not enough", stored: "s3cret", supplied: "s3cre", want: false},
		{name: "both empty", stored: "", supplied: "", want: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, verifier.Compare(tc.stored, tc.supplied))
		})
	}
}
