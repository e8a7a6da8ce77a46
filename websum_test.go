package websum_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/websum"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := websum.Errorf(websum.EFETCH, "HTTP %d for %s", 404, "https://example.com")

	assert.Equal(t, websum.EFETCH, websum.ErrorCode(err))
	assert.Equal(t, "HTTP 404 for https://example.com", websum.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, websum.ErrorCode(nil))
}

func TestErrorCode_PlainErrorIsInternal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, websum.EINTERNAL, websum.ErrorCode(errors.New("boom")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("digest: %w", websum.Errorf(websum.ECONTENT, "too short"))

	assert.Equal(t, websum.ECONTENT, websum.ErrorCode(err))
	assert.Equal(t, "too short", websum.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, websum.ErrorMessage(nil))
}

func TestUserMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "invalid input shown verbatim",
			err:  websum.Errorf(websum.EINVALID, "Please provide a URL"),
			want: "Please provide a URL",
		},
		{
			name: "fetch failure",
			err:  websum.Errorf(websum.EFETCH, "HTTP 500 for https://example.com"),
			want: "Failed to fetch website: HTTP 500 for https://example.com",
		},
		{
			name: "content failure",
			err:  websum.Errorf(websum.ECONTENT, "Not enough textual content found on the page"),
			want: "Error processing website: Not enough textual content found on the page",
		},
		{
			name: "summary failure",
			err:  websum.Errorf(websum.ESUMMARY, "Failed to generate a summary"),
			want: "Error processing website: Failed to generate a summary",
		},
		{
			name: "unclassified error",
			err:  errors.New("index out of range"),
			want: "Error processing website: index out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, websum.UserMessage(tt.err))
		})
	}
}
