package domain

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCategories(t *testing.T) {
	build := NewRequestBuildError("publish", io.ErrUnexpectedEOF)
	transport := &TransportError{Op: "PUT", URL: "http://h:1/p", Cause: io.EOF}
	rejection := &RemoteRejectionError{Op: "PUT", URL: "http://h:1/p", StatusCode: 500, Expected: 204, Reason: "Internal Server Error"}

	for _, err := range []error{build, transport, rejection} {
		assert.ErrorIs(t, err, ErrPublishingFailed)
		assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), ErrPublishingFailed)
	}

	assert.True(t, IsRequestBuildFailure(build))
	assert.False(t, IsRequestBuildFailure(transport))
	assert.True(t, IsTransportFailure(transport))
	assert.False(t, IsTransportFailure(rejection))
	assert.True(t, IsRemoteRejection(rejection))
	assert.False(t, IsRemoteRejection(build))
}

func TestErrorCauses(t *testing.T) {
	assert.ErrorIs(t, NewRequestBuildError("x", io.ErrUnexpectedEOF), io.ErrUnexpectedEOF)
	assert.ErrorIs(t, &TransportError{Cause: io.EOF}, io.EOF)
}

func TestRemoteRejectionError_Message(t *testing.T) {
	err := error(&RemoteRejectionError{
		Op: "DELETE", URL: "http://h:1/alfrescopub/unpublish?uri=a",
		StatusCode: 404, Expected: 200, Reason: "Not Found",
	})

	assert.Contains(t, err.Error(), "404 Not Found")
	assert.Contains(t, err.Error(), "expected 200")

	var rejection *RemoteRejectionError
	require.True(t, errors.As(err, &rejection))
	assert.Equal(t, "Not Found", rejection.Reason)
}
