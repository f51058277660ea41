package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(ErrAssetNotFound))
	assert.Equal(t, KindPreconditionFailed, KindOf(ErrAssetAlreadyIssued))
	assert.Equal(t, KindValidationFailed, KindOf(ErrMissingRegistration))
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("untagged")))

	wrapped := fmt.Errorf("issue failed: %w", ErrAssetAlreadyIssued)
	assert.Equal(t, KindPreconditionFailed, KindOf(wrapped))
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := StoreError("get asset", cause)

	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, KindStoreUnavailable, KindOf(err))
	assert.Contains(t, err.Error(), "get asset")
}
