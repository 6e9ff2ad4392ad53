package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "with cause",
			err:  NewLoadError("data file not found", errors.New("open: no such file")),
			want: "[LOAD] data file not found: open: no such file",
		},
		{
			name: "without cause",
			err:  NewFormatError("no valid timestamp column found in trade data"),
			want: "[FORMAT] no valid timestamp column found in trade data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewStorageError("write failed", cause)

	assert.True(t, errors.Is(err, cause))

	var appErr *AppError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &appErr))
	assert.Equal(t, ErrTypeStorage, appErr.Type)
}

func TestNewValidationError_ListsAllMissingColumns(t *testing.T) {
	err := NewValidationError("trade data", []string{"Coin", "Size USD"})

	assert.Equal(t, ErrTypeValidation, err.Type)
	assert.Contains(t, err.Error(), "Coin")
	assert.Contains(t, err.Error(), "Size USD")
	assert.Equal(t, []string{"Coin", "Size USD"}, err.Context["missing_columns"])
}

func TestIsType(t *testing.T) {
	err := NewFormatError("bad column")

	assert.True(t, IsType(err, ErrTypeFormat))
	assert.False(t, IsType(err, ErrTypeLoad))
	assert.True(t, IsType(fmt.Errorf("stage failed: %w", err), ErrTypeFormat))
	assert.False(t, IsType(errors.New("plain"), ErrTypeFormat))
}

func TestIsEmptyResult(t *testing.T) {
	assert.True(t, IsEmptyResult(NewEmptyResultError("no matching dates")))
	assert.False(t, IsEmptyResult(NewFormatError("x")))
	assert.False(t, IsEmptyResult(nil))
}

func TestWithContext(t *testing.T) {
	err := NewLoadError("open failed", nil).WithContext("path", "/tmp/x.csv")
	assert.Equal(t, "/tmp/x.csv", err.Context["path"])
}
