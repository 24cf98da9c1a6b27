package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidWord, "word %q is empty", "")
	assert.Equal(t, ErrCodeInvalidWord, err.Code)
	assert.Equal(t, `word "" is empty`, err.Message)
	assert.Equal(t, `INVALID_WORD: word "" is empty`, err.Error())

	wrapped := Wrap(ErrCodeFileNotFound, fs.ErrNotExist, "dictionary %s does not exist", "words.txt")
	assert.Equal(t, "FILE_NOT_FOUND: dictionary words.txt does not exist: file does not exist", wrapped.Error())
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(ErrCodeFileNotFound, fs.ErrNotExist, "open dictionary")

	assert.Same(t, fs.ErrNotExist, errors.Unwrap(err))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCodeThroughWrapping(t *testing.T) {
	inner := New(ErrCodeInvalidWord, "origin: word cannot be empty")

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", inner, ErrCodeInvalidWord, true},
		{"other code", inner, ErrCodeFileNotFound, false},
		{"fmt wrapped", fmt.Errorf("invalid options: %w", inner), ErrCodeInvalidWord, true},
		{"outer code wins", Wrap(ErrCodeNetwork, inner, "fetch"), ErrCodeNetwork, true},
		{"outer code hides inner", Wrap(ErrCodeNetwork, inner, "fetch"), ErrCodeInvalidWord, false},
		{"plain error", errors.New("plain"), ErrCodeInvalidWord, false},
		{"nil", nil, ErrCodeInvalidWord, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Is(tt.err, tt.code))
		})
	}
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeUnsupported, GetCode(fmt.Errorf("render: %w", New(ErrCodeUnsupported, "no rsvg-convert"))))
	assert.Equal(t, Code(""), GetCode(errors.New("plain")))
	assert.Equal(t, Code(""), GetCode(nil))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeInvalidInput, "no dictionary given"), "no dictionary given"},
		{"coded with cause", Wrap(ErrCodeFileNotFound, fs.ErrNotExist, "dictionary missing"), "dictionary missing"},
		{"fmt wrapped", fmt.Errorf("invalid options: %w", New(ErrCodeInvalidWord, "origin: empty")), "origin: empty"},
		{"plain", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
