package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name      string
		err       error
		class     ErrorClassification
		uniqueErr bool
	}{
		{name: "nil", err: nil, class: NonRetryable},
		{name: "plain error", err: errors.New("x"), class: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), class: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), class: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), class: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), class: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), class: NonRetryable, uniqueErr: true},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), class: NonRetryable, uniqueErr: true},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), class: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.class, c.Classify(tt.err))
			assert.Equal(t, tt.uniqueErr, c.IsUniqueViolation(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name      string
		err       error
		class     ErrorClassification
		uniqueErr bool
	}{
		{name: "plain error", err: errors.New("x"), class: NonRetryable},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, class: Retryable},
		{name: "locked", err: sqlite3.Error{Code: sqlite3.ErrLocked}, class: Retryable},
		{
			name:      "unique",
			err:       sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			class:     NonRetryable,
			uniqueErr: true,
		},
		{
			name:  "not null",
			err:   sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull},
			class: NonRetryable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.class, c.Classify(tt.err))
			assert.Equal(t, tt.uniqueErr, c.IsUniqueViolation(tt.err))
		})
	}
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non-retryable", NonRetryable.String())
}
