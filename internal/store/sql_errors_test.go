// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique", err: pgError(pgerrcode.UniqueViolation), want: UniqueViolation},
		{name: "wrapped unique", err: fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), want: UniqueViolation},
		{name: "foreign key", err: pgError(pgerrcode.ForeignKeyViolation), want: ForeignKeyViolation},
		{name: "serialization", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "cannot connect", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "syntax", err: pgError(pgerrcode.SyntaxError), want: Unclassified},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{
			name: "unique",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			want: UniqueViolation,
		},
		{
			name: "foreign key",
			err:  fmt.Errorf("insert: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}),
			want: ForeignKeyViolation,
		},
		{
			name: "busy",
			err:  sqlite3.Error{Code: sqlite3.ErrBusy},
			want: Retryable,
		},
		{
			name: "not null",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull},
			want: Unclassified,
		},
	}

	c := NewSQLiteErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestDBClassify_NilClassifier(t *testing.T) {
	db := &DB{}
	assert.Equal(t, Unclassified, db.classify(pgError(pgerrcode.UniqueViolation)))
}
