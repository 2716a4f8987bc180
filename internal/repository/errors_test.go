package repository

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestParseDBError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "nil passes through",
			err:      nil,
			expected: nil,
		},
		{
			name:     "duplicate entry by error number",
			err:      &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.com' for key 'email'"},
			expected: ErrDuplicateKey,
		},
		{
			name:     "foreign key violation by error number",
			err:      &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"},
			expected: ErrForeignKeyViolation,
		},
		{
			name:     "data too long by error number",
			err:      &mysql.MySQLError{Number: 1406, Message: "Data too long for column 'name'"},
			expected: ErrDataTooLong,
		},
		{
			name:     "duplicate entry by message",
			err:      errors.New("Error 1062: Duplicate entry 'x' for key 'PRIMARY'"),
			expected: ErrDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDBError(tt.err)
			if tt.expected == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.expected)
		})
	}
}

func TestParseDBErrorPreservesUnknownErrors(t *testing.T) {
	err := errors.New("connection refused")
	assert.Equal(t, err, ParseDBError(err))
}
