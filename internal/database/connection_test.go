package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finboardhq/finboard/internal/config"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.DatabaseConfig
		expected string
	}{
		{
			name: "composed from fields",
			cfg: config.DatabaseConfig{
				Host:     "db.internal",
				Port:     3306,
				User:     "finboard",
				Password: "secret",
				Database: "finboard",
			},
			expected: "finboard:secret@tcp(db.internal:3306)/finboard?parseTime=true&tls=true",
		},
		{
			name: "explicit DSN gets enforced options",
			cfg: config.DatabaseConfig{
				DSN: "finboard:secret@tcp(db.internal:3306)/finboard",
			},
			expected: "finboard:secret@tcp(db.internal:3306)/finboard?parseTime=true&tls=true",
		},
		{
			name: "existing options are preserved",
			cfg: config.DatabaseConfig{
				DSN: "finboard:secret@tcp(db.internal:3306)/finboard?parseTime=true&tls=skip-verify",
			},
			expected: "finboard:secret@tcp(db.internal:3306)/finboard?parseTime=true&tls=skip-verify",
		},
		{
			name: "tls mode from config",
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "u",
				Password: "p",
				Database: "d",
				TLSMode:  "skip-verify",
			},
			expected: "u:p@tcp(localhost:3306)/d?parseTime=true&tls=skip-verify",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildDSN(tt.cfg))
		})
	}
}
