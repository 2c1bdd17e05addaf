package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfigueroa/casino-manager-api/pkg/timezone"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "Fecha calendario válida en medianoche de Bogotá",
			input: "2025-03-10",
			want:  time.Date(2025, 3, 10, 0, 0, 0, 0, timezone.Bogota()),
		},
		{
			name:    "Formato día-mes-año rechazado",
			input:   "10-03-2025",
			wantErr: true,
		},
		{
			name:    "Cadena vacía rechazada",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
			assert.Equal(t, timezone.Bogota(), got.Location())
		})
	}
}
