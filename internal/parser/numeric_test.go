package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericExtractor_Extract(t *testing.T) {
	extractor := NewNumericExtractor()

	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "plain integer",
			text:   "spent 1000 on rent",
			want:   "1000",
			wantOK: true,
		},
		{
			name:   "plain decimal",
			text:   "coffee was 4.75 today",
			want:   "4.75",
			wantOK: true,
		},
		{
			name:   "thousands grouping is stripped",
			text:   "the sofa cost 12,500",
			want:   "12500",
			wantOK: true,
		},
		{
			name:   "grouped with decimal part",
			text:   "invoice total 1,234.56 due",
			want:   "1234.56",
			wantOK: true,
		},
		{
			name:   "grouped pattern outranks plain integer",
			text:   "2 items for 1,500",
			want:   "1500",
			wantOK: true,
		},
		{
			name:   "first of several plain matches wins",
			text:   "paid 40 then 60",
			want:   "40",
			wantOK: true,
		},
		{
			name:   "no digits",
			text:   "paid fifty for lunch",
			wantOK: false,
		},
		{
			name:   "empty string",
			text:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractor.Extract(tt.text)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}
