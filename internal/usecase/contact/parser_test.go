package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecaseErrors "github.com/johnquangdev/contact-qa/internal/usecase/errors"
)

func TestParseUpload(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		body     string
		want     []Row
		wantErr  error
	}{
		{
			name:     "csv with extra columns",
			filename: "batch.CSV",
			body:     "Team, ContactId ,Evaluator\nA, C1 , E1\nB,,E2\nC,C3,E3\n\n",
			want:     []Row{{ContactID: "C1", Evaluator: "E1"}, {ContactID: "C3", Evaluator: "E3"}},
		},
		{
			name:     "csv with byte order mark",
			filename: "batch.csv",
			body:     "\ufeffcontactId,evaluator\nC1,E1\n",
			want:     []Row{{ContactID: "C1", Evaluator: "E1"}},
		},
		{
			name:     "csv without evaluator column",
			filename: "batch.csv",
			body:     "contactId,owner\nC1,E1\n",
			wantErr:  usecaseErrors.ErrMissingColumns,
		},
		{
			name:     "empty csv",
			filename: "batch.csv",
			body:     "",
			wantErr:  usecaseErrors.ErrNoValidRows,
		},
		{
			name:     "json with numeric ids",
			filename: "batch.json",
			body:     `[{"contactId": 1234567890, "evaluator": "E1"}, {"contactId": "C2"}, {"contactId": "C3", "evaluator": 7}]`,
			want:     []Row{{ContactID: "1234567890", Evaluator: "E1"}, {ContactID: "C3", Evaluator: "7"}},
		},
		{
			name:     "json without valid rows",
			filename: "batch.json",
			body:     `[{"contactId": ""}]`,
			wantErr:  usecaseErrors.ErrNoValidRows,
		},
		{
			name:     "malformed json",
			filename: "batch.json",
			body:     `{"contactId"`,
			wantErr:  usecaseErrors.ErrInvalidInput,
		},
		{
			name:     "unsupported extension",
			filename: "batch.xlsx",
			body:     "whatever",
			wantErr:  usecaseErrors.ErrUnsupportedFileType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ParseUpload(tt.filename, strings.NewReader(tt.body))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, rows)
		})
	}
}
