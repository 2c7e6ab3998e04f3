package habitfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/habitmd/internal/calendar"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []calendar.Date
	}{
		{
			name:    "plain dates",
			content: "- 2024-01-01\n- 2024-12-31\n",
			want: []calendar.Date{
				calendar.New(2024, time.January, 1),
				calendar.New(2024, time.December, 31),
			},
		},
		{
			name:    "quoted dates",
			content: "- \"2024-02-29\"\n- '2023-07-04'\n",
			want: []calendar.Date{
				calendar.New(2024, time.February, 29),
				calendar.New(2023, time.July, 4),
			},
		},
		{
			name:    "timestamps keep their own calendar date",
			content: "- 2024-03-10T23:30:00-05:00\n- 2024-03-11 06:15:00\n",
			want: []calendar.Date{
				calendar.New(2024, time.March, 10),
				calendar.New(2024, time.March, 11),
			},
		},
		{
			name:    "flow sequence",
			content: "[2024-05-01, 2024-05-02]",
			want: []calendar.Date{
				calendar.New(2024, time.May, 1),
				calendar.New(2024, time.May, 2),
			},
		},
		{
			name:    "empty document",
			content: "",
			want:    nil,
		},
		{
			name:    "null document",
			content: "~\n",
			want:    nil,
		},
		{
			name:    "empty list",
			content: "[]\n",
			want:    []calendar.Date{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantErr     error
		wantMessage string
	}{
		{
			name:    "mapping document",
			content: "dates:\n  - 2024-01-01\n",
			wantErr: ErrNotAList,
		},
		{
			name:    "scalar document",
			content: "2024-01-01\n",
			wantErr: ErrNotAList,
		},
		{
			name:        "word entry",
			content:     "- 2024-01-01\n- yesterday\n",
			wantErr:     ErrMalformedDate,
			wantMessage: "line 2",
		},
		{
			name:    "impossible date",
			content: "- 2024-02-30\n",
			wantErr: ErrMalformedDate,
		},
		{
			name:        "nested list entry",
			content:     "- [2024-01-01]\n",
			wantErr:     ErrMalformedDate,
			wantMessage: "got a list",
		},
		{
			name:    "invalid yaml",
			content: "- [2024-01-01\n",
			wantErr: ErrUnreadable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.content))
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMessage != "" {
				assert.Contains(t, err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- 2024-01-01\n- 2024-01-02\n"), 0o600))

	dates, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, []calendar.Date{
		calendar.New(2024, time.January, 1),
		calendar.New(2024, time.January, 2),
	}, dates)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestLoad_DirectoryIsUnreadable(t *testing.T) {
	_, err := Load(t.TempDir())

	require.ErrorIs(t, err, ErrUnreadable)
}

func TestLoad_MalformedEntryNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not a date\n"), 0o600))

	_, err := Load(path)

	require.ErrorIs(t, err, ErrMalformedDate)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2024-7-4 ")
	require.NoError(t, err)
	assert.Equal(t, calendar.New(2024, time.July, 4), got)

	_, err = ParseDate("04/07/2024")
	assert.ErrorIs(t, err, ErrMalformedDate)
}
