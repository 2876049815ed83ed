package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.yaml")
	content := `activities:
  Soccer Team:
    description: Join the school soccer team
    schedule: Tuesdays, 4:00 PM - 5:30 PM
    max_participants: 22
    participants:
      - liam@mergington.edu
  Drama Club:
    description: Act and produce plays
    schedule: Mondays, 4:00 PM - 5:30 PM
    max_participants: 20
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	activities, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, activities, 2)

	soccer := activities["Soccer Team"]
	assert.Equal(t, "Join the school soccer team", soccer.Description)
	assert.Equal(t, 22, soccer.MaxParticipants)
	assert.Equal(t, []string{"liam@mergington.edu"}, soccer.Participants)
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSeed_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "no activities",
			content: `activities: {}`,
		},
		{
			name: "missing description",
			content: `activities:
  Soccer Team:
    schedule: Tuesdays
    max_participants: 22
`,
		},
		{
			name: "missing schedule",
			content: `activities:
  Soccer Team:
    description: Soccer
    max_participants: 22
`,
		},
		{
			name: "non-positive capacity",
			content: `activities:
  Soccer Team:
    description: Soccer
    schedule: Tuesdays
    max_participants: 0
`,
		},
		{
			name: "duplicate participant",
			content: `activities:
  Soccer Team:
    description: Soccer
    schedule: Tuesdays
    max_participants: 22
    participants:
      - liam@mergington.edu
      - liam@mergington.edu
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "activities.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadSeed(path)
			assert.Error(t, err)
		})
	}
}

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()
	require.NoError(t, validateSeed(seed))

	for _, name := range []string{"Soccer Team", "Basketball Club", "Drama Club"} {
		assert.Contains(t, seed, name)
	}
}
