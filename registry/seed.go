package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// seedFile is the on-disk shape of an activity seed file.
type seedFile struct {
	Activities map[string]Activity `yaml:"activities"`
}

// LoadSeed reads an activity seed file at the given path and returns the
// activity set it defines.
func LoadSeed(path string) (map[string]Activity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file %s: %w", path, err)
	}
	defer f.Close()

	var sf seedFile
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&sf); err != nil {
		return nil, fmt.Errorf("failed to decode YAML seed file: %w", err)
	}

	if err := validateSeed(sf.Activities); err != nil {
		return nil, err
	}
	return sf.Activities, nil
}

// validateSeed performs basic validation on a seed activity set.
func validateSeed(activities map[string]Activity) error {
	if len(activities) == 0 {
		return fmt.Errorf("seed defines no activities")
	}
	for name, act := range activities {
		if name == "" {
			return fmt.Errorf("activity with empty name")
		}
		if act.Description == "" {
			return fmt.Errorf("activity %q: description is required", name)
		}
		if act.Schedule == "" {
			return fmt.Errorf("activity %q: schedule is required", name)
		}
		if act.MaxParticipants <= 0 {
			return fmt.Errorf("activity %q: max_participants must be positive", name)
		}
		seen := make(map[string]bool, len(act.Participants))
		for _, email := range act.Participants {
			if seen[email] {
				return fmt.Errorf("activity %q: duplicate participant %q", name, email)
			}
			seen[email] = true
		}
	}
	return nil
}

// DefaultSeed returns the built-in activity set used when no seed file is
// configured.
func DefaultSeed() map[string]Activity {
	return map[string]Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Soccer Team": {
			Description:     "Join the school soccer team and compete in matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
		},
		"Basketball Club": {
			Description:     "Practice and play basketball with the school team",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Act, direct, and produce plays and performances",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
		},
		"Math Club": {
			Description:     "Solve challenging problems and prepare for math competitions",
			Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"james@mergington.edu", "benjamin@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
		},
		"Art Club": {
			Description:     "Explore various art techniques and create masterpieces",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
		},
	}
}
