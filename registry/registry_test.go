package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeed() map[string]Activity {
	return map[string]Activity{
		"Soccer Team": {
			Description:     "Join the school soccer team",
			Schedule:        "Tuesdays, 4:00 PM",
			MaxParticipants: 22,
			Participants:    []string{},
		},
		"Chess Club": {
			Description:     "Learn chess",
			Schedule:        "Fridays, 3:30 PM",
			MaxParticipants: 2,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
	}
}

func TestNew_CopiesSeed(t *testing.T) {
	seed := testSeed()
	reg := New(seed)

	// Mutating the seed after construction must not affect the registry.
	seed["Chess Club"].Participants[0] = "mutated@mergington.edu"

	participants, err := reg.Participants("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, participants)
}

func TestList_ReturnsAllActivities(t *testing.T) {
	reg := New(testSeed())

	activities := reg.List()
	require.Len(t, activities, 2)

	for name, act := range activities {
		assert.NotEmpty(t, name)
		assert.NotEmpty(t, act.Description)
		assert.NotEmpty(t, act.Schedule)
		assert.Positive(t, act.MaxParticipants)
		assert.NotNil(t, act.Participants)
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	reg := New(testSeed())

	list1 := reg.List()
	list1["Chess Club"].Participants[0] = "modified@mergington.edu"

	list2 := reg.List()
	assert.Equal(t, "michael@mergington.edu", list2["Chess Club"].Participants[0],
		"mutating a snapshot should not affect the registry")
}

func TestEnroll(t *testing.T) {
	reg := New(testSeed())

	err := reg.Enroll("Soccer Team", "a@mergington.edu")
	require.NoError(t, err)

	participants, err := reg.Participants("Soccer Team")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@mergington.edu"}, participants)
}

func TestEnroll_PreservesOrder(t *testing.T) {
	reg := New(testSeed())

	emails := []string{"c@mergington.edu", "a@mergington.edu", "b@mergington.edu"}
	for _, email := range emails {
		require.NoError(t, reg.Enroll("Soccer Team", email))
	}

	participants, err := reg.Participants("Soccer Team")
	require.NoError(t, err)
	assert.Equal(t, emails, participants, "signup order should be preserved")
}

func TestEnroll_Duplicate(t *testing.T) {
	reg := New(testSeed())

	require.NoError(t, reg.Enroll("Soccer Team", "a@mergington.edu"))

	err := reg.Enroll("Soccer Team", "a@mergington.edu")
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	participants, err := reg.Participants("Soccer Team")
	require.NoError(t, err)
	assert.Len(t, participants, 1, "failed enroll should not mutate the roster")
}

func TestEnroll_UnknownActivity(t *testing.T) {
	reg := New(testSeed())

	err := reg.Enroll("Ghost Club", "a@mergington.edu")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestEnroll_NoCapacityCheck(t *testing.T) {
	reg := New(testSeed())

	// Chess Club has max_participants 2 and is already full; enrollment
	// still succeeds.
	err := reg.Enroll("Chess Club", "overflow@mergington.edu")
	require.NoError(t, err)

	participants, err := reg.Participants("Chess Club")
	require.NoError(t, err)
	assert.Len(t, participants, 3)
}

func TestWithdraw(t *testing.T) {
	reg := New(testSeed())

	err := reg.Withdraw("Chess Club", "michael@mergington.edu")
	require.NoError(t, err)

	participants, err := reg.Participants("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"daniel@mergington.edu"}, participants)
}

func TestWithdraw_PreservesOrder(t *testing.T) {
	reg := New(testSeed())

	emails := []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"}
	for _, email := range emails {
		require.NoError(t, reg.Enroll("Soccer Team", email))
	}

	require.NoError(t, reg.Withdraw("Soccer Team", "b@mergington.edu"))

	participants, err := reg.Participants("Soccer Team")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@mergington.edu", "c@mergington.edu"}, participants)
}

func TestWithdraw_NotEnrolled(t *testing.T) {
	reg := New(testSeed())

	err := reg.Withdraw("Soccer Team", "ghost@mergington.edu")
	assert.ErrorIs(t, err, ErrNotEnrolled)

	participants, err := reg.Participants("Soccer Team")
	require.NoError(t, err)
	assert.Empty(t, participants, "failed withdraw should not mutate the roster")
}

func TestWithdraw_UnknownActivity(t *testing.T) {
	reg := New(testSeed())

	err := reg.Withdraw("Ghost Club", "a@mergington.edu")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestEnrollWithdrawRoundTrip(t *testing.T) {
	reg := New(testSeed())

	require.NoError(t, reg.Enroll("Soccer Team", "a@x.edu"))
	assert.ErrorIs(t, reg.Enroll("Soccer Team", "a@x.edu"), ErrAlreadyEnrolled)

	require.NoError(t, reg.Withdraw("Soccer Team", "a@x.edu"))
	assert.ErrorIs(t, reg.Withdraw("Soccer Team", "a@x.edu"), ErrNotEnrolled)

	participants, err := reg.Participants("Soccer Team")
	require.NoError(t, err)
	assert.Empty(t, participants)
}

func TestRegistry_Concurrent(t *testing.T) {
	reg := New(testSeed())

	var wg sync.WaitGroup
	numGoroutines := 10

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			email := fmt.Sprintf("student%d@mergington.edu", id)
			assert.NoError(t, reg.Enroll("Soccer Team", email))
		}(i)
	}
	wg.Wait()

	participants, err := reg.Participants("Soccer Team")
	require.NoError(t, err)
	assert.Len(t, participants, numGoroutines)
}

func TestRegistry_ConcurrentDuplicate(t *testing.T) {
	reg := New(testSeed())

	var wg sync.WaitGroup
	errs := make(chan error, 10)

	// Same email from many goroutines: exactly one enroll may win.
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- reg.Enroll("Soccer Team", "racer@mergington.edu")
		}()
	}
	wg.Wait()
	close(errs)

	var successes int
	for err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyEnrolled)
		}
	}
	assert.Equal(t, 1, successes)

	participants, err := reg.Participants("Soccer Team")
	require.NoError(t, err)
	assert.Equal(t, []string{"racer@mergington.edu"}, participants)
}
