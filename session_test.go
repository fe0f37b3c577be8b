package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibilityCriteria_Shape(t *testing.T) {
	require.Len(t, EligibilityCriteria, 12)

	advisory := map[string]bool{}
	seen := map[string]bool{}
	for _, c := range EligibilityCriteria {
		assert.False(t, seen[c.ID], "duplicate criterion %s", c.ID)
		seen[c.ID] = true
		if !c.Critical {
			advisory[c.ID] = true
		}
	}
	assert.Equal(t, map[string]bool{"e7": true, "e8": true, "e12": true}, advisory)
}

func TestTaskPhases_Shape(t *testing.T) {
	require.Len(t, TaskPhases, 4)
	counts := []int{}
	for _, p := range TaskPhases {
		counts = append(counts, len(p.Tasks))
	}
	assert.Equal(t, []int{3, 8, 3, 10}, counts)
	assert.Equal(t, "Step 0：事前準備-2", TaskKey(TaskPhases[0].Title, 2))
}

func TestSession_ToggleCheck(t *testing.T) {
	s := NewSession(DefaultFormInput())

	next, err := s.ToggleCheck("e1")
	require.NoError(t, err)
	assert.True(t, next.Checks["e1"])
	assert.False(t, s.Checks["e1"], "original session must not change")

	back, err := next.ToggleCheck("e1")
	require.NoError(t, err)
	assert.False(t, back.Checks["e1"])

	_, err = s.ToggleCheck("e99")
	assert.ErrorIs(t, err, ErrUnknownCriterion)
}

func TestSession_ToggleTask(t *testing.T) {
	s := NewSession(DefaultFormInput())
	key := TaskKey(TaskPhases[3].Title, 9)

	next, err := s.ToggleTask(key)
	require.NoError(t, err)
	assert.True(t, next.TaskChecks[key])
	assert.Empty(t, s.TaskChecks)

	done, total := next.CompletedTasks()
	assert.Equal(t, 1, done)
	assert.Equal(t, 24, total)

	_, err = s.ToggleTask(TaskKey(TaskPhases[0].Title, 3))
	assert.ErrorIs(t, err, ErrUnknownTask)
}

func TestSession_SetField(t *testing.T) {
	s := NewSession(DefaultFormInput())

	next, err := s.SetField(FieldTrainees, "4")
	require.NoError(t, err)
	assert.Equal(t, "4", next.Form.Trainees)
	assert.Equal(t, "", s.Form.Trainees)

	_, err = s.SetField("salary", "1")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSession_Apply(t *testing.T) {
	s := NewSession(DefaultFormInput())

	s, err := s.Apply(Action{Type: ActionToggleCheck, ID: "e2"})
	require.NoError(t, err)
	s, err = s.Apply(Action{Type: ActionToggleTask, ID: TaskKey(TaskPhases[1].Title, 0)})
	require.NoError(t, err)
	s, err = s.Apply(Action{Type: ActionSetField, Field: FieldDays, Value: "10"})
	require.NoError(t, err)

	assert.True(t, s.Checks["e2"])
	assert.True(t, s.TaskChecks[TaskKey(TaskPhases[1].Title, 0)])
	assert.Equal(t, "10", s.Form.Days)

	_, err = s.Apply(Action{Type: "delete_everything"})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestSession_AllCriticalSatisfied(t *testing.T) {
	s := NewSession(DefaultFormInput())
	assert.False(t, s.AllCriticalSatisfied())
	assert.Equal(t, 9, s.UncheckedCritical())

	var err error
	for _, c := range EligibilityCriteria {
		if c.Critical {
			s, err = s.ToggleCheck(c.ID)
			require.NoError(t, err)
		}
	}
	assert.True(t, s.AllCriticalSatisfied(), "advisory criteria are not required")
	assert.Zero(t, s.UncheckedCritical())

	s, err = s.ToggleCheck("e3")
	require.NoError(t, err)
	assert.False(t, s.AllCriticalSatisfied())
	assert.Equal(t, 1, s.UncheckedCritical())
}

func TestSession_Evaluate(t *testing.T) {
	form := DefaultFormInput()
	form.Trainees = "4"
	form.CostPerTrainee = "40000"
	eval := NewSession(form).Evaluate()

	assert.True(t, eval.Valid)
	assert.Equal(t, SizeSME, eval.SizeClass)
	assert.Equal(t, "中小企業", eval.SizeLabel)
	assert.InDelta(t, 232000, eval.Result.TotalSubsidy, 0.01)
	assert.False(t, eval.CapReached)
}
