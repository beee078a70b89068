package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDiff(t *testing.T) {
	m := parseFixture(t, projectFixture)
	before := m.Serialize()

	applyPlan(t, m, PlanRemove(m, []string{"Exercise.swift"}))

	diff := RenderDiff(before, m.Serialize())
	assert.Contains(t, diff, "--- manifest (current)")
	assert.Contains(t, diff, "+++ manifest (planned)")
	assert.Contains(t, diff, "@@")
	assert.Contains(t, diff, "-\t\tAAAAAAAAAAAAAAAAAAAAAA02 /* Exercise.swift */")
}

func TestRenderDiff_NoChanges(t *testing.T) {
	m := parseFixture(t, projectFixture)

	assert.Empty(t, RenderDiff(m.Serialize(), m.Serialize()))
}
