package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillValidate_Proficiency(t *testing.T) {
	for _, p := range []int{0, 50, 100} {
		s := &Skill{Name: "Go", Proficiency: p}
		assert.NoError(t, s.Validate(), p)
	}
	for _, p := range []int{-1, 101} {
		s := &Skill{Name: "Go", Proficiency: p}
		assert.ErrorIs(t, s.Validate(), ErrProficiencyOutOfRange, p)
	}
}

func TestSortSkills(t *testing.T) {
	skills := []Skill{
		{Name: "Python", Order: 2},
		{Name: "Laravel", Order: 1},
		{Name: "Django", Order: 1},
	}
	SortSkills(skills)
	assert.Equal(t, "Django", skills[0].Name)
	assert.Equal(t, "Laravel", skills[1].Name)
	assert.Equal(t, "Python", skills[2].Name)
}
