package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormattedPhone(t *testing.T) {
	p := &Profile{Phone: "+254 757 255 028"}
	assert.Equal(t, "+254-757-255-028", p.FormattedPhone())
}

func TestHasResume(t *testing.T) {
	empty := ""
	ref := "resumes/cv.pdf"
	assert.False(t, (&Profile{}).HasResume())
	assert.False(t, (&Profile{ResumeRef: &empty}).HasResume())
	assert.True(t, (&Profile{ResumeRef: &ref}).HasResume())
}
