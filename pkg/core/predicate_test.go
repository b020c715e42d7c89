package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/rapport/pkg/core"
	"github.com/aretw0/rapport/pkg/core/coretest"
)

func TestContactNameContains(t *testing.T) {
	alice := coretest.NewContactBuilder().WithName("Alice Bob").Build()

	cases := []struct {
		keywords []string
		want     bool
	}{
		{[]string{"Alice"}, true},
		{[]string{"aLIce", "bOB"}, true},
		{[]string{"Carol", "Bob"}, true},
		{[]string{"Ali"}, false},
		{[]string{"Ali*"}, true},
		{[]string{"*bob"}, true},
		{[]string{"alice b?b"}, true},
		{[]string{"c*"}, false},
		{nil, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, core.ContactNameContains(tc.keywords)(alice), "%v", tc.keywords)
	}
}

func TestContactHasTag(t *testing.T) {
	c := coretest.NewContactBuilder().WithTags("friends", "owesMoney").Build()
	assert.True(t, core.ContactHasTag([]string{"owesmoney"})(c))
	assert.False(t, core.ContactHasTag([]string{"family"})(c))
}

func TestMeetingPredicates(t *testing.T) {
	m := coretest.NewMeetingBuilder().WithTitle("CS2103 Meeting").WithTime("01/01/2023 16:00").
		WithContacts("Alice Pauline").Build()

	assert.True(t, core.MeetingTitleContains([]string{"cs2103"})(m))
	assert.True(t, core.MeetingTitleContains([]string{"CS*"})(m))
	assert.False(t, core.MeetingTitleContains([]string{"GES"})(m))

	inside := core.MeetingBetween(coretest.Time("01/01/2023 00:00"), coretest.Time("01/01/2023 16:00"))
	outside := core.MeetingBetween(coretest.Time("02/01/2023 00:00"), coretest.Time("03/01/2023 00:00"))
	assert.True(t, inside(m))
	assert.False(t, outside(m))

	assert.True(t, core.MeetingWithContact(coretest.Name("Alice Pauline"))(m))
	assert.True(t, core.And(core.MeetingTitleContains([]string{"meeting"}), inside)(m))
	assert.False(t, core.And(core.MeetingTitleContains([]string{"meeting"}), outside)(m))
}
