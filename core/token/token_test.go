package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	cases := map[string]struct {
		line string
		want []string
	}{
		"empty":          {"", nil},
		"all whitespace": {" \t\r\n", nil},
		"bell only":      {"\a\a", nil},
		"simple":         {"ls -la /tmp", []string{"ls", "-la", "/tmp"}},
		"collapsed runs": {"  ls \t\t -la\r\n", []string{"ls", "-la"}},
		"bell splits":    {"echo\ahi", []string{"echo", "hi"}},
		"no quoting":     {`echo "hello world"`, []string{"echo", `"hello`, `world"`}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.want, Split(tc.line))
		})
	}
}

// The token count always equals the number of maximal non-delimiter
// runs in the input.
func TestSplitCountsRuns(t *testing.T) {
	lines := []string{
		"a b c",
		"   a   ",
		"\ta\ab\rc\nd e",
		"one",
		"",
	}

	for _, line := range lines {
		runs := 0
		inRun := false
		for _, r := range line {
			switch {
			case isDelimiter(r):
				inRun = false
			case !inRun:
				runs++
				inRun = true
			}
		}
		assert.Len(t, Split(line), runs, "line %q", line)
	}
}
