package mindfa

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
)

type scenarioFixture struct {
	Scenario []struct {
		Pattern string   `toml:"pattern"`
		Accept  []string `toml:"accept"`
		Reject  []string `toml:"reject"`
	} `toml:"scenario"`
}

// TestExpression_Scenarios loads testdata/scenarios.toml and replays every
// pattern/accept/reject triple through New and Matches. It exists
// alongside the inline table-driven cases in expression_test.go so the
// larger, benchmark-derived corpus can grow independently of the hand
// written Go test cases.
func TestExpression_Scenarios(t *testing.T) {
	var fixture scenarioFixture
	_, err := toml.DecodeFile("testdata/scenarios.toml", &fixture)
	if !assert.NoError(t, err) {
		return
	}
	if !assert.NotEmpty(t, fixture.Scenario) {
		return
	}

	for _, sc := range fixture.Scenario {
		sc := sc
		t.Run(sc.Pattern, func(t *testing.T) {
			e := New(sc.Pattern)
			for _, s := range sc.Accept {
				assert.Truef(t, e.Matches(s), "expected %q to match pattern %q", s, sc.Pattern)
			}
			for _, s := range sc.Reject {
				assert.Falsef(t, e.Matches(s), "expected %q to not match pattern %q", s, sc.Pattern)
			}
		})
	}
}
