package automaton

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// Dump renders n's transition table as fixed-width text, one row per
// state and one column per alphabet symbol plus epsilon, in the style of
// ictiobus's LALR1 table dumps (rosed.InsertTableOpts over a header row
// and one data row per state).
func (n NFA) Dump() string {
	alphabet := n.Alphabet.Elements()
	states := n.States.Elements()

	headers := []string{"state", "init", "final", "ε"}
	for _, a := range alphabet {
		headers = append(headers, string(a))
	}

	data := [][]string{headers}
	for _, s := range states {
		row := []string{
			fmt.Sprintf("%d", s),
			flag(n.Initial.Has(s)),
			flag(n.Final.Has(s)),
			joinStates(n.Reachable(s, Epsilon())),
		}
		for _, a := range alphabet {
			row = append(row, joinStates(n.Reachable(s, SymbolLabel(a))))
		}
		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// Dump renders d's transition table the same way NFA.Dump does, minus the
// epsilon column since a DFA has none.
func (d DFA) Dump() string {
	alphabet := d.Alphabet.Elements()
	states := d.States.Elements()

	headers := []string{"state", "init", "final"}
	for _, a := range alphabet {
		headers = append(headers, string(a))
	}

	data := [][]string{headers}
	for _, s := range states {
		isInit := d.Initial != nil && *d.Initial == s
		row := []string{
			fmt.Sprintf("%d", s),
			flag(isInit),
			flag(d.Final.Has(s)),
		}
		for _, a := range alphabet {
			if to, ok := d.step(s, a); ok {
				row = append(row, fmt.Sprintf("%d", to))
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func flag(b bool) string {
	if b {
		return "*"
	}
	return ""
}

func joinStates(set interface {
	Elements() []State
}) string {
	elems := set.Elements()
	if len(elems) == 0 {
		return ""
	}
	out := ""
	for i, e := range elems {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%d", e)
	}
	return out
}
