package abacus

import (
	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// sessionState is the internal state exposed by Dump.
type sessionState struct {
	Phase        string
	Mode         DisplayMode
	Input        string
	PercentShown bool
	Display      string
	Eval         string
	Pending      []string
	Finished     string
	Chain        string
	Fault        string
	History      []string
	Memory       []string
}

// Dump renders the session's internal state for debugging.
func (s *Session) Dump() string {
	st := sessionState{
		Phase:        s.phase.String(),
		Mode:         s.mode,
		Input:        s.input,
		PercentShown: s.percentShown,
		Display:      s.trail.display,
		Eval:         s.trail.eval,
		Finished:     s.finished,
		Chain:        s.chain,
		History:      s.history,
		Memory:       s.memory,
	}
	for _, u := range s.trail.pending {
		st.Pending = append(st.Pending, u.String())
	}
	if s.fault != nil {
		st.Fault = s.fault.Error()
	}
	return dumpConfig.Sdump(st)
}
