// Package stats keeps the counters of one generator run for the closing
// summary line.
package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type Stats struct {
	Pairs      int
	Generated  int
	Failed     map[string]int
	Uniforms   int
	Attributes int

	start time.Time
}

func New() *Stats {
	return &Stats{
		Failed: make(map[string]int),
		start:  time.Now(),
	}
}

func (s *Stats) Discovered(n int) {
	s.Pairs += n
}

func (s *Stats) Succeeded(uniforms, attributes int) {
	s.Generated++
	s.Uniforms += uniforms
	s.Attributes += attributes
}

func (s *Stats) FailedWith(kind string) {
	s.Failed[kind]++
}

func (s *Stats) NumFailed() int {
	n := 0
	for _, c := range s.Failed {
		n += c
	}
	return n
}

func (s *Stats) Uptime() time.Duration {
	return time.Since(s.start)
}

func (s *Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "generated %d of %d shader pairs (%d uniforms, %d attributes)",
		s.Generated, s.Pairs, s.Uniforms, s.Attributes)
	if n := s.NumFailed(); n > 0 {
		kinds := make([]string, 0, len(s.Failed))
		for k := range s.Failed {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		parts := make([]string, 0, len(kinds))
		for _, k := range kinds {
			parts = append(parts, fmt.Sprintf("%s=%d", k, s.Failed[k]))
		}
		fmt.Fprintf(&b, ", %d failed (%s)", n, strings.Join(parts, " "))
	}
	return b.String()
}
