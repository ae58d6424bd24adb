// Package scoring computes compatibility scores between a profile's skills and
// a job's requirement list, and ranks catalog jobs by score.
package scoring

import (
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jordan/autoapply/internal/types"
)

// Scoring bounds. The jitter range and the 95 cap are product tuning carried
// over from the shipped behavior; tests assert bounds, not exact values.
const (
	maxScore       = 95
	jitterMin      = 10
	jitterMax      = 20
	noSkillsMinVal = 60
	noSkillsMaxVal = 85
)

// Scorer produces compatibility scores. The random source is injected so tests
// can pin the jitter; Scorer is safe for concurrent use.
type Scorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Scorer seeded from the current time.
func New() *Scorer {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Scorer drawing jitter from the given source.
func NewWithSource(src rand.Source) *Scorer {
	return &Scorer{rng: rand.New(src)}
}

// Score returns a compatibility score in [0, 95] for the given skill set
// against a job's requirements. A requirement counts as matched when any skill
// is a case-insensitive substring of it. With no skills at all the profile is
// treated as unknown-but-plausible and scored uniformly in [60, 85].
func (s *Scorer) Score(skills, requirements []string) int {
	if len(skills) == 0 {
		return s.intn(noSkillsMinVal, noSkillsMaxVal)
	}
	if len(requirements) == 0 {
		return 0
	}

	matched := 0
	for _, req := range requirements {
		reqLower := strings.ToLower(req)
		for _, skill := range skills {
			if skill != "" && strings.Contains(reqLower, strings.ToLower(skill)) {
				matched++
				break
			}
		}
	}

	base := matched * 100 / len(requirements)
	score := base + s.intn(jitterMin, jitterMax)
	if score > maxScore {
		score = maxScore
	}
	return score
}

// Rank scores every job in place against the given skills and sorts the slice
// descending by score. The sort is stable: ties keep catalog order.
func (s *Scorer) Rank(jobs []types.Job, skills []string) {
	for i := range jobs {
		jobs[i].CompatibilityScore = s.Score(skills, jobs[i].Requirements)
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CompatibilityScore > jobs[j].CompatibilityScore
	})
}

// intn draws a uniform value in [lo, hi].
func (s *Scorer) intn(lo, hi int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.Intn(hi-lo+1)
}
