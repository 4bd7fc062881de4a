package coordinator

import (
	"strings"
	"sync"
)

// Output is the region a submission renders into.
type Output interface {
	// Replace discards the current contents.
	Replace(html string)
	// Append adds to the end of the current contents.
	Append(html string)
	String() string
}

// Region is an in-memory Output safe for concurrent use. Writes from
// overlapping submissions are applied in the order they arrive.
type Region struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (r *Region) Replace(html string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf.Reset()
	r.buf.WriteString(html)
}

func (r *Region) Append(html string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf.WriteString(html)
}

func (r *Region) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.String()
}
