package urlutil

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
)

// EnvVar selects the runtime environment. "production" silences advisories.
const EnvVar = "JSONLD_KIT_ENV"

// IsProduction reports whether EnvVar is set to "production".
func IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv(EnvVar)), "production")
}

// Notifier decides whether an advisory for key should be emitted.
type Notifier interface {
	ShouldNotify(key string) bool
}

// MemoryNotifier answers true the first time it sees a key.
type MemoryNotifier struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{
		seen: make(map[string]struct{}),
	}
}

func (n *MemoryNotifier) ShouldNotify(key string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.seen[key]; ok {
		return false
	}
	n.seen[key] = struct{}{}
	return true
}

/*
Advisor wraps Canonicalize for identifier derivation.

When a URL is rewritten outside production, it records a single
canonicalization advisory per distinct "<input> -> <output>" pair.
Advisories never fail the call and never alter the returned URL.
*/
type Advisor struct {
	options    Options
	notifier   Notifier
	sink       metadata.Sink
	production bool
}

func NewAdvisor(
	options Options,
	notifier Notifier,
	sink metadata.Sink,
	production bool,
) *Advisor {
	if notifier == nil {
		notifier = NewMemoryNotifier()
	}
	if sink == nil {
		sink = &metadata.NoopSink{}
	}
	return &Advisor{
		options:    options,
		notifier:   notifier,
		sink:       sink,
		production: production,
	}
}

func (a *Advisor) Options() Options {
	return a.options
}

// CanonicalizeString canonicalizes rawURL with the advisor's options.
func (a *Advisor) CanonicalizeString(rawURL string) (string, error) {
	result, err := Canonicalize(rawURL, a.options)
	if err != nil {
		return "", err
	}
	if result.Changed && !a.production {
		a.advise(rawURL, result)
	}
	return result.URL, nil
}

// Origin returns the origin of the canonicalized rawURL.
func (a *Advisor) Origin(rawURL string) (string, error) {
	canonical, err := a.CanonicalizeString(rawURL)
	if err != nil {
		return "", err
	}
	return originOf(canonical)
}

func (a *Advisor) advise(input string, result Result) {
	key := input + " -> " + result.URL
	if !a.notifier.ShouldNotify(key) {
		return
	}
	changes := make([]string, len(result.Changes))
	for i, c := range result.Changes {
		changes[i] = string(c)
	}
	joined := strings.Join(changes, ", ")
	a.sink.RecordAdvisory(
		metadata.AdvisoryCanonicalization,
		fmt.Sprintf("Canonicalized URL: %s -> %s (%s)", input, result.URL, joined),
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrInput, input),
			metadata.NewAttr(metadata.AttrOutput, result.URL),
			metadata.NewAttr(metadata.AttrChanges, joined),
		},
	)
}

var defaultAdvisor = sync.OnceValue(func() *Advisor {
	recorder := metadata.NewRecorder("urlutil", "info")
	return NewAdvisor(DefaultOptions(), NewMemoryNotifier(), &recorder, IsProduction())
})

// DefaultAdvisor returns the process-wide advisor. It uses DefaultOptions,
// a shared MemoryNotifier and a stderr recorder; production mode is read
// from EnvVar on first use.
func DefaultAdvisor() *Advisor {
	return defaultAdvisor()
}
