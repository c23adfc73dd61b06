package schemaorg_test

import (
	"encoding/json"
	"testing"

	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
	"github.com/rohmanhakim/jsonld-kit/pkg/nodeid"
	"github.com/rohmanhakim/jsonld-kit/pkg/schemaorg"
	"github.com/rohmanhakim/jsonld-kit/pkg/urlutil"
	"github.com/stretchr/testify/require"
)

func newMapper() *schemaorg.Mapper {
	advisor := urlutil.NewAdvisor(urlutil.DefaultOptions(), urlutil.NewMemoryNotifier(), &metadata.NoopSink{}, false)
	return schemaorg.NewMapper(nodeid.NewDeriver(advisor))
}

func intPtr(v int) *int {
	return &v
}

func child(t *testing.T, n jsonld.Node, key string) jsonld.Node {
	t.Helper()
	v, ok := n[key].(jsonld.Node)
	require.Truef(t, ok, "%s is %T, want jsonld.Node", key, n[key])
	return v
}

func children(t *testing.T, n jsonld.Node, key string) []jsonld.Node {
	t.Helper()
	v, ok := n[key].([]jsonld.Node)
	require.Truef(t, ok, "%s is %T, want []jsonld.Node", key, n[key])
	return v
}

// decode runs raw through the same JSON decoding manifests use.
func decode[T any](t *testing.T, raw string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}
