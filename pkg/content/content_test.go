// pkg/content/content_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test registry boot, lookups and the embedded catalog

package content_test

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/preload/pkg/content"
	"github.com/arthur-debert/preload/pkg/content/catalog"
	"github.com/arthur-debert/preload/pkg/errors"
)

// staticSource serves a fixed table, optionally failing
type staticSource struct {
	entries content.Entries
	err     error
}

func (s staticSource) Name() string { return "static" }

func (s staticSource) Load() (content.Entries, error) {
	return s.entries, s.err
}

func TestBoot_RoundTrip(t *testing.T) {
	reg := content.NewRegistry()
	err := content.Boot(reg, staticSource{entries: content.Entries{
		"tasks-content": "# Tasks\n...",
	}})
	require.NoError(t, err)

	got, err := reg.Get("tasks-content")
	require.NoError(t, err)
	assert.Equal(t, "# Tasks\n...", got)
	assert.True(t, reg.Has("tasks-content"))

	_, err = reg.Get("missing-key")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.False(t, reg.Has("missing-key"))
}

func TestBoot_Twice(t *testing.T) {
	reg := content.NewRegistry()
	require.NoError(t, content.Boot(reg, staticSource{entries: content.Entries{"a": "first"}}))

	err := content.Boot(reg, staticSource{entries: content.Entries{"a": "second", "b": "extra"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyInitialized))

	got, _ := reg.Get("a")
	assert.Equal(t, "first", got)
	assert.False(t, reg.Has("b"))
}

func TestBoot_SourceFailureLeavesRegistryEmpty(t *testing.T) {
	reg := content.NewRegistry()
	err := content.Boot(reg, staticSource{err: errors.New(errors.ErrContentLoad, "boom")})
	assert.True(t, errors.IsErrorCode(err, errors.ErrContentLoad))
	assert.False(t, reg.Initialized())

	require.NoError(t, content.Boot(reg, staticSource{entries: content.Entries{"a": "ok"}}))
	assert.True(t, reg.Has("a"))
}

func TestLookup(t *testing.T) {
	reg := content.NewRegistry()
	require.NoError(t, reg.Initialize(content.Entries{"intro": "# Intro"}))

	assert.Equal(t, "# Intro", content.Lookup(reg, "intro", "placeholder"))
	assert.Equal(t, "placeholder", content.Lookup(reg, "outro", "placeholder"))
}

func TestEmbeddedCatalog(t *testing.T) {
	reg := content.NewRegistry()
	require.NoError(t, content.Boot(reg, content.Embedded()))

	want := []string{
		catalog.SlotPlan,
		catalog.SlotPrompt,
		catalog.SlotTasks,
		catalog.SlotWalkthrough,
	}
	if diff := cmp.Diff(want, reg.Keys()); diff != "" {
		t.Errorf("embedded slots mismatch (-want +got):\n%s", diff)
	}
	assert.ElementsMatch(t, catalog.Slots(), reg.Keys())

	tests := []struct {
		slot   string
		prefix string
	}{
		{catalog.SlotTasks, "# Tâches du Projet"},
		{catalog.SlotPrompt, "# Prompt Original"},
		{catalog.SlotPlan, "# Plan d'Implémentation"},
		{catalog.SlotWalkthrough, "# Walkthrough"},
	}
	for _, tt := range tests {
		t.Run(tt.slot, func(t *testing.T) {
			text, err := reg.Get(tt.slot)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(text, tt.prefix), "slot %s starts with %q", tt.slot, text[:20])
		})
	}
}

func TestEmbeddedCatalog_ExactPayload(t *testing.T) {
	reg := content.NewRegistry()
	require.NoError(t, content.Boot(reg, content.Embedded()))

	tests := []struct {
		slot   string
		bytes  int
		sha256 string
	}{
		{catalog.SlotTasks, 1611, "e642b01655d150a7292ffb2651f50dc9f746eb094333476e6847d9b85f7853ce"},
		{catalog.SlotPrompt, 2873, "bb331833291efa2b02602ce9bb4750a1201a81b491d459d16c861f649fafbdad"},
		{catalog.SlotPlan, 4120, "64a2e0f4e68c269404215a146541b8bed1142d3184c99f5ec91969f85ebb910a"},
		{catalog.SlotWalkthrough, 5145, "448f3fbde110c5588bb184e3cedeb68a8a45897983e928a750f145d29bbd82ac"},
	}
	for _, tt := range tests {
		t.Run(tt.slot, func(t *testing.T) {
			text, err := reg.Get(tt.slot)
			require.NoError(t, err)
			assert.Len(t, text, tt.bytes)
			assert.False(t, strings.HasSuffix(text, "\n"), "slot must not gain a trailing newline")
			sum := sha256.Sum256([]byte(text))
			assert.Equal(t, tt.sha256, hex.EncodeToString(sum[:]))
		})
	}
}

func TestEmbeddedCatalog_PreservesEscapes(t *testing.T) {
	reg := content.NewRegistry()
	require.NoError(t, content.Boot(reg, content.Embedded()))

	text, err := reg.Get(catalog.SlotWalkthrough)
	require.NoError(t, err)
	assert.Contains(t, text, `huggingface\.co/spaces/`)

	tasks, err := reg.Get(catalog.SlotTasks)
	require.NoError(t, err)
	assert.Contains(t, tasks, "(`flutter analyze`)")
}
