// Package content binds presentation slots to their markdown text.
//
// A Registry is created once by whatever component boots the application and
// is passed by reference to every consumer. It is filled from a Source exactly
// once with Boot and is read-only afterwards:
//
//	reg := content.NewRegistry()
//	if err := content.Boot(reg, content.Embedded()); err != nil {
//		return err
//	}
//	text, err := reg.Get("tasks-content")
//
// The text is opaque. Nothing in this package parses or renders markdown.
package content

import (
	"github.com/arthur-debert/preload/pkg/errors"
	"github.com/arthur-debert/preload/pkg/logging"
	"github.com/arthur-debert/preload/pkg/registry"
)

// Registry maps slot keys to markdown text
type Registry = registry.Registry[string]

// Entries is the table of slot key to markdown text handed to a Registry
type Entries map[string]string

// Source produces the entries a registry is initialized with
type Source interface {
	// Name describes where the entries come from, for logs and errors
	Name() string
	// Load reads every entry from the source
	Load() (Entries, error)
}

// NewRegistry returns an empty, uninitialized content registry
func NewRegistry() Registry {
	return registry.New[string]()
}

// Boot loads src and initializes reg with the result. Loading happens before
// the registry is touched, so a failing source leaves reg uninitialized.
func Boot(reg Registry, src Source) error {
	logger := logging.GetLogger("content").With().Str("source", src.Name()).Logger()
	done := logging.LogOperationStart(logger, "boot")
	defer done()

	entries, err := src.Load()
	if err != nil {
		return err
	}

	if err := reg.Initialize(entries); err != nil {
		if errors.IsErrorCode(err, errors.ErrAlreadyInitialized) {
			logger.Warn().Msg("Content registry already initialized, keeping existing entries")
		}
		return err
	}

	logger.Info().Int("slots", reg.Count()).Msg("Content registry initialized")
	return nil
}

// Lookup returns the text for key, or fallback when the slot is missing
func Lookup(reg Registry, key, fallback string) string {
	text, err := reg.Get(key)
	if err != nil {
		logger := logging.GetLogger("content")
		logger.Debug().Str("slot", key).Msg("Slot missing, using fallback")
		return fallback
	}
	return text
}
