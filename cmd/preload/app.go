package preload

import (
	"fmt"
	"io"

	"github.com/arthur-debert/preload/pkg/config"
	"github.com/arthur-debert/preload/pkg/content"
	"github.com/arthur-debert/preload/pkg/paths"
	"github.com/arthur-debert/preload/pkg/render"
	"github.com/arthur-debert/preload/pkg/style"
)

// app owns the state shared by every command of one root command: parsed
// flags, the loaded configuration and the single content registry.
type app struct {
	verbosity  int
	configFile string
	source     string

	cfg      *config.Config
	registry content.Registry
	bootErr  error
}

func newApp() *app {
	return &app{registry: content.NewRegistry()}
}

// config loads the configuration on first use
func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, err := config.Load(config.Options{
		File: paths.ExpandHome(a.configFile),
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg
	return cfg, nil
}

// contentSource picks the slot source: --source, then config, then the
// embedded catalog
func (a *app) contentSource(cfg *config.Config) content.Source {
	switch {
	case a.source != "":
		return content.FromFile(paths.ExpandHome(a.source))
	case cfg.Content.Source != "":
		return content.FromFile(paths.ExpandHome(cfg.Content.Source))
	default:
		return content.Embedded()
	}
}

// slots boots the registry on first use and returns it
func (a *app) slots() (content.Registry, error) {
	if a.registry.Initialized() {
		return a.registry, nil
	}
	if a.bootErr != nil {
		return nil, a.bootErr
	}

	cfg, err := a.config()
	if err != nil {
		a.bootErr = err
		return nil, err
	}
	if err := content.Boot(a.registry, a.contentSource(cfg)); err != nil {
		a.bootErr = err
		return nil, err
	}
	return a.registry, nil
}

// outputRenderer styles non-slot output for w
func (a *app) outputRenderer(w io.Writer) style.Renderer {
	color := render.IsColorTerminal(w)
	if cfg, err := a.config(); err == nil {
		color = color && cfg.Output.Color
	}
	return style.NewRenderer(color)
}

// slotRenderer renders slot markdown for w
func (a *app) slotRenderer(w io.Writer) render.Renderer {
	cfg, err := a.config()
	if err != nil {
		return &render.PlainRenderer{}
	}
	return render.ForWriter(w, cfg.Render)
}

// topicSource exposes the registry to the help system, booting it on demand
type topicSource struct{ a *app }

func (s topicSource) Has(name string) bool {
	reg, err := s.a.slots()
	return err == nil && reg.Has(name)
}

func (s topicSource) Get(name string) (string, error) {
	reg, err := s.a.slots()
	if err != nil {
		return "", err
	}
	return reg.Get(name)
}

func (s topicSource) Keys() []string {
	reg, err := s.a.slots()
	if err != nil {
		return []string{}
	}
	return reg.Keys()
}
