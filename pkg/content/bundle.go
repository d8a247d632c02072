package content

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/preload/pkg/errors"
)

// Format identifies the encoding of a single-file bundle
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// FormatFromPath infers a bundle format from a file extension
func FormatFromPath(p string) (Format, error) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".xml":
		return FormatXML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported bundle format: %s", p)
	}
}

// bundleDoc is the shape shared by YAML, TOML and JSON bundles:
//
//	slots:
//	  tasks-content: |
//	    # Tasks
type bundleDoc struct {
	Slots map[string]string `yaml:"slots" toml:"slots"`
}

type bundleSource struct {
	name   string
	data   []byte
	format Format
}

// FromBundle decodes a single document holding every slot
func FromBundle(name string, data []byte, format Format) Source {
	return &bundleSource{name: name, data: data, format: format}
}

// FromFile reads slots from path. Directories are read with FromDir; regular
// files are decoded as a bundle whose format comes from the extension.
func FromFile(path string) Source {
	return &fileSource{path: path}
}

func (s *bundleSource) Name() string { return s.name }

func (s *bundleSource) Load() (Entries, error) {
	var (
		entries Entries
		err     error
	)
	switch s.format {
	case FormatYAML, FormatJSON:
		// JSON is a subset of YAML, and yaml.v3 rejects duplicate keys
		entries, err = decodeYAML(s.data)
	case FormatTOML:
		entries, err = decodeTOML(s.data)
	case FormatXML:
		entries, err = decodeXML(s.data)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported bundle format: %s", s.format)
	}
	if err != nil {
		if errors.GetErrorCode(err) != errors.ErrUnknown {
			return nil, err
		}
		return nil, errors.Wrapf(err, errors.ErrContentParse, "failed to parse %s bundle %s", s.format, s.name)
	}
	return entries, nil
}

func decodeYAML(data []byte) (Entries, error) {
	var doc bundleDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return checkSlots(doc.Slots)
}

func decodeTOML(data []byte) (Entries, error) {
	var doc bundleDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return checkSlots(doc.Slots)
}

// decodeXML reads <slots><slot key="...">text</slot></slots>. Slot text is
// the slot's character data, CDATA included, taken verbatim.
func decodeXML(data []byte) (Entries, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}

	root := doc.SelectElement("slots")
	if root == nil {
		return nil, errors.New(errors.ErrContentParse, "xml bundle has no <slots> root element")
	}

	entries := make(Entries)
	for _, el := range root.SelectElements("slot") {
		key := el.SelectAttrValue("key", "")
		if key == "" {
			return nil, errors.New(errors.ErrContentParse, "xml <slot> element without a key attribute")
		}
		if _, exists := entries[key]; exists {
			return nil, errors.Newf(errors.ErrContentParse, "slot '%s' appears more than once", key).
				WithDetail(errors.DetailKey, key)
		}

		// Markup inside a slot must be wrapped in CDATA; elements are refused
		// rather than dropped or re-serialized.
		var text strings.Builder
		for _, tok := range el.Child {
			switch t := tok.(type) {
			case *etree.CharData:
				text.WriteString(t.Data)
			case *etree.Element:
				return nil, errors.Newf(errors.ErrContentParse,
					"slot '%s' contains a <%s> element; wrap markup in CDATA", key, t.Tag).
					WithDetail(errors.DetailKey, key)
			}
		}
		entries[key] = text.String()
	}
	return entries, nil
}

func checkSlots(slots map[string]string) (Entries, error) {
	if slots == nil {
		return nil, errors.New(errors.ErrContentParse, "bundle has no slots table")
	}
	return Entries(slots), nil
}

type fileSource struct {
	path string
}

func (s *fileSource) Name() string { return "file:" + s.path }

func (s *fileSource) Load() (Entries, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrContentLoad, "cannot read content source %s", s.path)
	}
	if info.IsDir() {
		return FromDir(s.path).Load()
	}

	format, err := FormatFromPath(s.path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrContentLoad, "cannot read content source %s", s.path)
	}
	return FromBundle(s.path, data, format).Load()
}
