package fixture

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/slot/internal/errors"
	"github.com/vango-dev/slot/pkg/vdom"
)

// Special tags.
const (
	TagText     = "#text"
	TagRaw      = "#raw"
	TagFragment = "#fragment"
)

// Fixture describes one slot composition: the slot's own attributes and
// the children placed inside it.
type Fixture struct {
	Name     string `yaml:"name"`
	Slot     Node   `yaml:"slot"`
	Children []Node `yaml:"children"`
}

// Node describes an element, text, raw or fragment node.
// A node with no tag and some text is a text node.
type Node struct {
	Tag      string            `yaml:"tag"`
	Class    string            `yaml:"class"`
	Style    map[string]string `yaml:"style"`
	Attrs    AttrList          `yaml:"attrs"`
	Events   []string          `yaml:"events"`
	Ref      string            `yaml:"ref"`
	Text     string            `yaml:"text"`
	Children []Node            `yaml:"children"`
}

// KeyValue is one entry of an AttrList.
type KeyValue struct {
	Key   string
	Value any
}

// AttrList is a YAML mapping decoded in document order.
type AttrList []KeyValue

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *AttrList) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attrs must be a mapping", n.Line)
	}
	out := make(AttrList, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		var v any
		if err := n.Content[i+1].Decode(&v); err != nil {
			return err
		}
		out = append(out, KeyValue{Key: n.Content[i].Value, Value: v})
	}
	*l = out
	return nil
}

// Load reads and validates a fixture file. JSON files are accepted too.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.CodeFixtureRead).
			WithDetail("Cannot read " + path).
			Wrap(err)
	}
	return Parse(data)
}

// Parse decodes and validates a fixture.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.New(errors.CodeFixtureRead).Wrap(err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate reports every structural problem in the fixture. An empty or
// multi-child slot is valid here; rejecting it is the composer's job.
func (f *Fixture) Validate() error {
	var result *multierror.Error

	if f.Slot.Tag != "" || f.Slot.Text != "" || len(f.Slot.Children) > 0 {
		result = multierror.Append(result,
			fmt.Errorf("slot: only class, style, attrs, events and ref are allowed"))
	}
	result = validateEvents(result, "slot", f.Slot.Events)

	for i, child := range f.Children {
		result = validateNode(result, fmt.Sprintf("children[%d]", i), child)
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.New(errors.CodeFixtureInvalid).Wrap(err)
	}
	return nil
}

func validateNode(result *multierror.Error, path string, n Node) *multierror.Error {
	switch n.Tag {
	case "", TagText, TagRaw:
		if len(n.Children) > 0 {
			result = multierror.Append(result, fmt.Errorf("%s: text nodes cannot have children", path))
		}
		if n.Tag == "" && n.Text == "" {
			result = multierror.Append(result, fmt.Errorf("%s: node needs a tag or text", path))
		}
	case TagFragment:
		// Fragments carry children only.
	default:
		if vdom.IsVoidElement(n.Tag) && (len(n.Children) > 0 || n.Text != "") {
			result = multierror.Append(result, fmt.Errorf("%s: <%s> cannot have content", path, n.Tag))
		}
	}
	result = validateEvents(result, path, n.Events)

	for i, child := range n.Children {
		result = validateNode(result, fmt.Sprintf("%s.children[%d]", path, i), child)
	}
	return result
}

func validateEvents(result *multierror.Error, path string, events []string) *multierror.Error {
	for i, e := range events {
		if vdom.EventName(e) == "" {
			result = multierror.Append(result, fmt.Errorf("%s.events[%d]: empty event name", path, i))
		}
	}
	return result
}
