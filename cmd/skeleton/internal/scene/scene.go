// Package scene loads YAML descriptions of view trees for the skeleton CLI.
//
// A scene lists top-level nodes and lists. Nodes marked loading get a
// skeleton loader; nodes sharing a group name are shown together.
package scene

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	skerrors "github.com/go-drift/skeleton/pkg/errors"
	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/skeleton"
	"github.com/go-drift/skeleton/pkg/theme"
	"github.com/go-drift/skeleton/pkg/view"
)

// FormatVersion is the newest scene format this package understands.
// Scenes declaring any version with the same major are accepted.
const FormatVersion = "v1.1.0"

// Scene is a parsed scene file.
type Scene struct {
	Path string
	Size graphics.Size
	// Root fills the whole canvas and holds every top-level node and list.
	Root    *view.Node
	Lists   []*view.List
	Loaders []*Loader
}

// Loader is one show call: a group of nodes or a list sharing a cover.
type Loader struct {
	Group string
	Nodes []*view.Node
	List  *view.List
	// Cover is nil when colors resolve from the hierarchy.
	Cover *theme.DynamicColor
}

// Show installs every loader of the scene on r.
func (s *Scene) Show(r *skeleton.Registry) {
	for _, l := range s.Loaders {
		if l.List != nil {
			r.ShowOnList(l.List, l.Cover)
			continue
		}
		r.ShowOnNodes(l.Nodes, l.Cover)
	}
}

// Hide removes every loader of the scene from r.
func (s *Scene) Hide(r *skeleton.Registry) {
	for _, l := range s.Loaders {
		if l.List != nil {
			r.HideFromList(l.List)
			continue
		}
		r.HideFromNodes(l.Nodes)
	}
}

type file struct {
	Format     string     `yaml:"format"`
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	Background *colorSpec `yaml:"background"`
	Nodes      []nodeSpec `yaml:"nodes"`
	Lists      []listSpec `yaml:"lists"`
}

type nodeSpec struct {
	Name       string     `yaml:"name"`
	Frame      []float64  `yaml:"frame"`
	Background *colorSpec `yaml:"background"`
	Radius     float64    `yaml:"radius"`
	Container  bool       `yaml:"container"`
	Hidden     bool       `yaml:"hidden"`
	Loading    bool       `yaml:"loading"`
	Group      string     `yaml:"group"`
	Cover      *colorSpec `yaml:"cover"`
	Children   []nodeSpec `yaml:"children"`
}

type listSpec struct {
	Name      string     `yaml:"name"`
	Frame     []float64  `yaml:"frame"`
	RowHeight float64    `yaml:"row_height"`
	Rows      int        `yaml:"rows"`
	Offset    float64    `yaml:"offset"`
	Loading   bool       `yaml:"loading"`
	Cover     *colorSpec `yaml:"cover"`
	Row       []nodeSpec `yaml:"row"`
}

// colorSpec is either a single color or a light/dark pair.
type colorSpec struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

func (c *colorSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		c.Light, c.Dark = value.Value, value.Value
		return nil
	}
	type plain colorSpec
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	if p.Dark == "" {
		p.Dark = p.Light
	}
	*c = colorSpec(p)
	return nil
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &skerrors.LoaderError{Op: "scene.Load", Kind: skerrors.KindParsing, Path: path, Err: err}
	}
	return Parse(data, path)
}

// Parse builds a scene from YAML data. path is only used in errors.
func Parse(data []byte, path string) (*Scene, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, parseError(path, err)
	}
	if err := checkFormat(f.Format); err != nil {
		return nil, parseError(path, err)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, parseError(path, fmt.Errorf("scene size %vx%v must be positive", f.Width, f.Height))
	}

	s := &Scene{Path: path, Size: graphics.Size{Width: f.Width, Height: f.Height}}
	s.Root = view.NewView("scene", graphics.RectFromLTWH(0, 0, f.Width, f.Height))
	if f.Background != nil {
		bg, err := f.Background.resolve("background")
		if err != nil {
			return nil, parseError(path, err)
		}
		s.Root.SetBackground(bg)
	}

	b := builder{scene: s, groups: make(map[string]*Loader)}
	for i := range f.Nodes {
		n, err := b.node(&f.Nodes[i], fmt.Sprintf("nodes[%d]", i))
		if err != nil {
			return nil, parseError(path, err)
		}
		s.Root.AddChild(n)
	}
	for i := range f.Lists {
		if err := b.list(&f.Lists[i], fmt.Sprintf("lists[%d]", i)); err != nil {
			return nil, parseError(path, err)
		}
	}
	return s, nil
}

func parseError(path string, err error) error {
	return &skerrors.LoaderError{Op: "scene.Parse", Kind: skerrors.KindParsing, Path: path, Err: err}
}

// checkFormat accepts an empty version or any version with the same major
// version as FormatVersion that is not newer than it.
func checkFormat(v string) error {
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return &skerrors.ParseError{Field: "format", DataType: "semver", Got: v}
	}
	if semver.Major(v) != semver.Major(FormatVersion) || semver.Compare(v, FormatVersion) > 0 {
		return fmt.Errorf("unsupported scene format %s (this build reads %s)", v, FormatVersion)
	}
	return nil
}

type builder struct {
	scene  *Scene
	groups map[string]*Loader
}

func (b *builder) node(spec *nodeSpec, field string) (*view.Node, error) {
	frame, err := parseFrame(spec.Frame, field+".frame")
	if err != nil {
		return nil, err
	}
	name := spec.Name
	if name == "" {
		name = field
	}
	var n *view.Node
	if spec.Container {
		n = view.NewContainer(name, frame)
	} else {
		n = view.NewView(name, frame)
	}
	if spec.Background != nil {
		bg, err := spec.Background.resolve(field + ".background")
		if err != nil {
			return nil, err
		}
		n.SetBackground(bg)
	}
	n.SetCornerRadius(spec.Radius)
	n.SetHidden(spec.Hidden)

	for i := range spec.Children {
		c, err := b.node(&spec.Children[i], fmt.Sprintf("%s.children[%d]", field, i))
		if err != nil {
			return nil, err
		}
		n.AddChild(c)
	}

	if spec.Loading {
		cover, err := optionalColor(spec.Cover, field+".cover")
		if err != nil {
			return nil, err
		}
		b.addToGroup(spec.Group, n, cover)
	}
	return n, nil
}

// addToGroup appends n to the named group. Unnamed nodes get a loader of
// their own. The first cover seen for a group wins.
func (b *builder) addToGroup(name string, n *view.Node, cover *theme.DynamicColor) {
	if name == "" {
		b.scene.Loaders = append(b.scene.Loaders, &Loader{Nodes: []*view.Node{n}, Cover: cover})
		return
	}
	l, ok := b.groups[name]
	if !ok {
		l = &Loader{Group: name, Cover: cover}
		b.groups[name] = l
		b.scene.Loaders = append(b.scene.Loaders, l)
	}
	l.Nodes = append(l.Nodes, n)
}

func (b *builder) list(spec *listSpec, field string) error {
	frame, err := parseFrame(spec.Frame, field+".frame")
	if err != nil {
		return err
	}
	if spec.RowHeight <= 0 {
		return &skerrors.ParseError{Field: field + ".row_height", DataType: "positive number", Got: spec.RowHeight}
	}
	name := spec.Name
	if name == "" {
		name = field
	}
	l := view.NewList(name, frame, spec.RowHeight)
	for i := 0; i < spec.Rows; i++ {
		content := l.AppendRow()
		for j := range spec.Row {
			// Row templates never carry loaders of their own.
			tmpl := spec.Row[j]
			tmpl.Loading = false
			c, err := b.node(&tmpl, fmt.Sprintf("%s.row[%d]", field, j))
			if err != nil {
				return err
			}
			content.AddChild(c)
		}
	}
	l.ScrollTo(spec.Offset)
	b.scene.Root.AddChild(l.Node())
	b.scene.Lists = append(b.scene.Lists, l)

	if spec.Loading {
		cover, err := optionalColor(spec.Cover, field+".cover")
		if err != nil {
			return err
		}
		b.scene.Loaders = append(b.scene.Loaders, &Loader{List: l, Cover: cover})
	}
	return nil
}

func parseFrame(v []float64, field string) (graphics.Rect, error) {
	if len(v) != 4 {
		return graphics.Rect{}, &skerrors.ParseError{Field: field, DataType: "[left, top, width, height]", Got: v}
	}
	if v[2] < 0 || v[3] < 0 {
		return graphics.Rect{}, &skerrors.ParseError{Field: field, DataType: "non-negative size", Got: v}
	}
	return graphics.RectFromLTWH(v[0], v[1], v[2], v[3]), nil
}

func optionalColor(c *colorSpec, field string) (*theme.DynamicColor, error) {
	if c == nil {
		return nil, nil
	}
	dc, err := c.resolve(field)
	if err != nil {
		return nil, err
	}
	return &dc, nil
}

func (c *colorSpec) resolve(field string) (theme.DynamicColor, error) {
	light, err := ParseColor(c.Light)
	if err != nil {
		return theme.DynamicColor{}, &skerrors.ParseError{Field: field + ".light", DataType: "color", Got: c.Light}
	}
	dark, err := ParseColor(c.Dark)
	if err != nil {
		return theme.DynamicColor{}, &skerrors.ParseError{Field: field + ".dark", DataType: "color", Got: c.Dark}
	}
	return theme.Adaptive(light, dark), nil
}

// ParseColor parses "#RRGGBB", "#AARRGGBB" or "transparent".
func ParseColor(s string) (graphics.Color, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return graphics.ColorTransparent, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("color %q must start with #", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	switch len(hex) {
	case 6:
		return graphics.Color(0xFF000000 | uint32(v)), nil
	case 8:
		return graphics.Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("color %q must have 6 or 8 hex digits", s)
	}
}
