package usd

// Specifier is the prim declaration keyword.
type Specifier int

const (
	SpecifierDef Specifier = iota
	SpecifierOver
	SpecifierClass
)

// ArcKind distinguishes the composition arc types this reader understands.
type ArcKind int

const (
	ArcReference ArcKind = iota
	ArcPayload
	ArcInherit
)

// CompositionArc is a directed reference from a prim to either the default
// prim of another stage, or a named prim within it.
type CompositionArc struct {
	Kind ArcKind

	// AssetPath is the raw (possibly unresolved) file reference, e.g. "./child.usda".
	AssetPath string

	// PrimPath is the optional target prim path suffix, e.g. "/a/b". Empty
	// means "the default prim of the target stage".
	PrimPath string
}

// Relationship is a named, ordered list of target path strings. Targets are
// never dereferenced at parse time.
type Relationship struct {
	Name    string
	Targets []string
}

// VariantSet is a named choice point: an ordered list of variant names (for
// fallback selection) plus the nested prim data for each variant.
type VariantSet struct {
	Name string

	// Order of insertion; Variants[Order[0]] is the fallback selection.
	Order []string

	// Variants maps variant name to the prim fragment it contributes:
	// composition arcs and children, but not a standalone path/name.
	Variants map[string]*VariantPrim
}

// VariantPrim is the content contributed by a single variant: its own
// composition arcs and nested child prims.
type VariantPrim struct {
	Arcs     []CompositionArc
	Children []*Prim
}

// Prim is a node in a stage's scene graph.
type Prim struct {
	Name      string
	Path      string
	TypeName  string
	Specifier Specifier

	Parent   *Prim
	Children []*Prim

	Attributes map[string]Value
	Metadata   map[string]Value

	Arcs []CompositionArc

	// VariantSets is keyed by variant-set name.
	VariantSets map[string]*VariantSet

	// VariantSelections records the chosen variant name per variant set,
	// as authored in the prim's metadata block. Absent means "use the
	// fallback" (first inserted variant).
	VariantSelections map[string]string

	Relationships []Relationship

	APISchemas []string
}

// NewPrim allocates a Prim with its maps/slices initialized.
func NewPrim(name, path string) *Prim {
	return &Prim{
		Name:              name,
		Path:              path,
		Attributes:        make(map[string]Value),
		Metadata:          make(map[string]Value),
		VariantSets:       make(map[string]*VariantSet),
		VariantSelections: make(map[string]string),
	}
}

// Attr looks up an attribute by name, returning ok=false if absent.
func (p *Prim) Attr(name string) (Value, bool) {
	v, ok := p.Attributes[name]
	return v, ok
}

// Rel looks up a relationship by name.
func (p *Prim) Rel(name string) (Relationship, bool) {
	for _, r := range p.Relationships {
		if r.Name == name {
			return r, true
		}
	}
	return Relationship{}, false
}

// SelectedVariant returns the variant name selected for the given variant
// set, falling back to the first inserted variant when no selection was
// recorded (scenario (c) in the spec's testable properties).
func (p *Prim) SelectedVariant(setName string) (string, bool) {
	vs, ok := p.VariantSets[setName]
	if !ok {
		return "", false
	}
	if sel, ok := p.VariantSelections[setName]; ok {
		if _, exists := vs.Variants[sel]; exists {
			return sel, true
		}
	}
	if len(vs.Order) == 0 {
		return "", false
	}
	return vs.Order[0], true
}

// Stage is the contents of one parsed source file.
type Stage struct {
	Path string

	Documentation string
	DefaultPrim   string
	UpAxis        string // "Y" or "Z"; default "Y"
	MetersPerUnit float64

	SubLayers []string

	RootPrims []*Prim

	// Prims maps every reachable absolute prim path to its Prim.
	Prims map[string]*Prim
}

// NewStage allocates a Stage with sane defaults (up-axis Y, 0.01 meters
// per unit) and initialized containers.
func NewStage(path string) *Stage {
	return &Stage{
		Path:          path,
		UpAxis:        "Y",
		MetersPerUnit: 0.01,
		Prims:         make(map[string]*Prim),
	}
}

// register inserts prim into the stage's path map under its absolute path,
// maintaining the invariant that every reachable prim is registered.
func (s *Stage) register(p *Prim) {
	s.Prims[p.Path] = p
}
