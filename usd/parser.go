package usd

import (
	"os"
	"strconv"
	"strings"

	"github.com/achilleasa/usdindex/types"
)

// typeMapping records how a recognized type name maps onto a
// ValueKind, for both the scalar and the "[]"-suffixed array form.
type typeMapping struct {
	scalar ValueKind
	array  ValueKind
}

// typeNames maps recognized scene-language type names to their ValueKind,
// per the partial table in the spec.
var typeNames = map[string]typeMapping{
	"bool":     {KindBool, KindBoolArray},
	"int":      {KindValueInt, KindIntArray},
	"float":    {KindValueFloat, KindFloatArray},
	"half":     {KindValueFloat, KindFloatArray},
	"double":   {KindValueDouble, KindDoubleArray},
	"string":   {KindValueString, KindStringArray},
	"token":    {KindValueToken, KindTokenArray},
	"asset":    {KindValueAssetPath, KindAssetPathArray},
	"float2":   {KindValueVec2, KindVec2Array},
	"double2":  {KindValueVec2, KindVec2Array},
	"texCoord2f": {KindValueVec2, KindVec2Array},
	"float3":    {KindValueVec3, KindVec3Array},
	"double3":   {KindValueVec3, KindVec3Array},
	"point3f":   {KindValueVec3, KindVec3Array},
	"normal3f":  {KindValueVec3, KindVec3Array},
	"vector3f":  {KindValueVec3, KindVec3Array},
	"color3f":   {KindValueVec3, KindVec3Array},
	"float4":    {KindValueVec4, KindVec4Array},
	"double4":   {KindValueVec4, KindVec4Array},
	"quath":     {KindValueVec4, KindVec4Array},
	"quatf":     {KindValueVec4, KindVec4Array},
	"quatd":     {KindValueVec4, KindVec4Array},
	"matrix4d":  {KindValueMatrix, KindMatrixArray},
}

// ParseFile reads and parses a single stage file.
func ParseFile(path string) (*Stage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data))
}

// Parse parses source text originating from the given path into a Stage.
// The parser is deliberately lenient: malformed values and unknown
// constructs are skipped rather than aborting the parse.
func Parse(path, source string) (*Stage, error) {
	p := &parser{
		stage:  NewStage(path),
		tokens: NewTokenizer(source).Tokens(),
	}
	p.parseStage()
	return p.stage, nil
}

type parser struct {
	stage  *Stage
	tokens []Token
	pos    int
}

func (p *parser) cur() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: KindEOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) peekAt(offset int) Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return Token{Kind: KindEOF}
	}
	return p.tokens[idx]
}

func (p *parser) next() Token {
	tok := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *parser) atEOF() bool {
	return p.cur().Kind == KindEOF
}

// isPunct reports whether the current token is the punctuator text.
func (p *parser) isPunct(text string) bool {
	c := p.cur()
	return c.Kind == KindPunct && c.Text == text
}

// acceptPunct consumes the current token if it is the given punctuator.
func (p *parser) acceptPunct(text string) bool {
	if p.isPunct(text) {
		p.next()
		return true
	}
	return false
}

// isIdent reports whether the current token is the given identifier text.
func (p *parser) isIdent(text string) bool {
	c := p.cur()
	return c.Kind == KindIdentifier && c.Text == text
}

func (p *parser) acceptIdent(text string) bool {
	if p.isIdent(text) {
		p.next()
		return true
	}
	return false
}

// parseStage drives the top-level grammar: header, stage metadata, root prims.
func (p *parser) parseStage() {
	p.skipHeader()

	if p.isPunct("(") {
		p.parseStageMetadata()
	}

	for !p.atEOF() {
		if p.isIdent("def") || p.isIdent("over") || p.isIdent("class") {
			prim := p.parsePrim(nil, "")
			if prim != nil {
				p.stage.RootPrims = append(p.stage.RootPrims, prim)
			}
			continue
		}
		// Anything else at stage scope that we don't recognize: advance
		// past it to avoid spinning forever on malformed input.
		p.next()
	}
}

// skipHeader consumes everything up to the first "(", the first
// def/over/class keyword, or EOF (the "#usda 1.0" header line and any
// immediately following tokens).
func (p *parser) skipHeader() {
	for !p.atEOF() && !p.isPunct("(") && !(p.isIdent("def") || p.isIdent("over") || p.isIdent("class")) {
		p.next()
	}
}

// parseStageMetadata parses the ( ... ) block at stage scope.
func (p *parser) parseStageMetadata() {
	p.next() // consume "("
	for !p.atEOF() && !p.isPunct(")") {
		if p.cur().Kind == KindString {
			// Bare documentation string.
			p.stage.Documentation = p.next().Text
			continue
		}
		if p.cur().Kind != KindIdentifier {
			p.next()
			continue
		}
		key := p.next().Text
		switch key {
		case "defaultPrim":
			if p.acceptPunct("=") && p.cur().Kind == KindString {
				p.stage.DefaultPrim = p.next().Text
			}
		case "upAxis":
			if p.acceptPunct("=") && p.cur().Kind == KindIdentifier {
				p.stage.UpAxis = p.next().Text
			}
		case "metersPerUnit":
			if p.acceptPunct("=") {
				p.stage.MetersPerUnit = p.parseNumberLiteralAsFloat64()
			}
		case "timeCodesPerSecond", "framesPerSecond", "startTimeCode", "endTimeCode":
			if p.acceptPunct("=") {
				p.parseNumberLiteralAsFloat64() // consumed, not retained
			}
		case "subLayers":
			if p.acceptPunct("=") {
				p.stage.SubLayers = p.parseStringOrAssetList()
			}
		default:
			p.acceptPunct("=")
			p.skipBalancedValue()
		}
	}
	p.acceptPunct(")")
}

// parseNumberLiteralAsFloat64 parses an int/float token (optionally signed,
// which the tokenizer already folds into the literal) into a float64.
func (p *parser) parseNumberLiteralAsFloat64() float64 {
	tok := p.cur()
	if tok.Kind != KindInt && tok.Kind != KindFloat {
		return 0
	}
	p.next()
	f, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return 0
	}
	return f
}

// parseStringOrAssetList parses either a single string/asset-path token or
// a "[" a, b, c "]" bracketed list of them.
func (p *parser) parseStringOrAssetList() []string {
	var out []string
	if p.acceptPunct("[") {
		for !p.atEOF() && !p.isPunct("]") {
			if p.cur().Kind == KindString || p.cur().Kind == KindAssetPath {
				out = append(out, p.next().Text)
			} else {
				p.next()
			}
			p.acceptPunct(",")
		}
		p.acceptPunct("]")
		return out
	}
	if p.cur().Kind == KindString || p.cur().Kind == KindAssetPath {
		out = append(out, p.next().Text)
	}
	return out
}

// parsePrim parses a single "def|over|class [Type] \"name\" (meta) { body }"
// definition, registering it (and everything reachable from it) in the
// stage's path map.
func (p *parser) parsePrim(parent *Prim, parentPath string) *Prim {
	var specifier Specifier
	switch p.next().Text {
	case "def":
		specifier = SpecifierDef
	case "over":
		specifier = SpecifierOver
	case "class":
		specifier = SpecifierClass
	}

	typeName := ""
	if p.cur().Kind == KindIdentifier {
		typeName = p.next().Text
	}

	if p.cur().Kind != KindString {
		// Malformed prim header; bail out leniently.
		return nil
	}
	name := p.next().Text

	path := parentPath + "/" + name
	prim := NewPrim(name, path)
	prim.TypeName = typeName
	prim.Specifier = specifier
	prim.Parent = parent

	if p.isPunct("(") {
		p.parsePrimMetadata(prim)
	}

	if p.acceptPunct("{") {
		p.parsePrimBody(prim)
		p.acceptPunct("}")
	}

	p.stage.register(prim)
	return prim
}

// parsePrimMetadata parses the prim's ( ... ) metadata block.
func (p *parser) parsePrimMetadata(prim *Prim) {
	p.next() // consume "("
	for !p.atEOF() && !p.isPunct(")") {
		if p.cur().Kind != KindIdentifier {
			p.next()
			continue
		}

		p.acceptIdent("prepend")
		p.acceptIdent("append")

		key := p.next().Text
		switch key {
		case "references":
			p.acceptPunct("=")
			prim.Arcs = append(prim.Arcs, p.parseArcList(ArcReference)...)
		case "payload", "payloads":
			p.acceptPunct("=")
			prim.Arcs = append(prim.Arcs, p.parseArcList(ArcPayload)...)
		case "inherits":
			p.acceptPunct("=")
			for _, path := range p.parsePrimPathList() {
				prim.Arcs = append(prim.Arcs, CompositionArc{Kind: ArcInherit, PrimPath: path})
			}
		case "apiSchemas":
			p.acceptPunct("=")
			prim.APISchemas = append(prim.APISchemas, p.parseStringOrAssetList()...)
		case "kind", "instanceable":
			if p.acceptPunct("=") {
				p.skipBalancedValue()
			}
		case "variants":
			p.acceptPunct("=")
			p.parseVariantSelections(prim)
		case "variantSets":
			p.acceptPunct("=")
			p.parseStringOrAssetList() // names only; sets themselves appear in the body
		case "customData":
			p.acceptPunct("=")
			p.skipBalancedValue()
		default:
			p.acceptPunct("=")
			p.skipBalancedValue()
		}
	}
	p.acceptPunct(")")
}

// parseArcList parses a single asset-path-with-optional-prim-path-suffix,
// or a bracketed list of them.
func (p *parser) parseArcList(kind ArcKind) []CompositionArc {
	var out []CompositionArc
	parseOne := func() (CompositionArc, bool) {
		if p.cur().Kind != KindAssetPath {
			return CompositionArc{}, false
		}
		assetPath := p.next().Text
		primPath := ""
		if p.cur().Kind == KindPrimPath {
			primPath = p.next().Text
		}
		return CompositionArc{Kind: kind, AssetPath: assetPath, PrimPath: primPath}, true
	}

	if p.acceptPunct("[") {
		for !p.atEOF() && !p.isPunct("]") {
			if arc, ok := parseOne(); ok {
				out = append(out, arc)
			} else {
				p.next()
			}
			p.acceptPunct(",")
		}
		p.acceptPunct("]")
		return out
	}

	if arc, ok := parseOne(); ok {
		out = append(out, arc)
	}
	return out
}

// parsePrimPathList parses a single <path> or bracketed list of <path>.
func (p *parser) parsePrimPathList() []string {
	var out []string
	if p.acceptPunct("[") {
		for !p.atEOF() && !p.isPunct("]") {
			if p.cur().Kind == KindPrimPath {
				out = append(out, p.next().Text)
			} else {
				p.next()
			}
			p.acceptPunct(",")
		}
		p.acceptPunct("]")
		return out
	}
	if p.cur().Kind == KindPrimPath {
		out = append(out, p.next().Text)
	}
	return out
}

// parseVariantSelections parses "{ type name = \"value\" ... }".
func (p *parser) parseVariantSelections(prim *Prim) {
	if !p.acceptPunct("{") {
		return
	}
	for !p.atEOF() && !p.isPunct("}") {
		if p.cur().Kind != KindIdentifier {
			p.next()
			continue
		}
		p.next() // type name (e.g. "string"), unused
		if p.cur().Kind != KindIdentifier {
			p.skipBalancedValue()
			continue
		}
		setName := p.next().Text
		if p.acceptPunct("=") && p.cur().Kind == KindString {
			prim.VariantSelections[setName] = p.next().Text
		}
	}
	p.acceptPunct("}")
}

// parsePrimBody parses nested prim defs, variant sets, and attributes in
// any order, until the matching "}".
func (p *parser) parsePrimBody(prim *Prim) {
	for !p.atEOF() && !p.isPunct("}") {
		switch {
		case p.isIdent("def") || p.isIdent("over") || p.isIdent("class"):
			child := p.parsePrim(prim, prim.Path)
			if child != nil {
				prim.Children = append(prim.Children, child)
			}
		case p.isIdent("variantSet"):
			p.parseVariantSet(prim)
		default:
			if !p.tryParseAttributeOrRelationship(prim) {
				// Unrecognized token at body scope; advance past it.
				p.next()
			}
		}
	}
}

// parseVariantSet parses `variantSet "name" = { "variant" ( meta ) { body } ... }`.
func (p *parser) parseVariantSet(prim *Prim) {
	p.next() // "variantSet"
	if p.cur().Kind != KindString {
		p.skipBalancedValue()
		return
	}
	setName := p.next().Text
	if !p.acceptPunct("=") || !p.acceptPunct("{") {
		return
	}

	vs, ok := prim.VariantSets[setName]
	if !ok {
		vs = &VariantSet{Name: setName, Variants: make(map[string]*VariantPrim)}
		prim.VariantSets[setName] = vs
	}

	for !p.atEOF() && !p.isPunct("}") {
		if p.cur().Kind != KindString {
			p.next()
			continue
		}
		variantName := p.next().Text
		vs.Order = append(vs.Order, variantName)

		vp := &VariantPrim{}

		// Variant metadata block is semantically equivalent to a prim
		// metadata block for the arcs we care about; reuse it by parsing
		// into a scratch prim and copying out its Arcs.
		if p.isPunct("(") {
			scratch := NewPrim(prim.Name, prim.Path)
			p.parsePrimMetadata(scratch)
			vp.Arcs = scratch.Arcs
		}

		if p.acceptPunct("{") {
			scratchPrim := &Prim{
				Name:       prim.Name,
				Path:       prim.Path,
				Attributes: make(map[string]Value),
				Metadata:   make(map[string]Value),
			}
			p.parsePrimBody(scratchPrim)
			vp.Children = scratchPrim.Children
			p.acceptPunct("}")
		}

		vs.Variants[variantName] = vp
	}
	p.acceptPunct("}")
}

// tryParseAttributeOrRelationship parses one attribute or relationship
// statement. Returns false if the current token doesn't start one.
func (p *parser) tryParseAttributeOrRelationship(prim *Prim) bool {
	start := p.pos

	p.acceptIdent("prepend")
	p.acceptIdent("append")

	if p.isIdent("rel") {
		p.next()
		p.parseRelationship(prim)
		return true
	}

	p.acceptIdent("uniform")

	if p.cur().Kind != KindIdentifier {
		p.pos = start
		return false
	}
	typeName := p.next().Text

	isArray := false
	if p.isPunct("[") && p.peekAt(1).Kind == KindPunct && p.peekAt(1).Text == "]" {
		p.next()
		p.next()
		isArray = true
	}

	if p.cur().Kind != KindIdentifier {
		p.pos = start
		return false
	}
	attrName := p.parseNamespacedIdentifier()

	// xformOpOrder and similar attributes may carry a colon-namespaced name
	// already consumed above; require "=" next.
	if !p.acceptPunct("=") {
		p.pos = start
		return false
	}

	mapping, known := typeNames[typeName]
	if !known {
		p.skipBalancedValue()
		return true
	}

	kind := mapping.scalar
	if isArray {
		kind = mapping.array
	}

	value, ok := p.parseTypedLiteral(kind)
	if ok {
		prim.Attributes[attrName] = value
	}
	return true
}

// parseNamespacedIdentifier parses "a:b:c" into "a:b:c".
func (p *parser) parseNamespacedIdentifier() string {
	var sb strings.Builder
	sb.WriteString(p.next().Text)
	for p.isPunct(":") {
		p.next()
		sb.WriteString(":")
		if p.cur().Kind == KindIdentifier {
			sb.WriteString(p.next().Text)
		}
	}
	return sb.String()
}

// parseRelationship parses "rel name = <path>" or "rel name = [ <path>, ... ]".
func (p *parser) parseRelationship(prim *Prim) {
	if p.cur().Kind != KindIdentifier {
		p.skipBalancedValue()
		return
	}
	name := p.parseNamespacedIdentifier()
	if !p.acceptPunct("=") {
		return
	}
	rel := Relationship{Name: name}
	if p.acceptPunct("[") {
		for !p.atEOF() && !p.isPunct("]") {
			if p.cur().Kind == KindPrimPath {
				rel.Targets = append(rel.Targets, p.next().Text)
			} else {
				p.next()
			}
			p.acceptPunct(",")
		}
		p.acceptPunct("]")
	} else if p.cur().Kind == KindPrimPath {
		rel.Targets = append(rel.Targets, p.next().Text)
	}
	prim.Relationships = append(prim.Relationships, rel)
}

// parseTypedLiteral parses a literal value matching the expected ValueKind.
// On any structural mismatch it skips a balanced value and returns ok=false
// (the attribute is then omitted, per the lenient error policy).
func (p *parser) parseTypedLiteral(kind ValueKind) (Value, bool) {
	switch kind {
	case KindBool:
		if p.cur().Kind == KindIdentifier {
			text := p.next().Text
			return BoolValue(text == "true" || text == "1"), true
		}
	case KindValueInt:
		if n, ok := p.parseIntLiteral(); ok {
			return IntValue(n), true
		}
	case KindValueFloat:
		if f, ok := p.parseFloatLiteral(); ok {
			return FloatValue(float32(f)), true
		}
	case KindValueDouble:
		if f, ok := p.parseFloatLiteral(); ok {
			return DoubleValue(f), true
		}
	case KindValueString:
		if p.cur().Kind == KindString {
			return StringValue(p.next().Text), true
		}
	case KindValueToken:
		if p.cur().Kind == KindString || p.cur().Kind == KindIdentifier {
			return TokenValue(p.next().Text), true
		}
	case KindValueAssetPath:
		if p.cur().Kind == KindAssetPath {
			return AssetPathValue(p.next().Text), true
		}
	case KindValueVec2:
		if v, ok := p.parseTupleComponents(2); ok {
			return Vec2Value(types.Vec2{v[0], v[1]}), true
		}
	case KindValueVec3:
		if v, ok := p.parseTupleComponents(3); ok {
			return Vec3Value(types.Vec3{v[0], v[1], v[2]}), true
		}
	case KindValueVec4:
		if v, ok := p.parseTupleComponents(4); ok {
			return Vec4Value(types.Vec4{v[0], v[1], v[2], v[3]}), true
		}
	case KindValueMatrix:
		if m, ok := p.parseMatrix4(); ok {
			return MatrixValue(m), true
		}
	case KindBoolArray, KindIntArray, KindFloatArray, KindDoubleArray,
		KindStringArray, KindTokenArray, KindAssetPathArray,
		KindVec2Array, KindVec3Array, KindVec4Array, KindMatrixArray:
		return p.parseArrayLiteral(kind)
	}

	p.skipBalancedValue()
	return Value{}, false
}

func (p *parser) parseIntLiteral() (int32, bool) {
	if p.cur().Kind != KindInt {
		return 0, false
	}
	tok := p.next()
	n, err := strconv.ParseInt(tok.Text, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

func (p *parser) parseFloatLiteral() (float64, bool) {
	tok := p.cur()
	if tok.Kind != KindInt && tok.Kind != KindFloat {
		return 0, false
	}
	p.next()
	f, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (p *parser) parseArrayLiteral(kind ValueKind) (Value, bool) {
	if !p.acceptPunct("[") {
		return Value{}, false
	}

	switch kind {
	case KindBoolArray:
		var out []bool
		for !p.atEOF() && !p.isPunct("]") {
			if p.cur().Kind == KindIdentifier {
				text := p.next().Text
				out = append(out, text == "true" || text == "1")
			} else {
				p.next()
			}
			p.acceptPunct(",")
		}
		p.acceptPunct("]")
		return BoolArrayValue(out), true
	case KindIntArray:
		var out []int32
		for !p.atEOF() && !p.isPunct("]") {
			if n, ok := p.parseIntLiteral(); ok {
				out = append(out, n)
			} else {
				p.next()
			}
			p.acceptPunct(",")
		}
		p.acceptPunct("]")
		return IntArrayValue(out), true
	case KindFloatArray:
		var out []float32
		for !p.atEOF() && !p.isPunct("]") {
			if f, ok := p.parseFloatLiteral(); ok {
				out = append(out, float32(f))
			} else {
				p.next()
			}
			p.acceptPunct(",")
		}
		p.acceptPunct("]")
		return FloatArrayValue(out), true
	case KindDoubleArray:
		var out []float64
		for !p.atEOF() && !p.isPunct("]") {
			if f, ok := p.parseFloatLiteral(); ok {
				out = append(out, f)
			} else {
				p.next()
			}
			p.acceptPunct(",")
		}
		p.acceptPunct("]")
		return DoubleArrayValue(out), true
	case KindStringArray, KindTokenArray, KindAssetPathArray:
		var out []string
		for !p.atEOF() && !p.isPunct("]") {
			switch p.cur().Kind {
			case KindString, KindIdentifier, KindAssetPath:
				out = append(out, p.next().Text)
			default:
				p.next()
			}
			p.acceptPunct(",")
		}
		p.acceptPunct("]")
		switch kind {
		case KindStringArray:
			return StringArrayValue(out), true
		case KindTokenArray:
			return TokenArrayValue(out), true
		default:
			return AssetPathArrayValue(out), true
		}
	case KindVec2Array, KindVec3Array, KindVec4Array:
		n := 2
		if kind == KindVec3Array {
			n = 3
		} else if kind == KindVec4Array {
			n = 4
		}
		var vec2s []types.Vec2
		var vec3s []types.Vec3
		var vec4s []types.Vec4
		for !p.atEOF() && !p.isPunct("]") {
			if comps, ok := p.parseTupleComponents(n); ok {
				switch n {
				case 2:
					vec2s = append(vec2s, types.Vec2{comps[0], comps[1]})
				case 3:
					vec3s = append(vec3s, types.Vec3{comps[0], comps[1], comps[2]})
				case 4:
					vec4s = append(vec4s, types.Vec4{comps[0], comps[1], comps[2], comps[3]})
				}
			} else {
				p.next()
			}
			p.acceptPunct(",")
		}
		p.acceptPunct("]")
		switch kind {
		case KindVec2Array:
			return Vec2ArrayValue(vec2s), true
		case KindVec3Array:
			return Vec3ArrayValue(vec3s), true
		default:
			return Vec4ArrayValue(vec4s), true
		}
	case KindMatrixArray:
		var out []types.Mat4
		for !p.atEOF() && !p.isPunct("]") {
			if m, ok := p.parseMatrix4(); ok {
				out = append(out, m)
			} else {
				p.next()
			}
			p.acceptPunct(",")
		}
		p.acceptPunct("]")
		return MatrixArrayValue(out), true
	}

	p.skipBalancedBracket()
	return Value{}, false
}

// parseTupleComponents parses "(a, b, ...)" with n numeric components,
// returning up to 4 components (trailing ones zero if n < 4).
func (p *parser) parseTupleComponents(n int) ([4]float32, bool) {
	var out [4]float32
	if !p.acceptPunct("(") {
		return out, false
	}
	for i := 0; i < n; i++ {
		f, ok := p.parseFloatLiteral()
		if !ok {
			p.skipBalancedBracket2("(", ")")
			return out, false
		}
		out[i] = float32(f)
		if i < n-1 {
			p.acceptPunct(",")
		}
	}
	p.acceptPunct(")")
	return out, true
}

// parseMatrix4 parses "( (r0c0,...,r0c3), (r1...), (r2...), (r3...) )"
// row-major into a types.Mat4.
func (p *parser) parseMatrix4() (types.Mat4, bool) {
	var m types.Mat4
	if !p.acceptPunct("(") {
		return m, false
	}
	for row := 0; row < 4; row++ {
		comps, ok := p.parseTupleComponents(4)
		if !ok {
			p.skipBalancedBracket2("(", ")")
			return m, false
		}
		for col := 0; col < 4; col++ {
			m[row*4+col] = comps[col]
		}
		if row < 3 {
			p.acceptPunct(",")
		}
	}
	p.acceptPunct(")")
	return m, true
}

// skipBalancedValue consumes one value's worth of tokens: either a single
// token, or a bracketed/parenthesized/braced group (tracking nesting depth
// so embedded brackets of the same kind don't terminate early).
func (p *parser) skipBalancedValue() {
	if p.isPunct("(") {
		p.skipBalancedBracket2("(", ")")
		return
	}
	if p.isPunct("[") {
		p.skipBalancedBracket2("[", "]")
		return
	}
	if p.isPunct("{") {
		p.skipBalancedBracket2("{", "}")
		return
	}
	if !p.atEOF() {
		p.next()
	}
}

func (p *parser) skipBalancedBracket() {
	p.skipBalancedBracket2("[", "]")
}

// skipBalancedBracket2 scans until the matched closer at depth 0, per the
// "skip_balanced(opener)" helper in the design notes.
func (p *parser) skipBalancedBracket2(open, closeTok string) {
	depth := 0
	for !p.atEOF() {
		if p.isPunct(open) {
			depth++
			p.next()
			continue
		}
		if p.isPunct(closeTok) {
			depth--
			p.next()
			if depth <= 0 {
				return
			}
			continue
		}
		p.next()
	}
}
