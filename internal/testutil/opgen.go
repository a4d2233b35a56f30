package testutil

import (
	"strconv"
	"strings"
)

// namePool holds names that share prefixes, so lookups regularly hit
// ambiguous and exact-versus-prefix cases. "call  mom" is typed with two
// spaces.
var namePool = []string{"gym", "gymnastics", "groceries", "taxes", "tax return", "read", "Read aloud", "call  mom"}

var (
	editFields    = []string{"name", "importance", "effort", "pleasure", "urgency", "colour"}
	listVariants  = []string{"", "priority", "value", "margin", "fun", "cost"}
	invalidValues = []string{"abc", "101", "-101", "5-10", "1->2->3", "->"}
)

// OpGenConfig configures the operation generator.
type OpGenConfig struct {
	// AddRate is the percentage of ops that add activities (0-100).
	AddRate int

	// EditRate is the percentage of ops that edit activities.
	EditRate int

	// DeleteRate is the percentage of ops that delete activities.
	DeleteRate int

	// ViewRate is the percentage of ops that view activities.
	ViewRate int

	// The remainder lists activities.

	// InvalidInputRate is the percentage of inputs that use invalid values.
	InvalidInputRate int
}

// DefaultOpGenConfig returns a balanced configuration.
func DefaultOpGenConfig() OpGenConfig {
	return OpGenConfig{
		AddRate:          35,
		EditRate:         30,
		DeleteRate:       10,
		ViewRate:         15,
		InvalidInputRate: 20,
	}
}

// OpGenerator generates deterministic operations from a byte stream.
type OpGenerator struct {
	stream *ByteStream
	config OpGenConfig
	model  *Model
}

// NewOpGenerator creates a new operation generator. The model is consulted
// so that names of existing activities are preferred.
func NewOpGenerator(fuzzBytes []byte, model *Model, cfg *OpGenConfig) *OpGenerator {
	return &OpGenerator{
		stream: NewByteStream(fuzzBytes),
		config: *cfg,
		model:  model,
	}
}

// HasMore reports whether more operations can be generated.
func (g *OpGenerator) HasMore() bool {
	return g.stream.HasMore()
}

// NextOp generates the next operation.
func (g *OpGenerator) NextOp() Op {
	choice := g.stream.NextInt(100)
	cumulative := 0

	cumulative += g.config.AddRate
	if choice < cumulative {
		return g.genAdd()
	}

	cumulative += g.config.EditRate
	if choice < cumulative {
		return g.genEdit()
	}

	cumulative += g.config.DeleteRate
	if choice < cumulative {
		return &OpDelete{Name: g.name()}
	}

	cumulative += g.config.ViewRate
	if choice < cumulative {
		prefix := ""
		if g.stream.NextBool() {
			prefix = g.prefix()
		}

		return &OpView{Prefix: prefix}
	}

	return &OpList{Variant: Pick(g.stream, listVariants)}
}

func (g *OpGenerator) invalid() bool {
	return g.stream.NextInt(100) < g.config.InvalidInputRate
}

// name returns a known activity name, or one from the pool.
func (g *OpGenerator) name() string {
	names := g.model.Names()
	if len(names) > 0 && g.stream.NextBool() {
		return Pick(g.stream, names)
	}

	return Pick(g.stream, namePool)
}

// prefix returns a leading part of a name's first word, in random case.
func (g *OpGenerator) prefix() string {
	word, _, _ := strings.Cut(g.name(), " ")
	p := word[:g.stream.NextIntIn(1, len(word))]

	if g.stream.NextBool() {
		p = strings.ToUpper(p)
	}

	return p
}

func (g *OpGenerator) genAdd() *OpAdd {
	op := &OpAdd{
		Record: Record{
			Name:        Pick(g.stream, namePool),
			Importance:  g.stream.NextIntIn(0, 100),
			Effort:      g.stream.NextIntIn(0, 20),
			Pleasure:    g.stream.NextIntIn(-100, 100),
			UrgencyFrom: g.stream.NextIntIn(0, 100),
			UrgencyTo:   g.stream.NextIntIn(0, 100),
		},
		Answers: -1,
	}

	if g.invalid() {
		op.Retry = g.stream.NextBool()

		if g.stream.NextBool() {
			op.Answers = g.stream.NextInt(len(op.answers()))
		}
	}

	return op
}

func (g *OpGenerator) genEdit() *OpEdit {
	op := &OpEdit{Prefix: g.prefix(), Field: Pick(g.stream, editFields)}

	if g.invalid() {
		op.Value = Pick(g.stream, invalidValues)

		return op
	}

	switch op.Field {
	case "name":
		op.Value = Pick(g.stream, namePool)
	case "importance":
		op.Value = strconv.Itoa(g.stream.NextIntIn(0, 100))
	case "effort":
		op.Value = strconv.Itoa(g.stream.NextIntIn(0, 20))
	case "pleasure":
		op.Value = strconv.Itoa(g.stream.NextIntIn(-100, 100))
	default:
		op.Value = strconv.Itoa(g.stream.NextIntIn(0, 100)) + "->" + strconv.Itoa(g.stream.NextIntIn(0, 100))
	}

	return op
}
