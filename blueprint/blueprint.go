package blueprint

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hupe1980/shipwright/core"
	"gopkg.in/yaml.v3"
)

// MaxDocumentSize bounds the size of a blueprint document accepted by Load.
const MaxDocumentSize = 1024 * 1024

// ErrInvalid is returned when a blueprint cannot be decoded or fails validation.
var ErrInvalid = errors.New("invalid blueprint")

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("partkind", validatePartKind)
}

func validatePartKind(fl validator.FieldLevel) bool {
	return core.Kind(fl.Field().Int()).Valid()
}

// Entry requests one part.
type Entry struct {
	Kind  core.Kind `yaml:"kind" validate:"partkind"`
	Size  uint16    `yaml:"size" validate:"gt=0"`
	Level uint16    `yaml:"level"`
}

// Blueprint is a named, ordered list of part requests.
type Blueprint struct {
	Name  string  `yaml:"name" validate:"required,max=64"`
	Parts []Entry `yaml:"parts" validate:"required,min=1,dive"`
}

// Parse decodes and validates a YAML blueprint.
func Parse(data []byte) (*Blueprint, error) {
	var bp Blueprint
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&bp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	return &bp, nil
}

// Load reads a blueprint document from r, refusing documents larger than
// MaxDocumentSize.
func Load(r io.Reader) (*Blueprint, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("read blueprint: %w", err)
	}
	if len(data) > MaxDocumentSize {
		return nil, fmt.Errorf("%w: document exceeds %d bytes", ErrInvalid, MaxDocumentSize)
	}
	return Parse(data)
}

// Validate checks the blueprint against its struct tags.
func (bp *Blueprint) Validate() error {
	if err := validate.Struct(bp); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Marshal encodes the blueprint as YAML.
func (bp *Blueprint) Marshal() ([]byte, error) {
	return yaml.Marshal(bp)
}

// FromVessel captures the installed parts of v, in installation order.
func FromVessel(v *core.Vessel) *Blueprint {
	bp := &Blueprint{Name: v.Name(), Parts: make([]Entry, 0, v.Len())}
	for _, p := range v.Parts() {
		bp.Parts = append(bp.Parts, Entry{Kind: p.Kind(), Size: p.Size(), Level: p.Level()})
	}
	return bp
}

// Quote returns the total marginal cost staging every entry into b would add,
// in blueprint order, without touching b.
func (bp *Blueprint) Quote(b *core.Builder) float32 {
	var total float32
	size := b.Size()
	for _, e := range bp.Parts {
		p := core.DerivePart(e.Kind, e.Size, e.Level, uuid.Nil)
		total += p.Cost() + core.SizeSurcharge*float32(size)
		size += e.Size
	}
	return total
}

// Apply stages every entry into b in blueprint order and returns the staged parts.
func (bp *Blueprint) Apply(b *core.Builder) []core.Part {
	parts := make([]core.Part, 0, len(bp.Parts))
	for _, e := range bp.Parts {
		parts = append(parts, b.AddPart(e.Kind, e.Size, e.Level))
	}
	return parts
}
