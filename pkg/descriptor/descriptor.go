package descriptor

import (
	"slices"

	"github.com/cloudcarver/text2image/pkg/codec"
	"github.com/pkg/errors"
)

type Status string

const (
	Available   Status = "AVAILABLE"
	Unavailable Status = "UNAVAILABLE"
)

var (
	ErrMissingField    = errors.New("missing field")
	ErrUnexpectedType  = errors.New("unexpected content type")
	ErrUndeclaredField = errors.New("undeclared field")
)

type FieldDescription struct {
	Name string              `json:"name" yaml:"name"`
	Type []codec.ContentType `json:"type" yaml:"type"`
}

func (f FieldDescription) Accepts(ct codec.ContentType) bool {
	return slices.Contains(f.Type, ct)
}

type Tag struct {
	Name    string `json:"name" yaml:"name"`
	Acronym string `json:"acronym" yaml:"acronym"`
}

// Descriptor is the identity and field contract announced to the engines.
// Build it with New; it is never modified afterwards.
type Descriptor struct {
	name          string
	slug          string
	url           string
	summary       string
	description   string
	status        Status
	dataInFields  []FieldDescription
	dataOutFields []FieldDescription
	tags          []Tag
	hasAI         bool
	docsURL       string
}

type Params struct {
	Name          string
	Slug          string
	URL           string
	Summary       string
	Description   string
	Status        Status
	DataInFields  []FieldDescription
	DataOutFields []FieldDescription
	Tags          []Tag
	HasAI         bool
	DocsURL       string
}

func New(p Params) (*Descriptor, error) {
	if p.Name == "" || p.Slug == "" {
		return nil, errors.New("name and slug are required")
	}
	if p.URL == "" {
		return nil, errors.New("url is required")
	}
	if len(p.DataOutFields) == 0 {
		return nil, errors.New("at least one output field is required")
	}
	for _, fields := range [][]FieldDescription{p.DataInFields, p.DataOutFields} {
		seen := map[string]bool{}
		for _, f := range fields {
			if f.Name == "" || len(f.Type) == 0 {
				return nil, errors.Errorf("field %q must have a name and at least one type", f.Name)
			}
			if seen[f.Name] {
				return nil, errors.Errorf("duplicate field %q", f.Name)
			}
			seen[f.Name] = true
		}
	}
	status := p.Status
	if status == "" {
		status = Available
	}
	return &Descriptor{
		name:          p.Name,
		slug:          p.Slug,
		url:           p.URL,
		summary:       p.Summary,
		description:   p.Description,
		status:        status,
		dataInFields:  cloneFields(p.DataInFields),
		dataOutFields: cloneFields(p.DataOutFields),
		tags:          slices.Clone(p.Tags),
		hasAI:         p.HasAI,
		docsURL:       p.DocsURL,
	}, nil
}

func cloneFields(fields []FieldDescription) []FieldDescription {
	ret := make([]FieldDescription, len(fields))
	for i, f := range fields {
		ret[i] = FieldDescription{Name: f.Name, Type: slices.Clone(f.Type)}
	}
	return ret
}

func (d *Descriptor) Name() string        { return d.name }
func (d *Descriptor) Slug() string        { return d.slug }
func (d *Descriptor) URL() string         { return d.url }
func (d *Descriptor) Summary() string     { return d.summary }
func (d *Descriptor) Description() string { return d.description }
func (d *Descriptor) Status() Status      { return d.status }
func (d *Descriptor) HasAI() bool         { return d.hasAI }
func (d *Descriptor) DocsURL() string     { return d.docsURL }

// DataInFields returns a copy of the declared input fields.
func (d *Descriptor) DataInFields() []FieldDescription { return cloneFields(d.dataInFields) }

// DataOutFields returns a copy of the declared output fields.
func (d *Descriptor) DataOutFields() []FieldDescription { return cloneFields(d.dataOutFields) }

func (d *Descriptor) Tags() []Tag { return slices.Clone(d.tags) }

func (d *Descriptor) OutField(name string) (FieldDescription, bool) {
	for _, f := range d.dataOutFields {
		if f.Name == name {
			return FieldDescription{Name: f.Name, Type: slices.Clone(f.Type)}, true
		}
	}
	return FieldDescription{}, false
}

// ValidateInputs checks that every declared input is present with one of its
// accepted types and that no undeclared field is sent.
func (d *Descriptor) ValidateInputs(inputs map[string]codec.FieldData) error {
	for _, f := range d.dataInFields {
		fd, ok := inputs[f.Name]
		if !ok {
			return errors.Wrapf(ErrMissingField, "input field %s", f.Name)
		}
		if !f.Accepts(fd.Type) {
			return errors.Wrapf(ErrUnexpectedType, "input field %s has type %q, expecting one of %v", f.Name, fd.Type, f.Type)
		}
	}
	for name := range inputs {
		if !slices.ContainsFunc(d.dataInFields, func(f FieldDescription) bool { return f.Name == name }) {
			return errors.Wrapf(ErrUndeclaredField, "input field %s", name)
		}
	}
	return nil
}

// Model is the wire form sent to engines and served on /service.
type Model struct {
	Name          string             `json:"name" yaml:"name"`
	Slug          string             `json:"slug" yaml:"slug"`
	URL           string             `json:"url" yaml:"url"`
	Summary       string             `json:"summary" yaml:"summary"`
	Description   string             `json:"description" yaml:"description"`
	Status        Status             `json:"status" yaml:"status"`
	DataInFields  []FieldDescription `json:"data_in_fields" yaml:"data_in_fields"`
	DataOutFields []FieldDescription `json:"data_out_fields" yaml:"data_out_fields"`
	Tags          []Tag              `json:"tags" yaml:"tags"`
	HasAI         bool               `json:"has_ai" yaml:"has_ai"`
	DocsURL       string             `json:"docs_url,omitempty" yaml:"docs_url,omitempty"`
}

func (d *Descriptor) Model() Model {
	return Model{
		Name:          d.name,
		Slug:          d.slug,
		URL:           d.url,
		Summary:       d.summary,
		Description:   d.description,
		Status:        d.status,
		DataInFields:  d.DataInFields(),
		DataOutFields: d.DataOutFields(),
		Tags:          d.Tags(),
		HasAI:         d.hasAI,
		DocsURL:       d.docsURL,
	}
}
