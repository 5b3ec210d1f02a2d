package domain

// InputKind selects how a single control renders and how its answer is
// coerced into the form model.
type InputKind string

const (
	InputNumber   InputKind = "number"
	InputDate     InputKind = "date"
	InputSelect   InputKind = "select"
	InputCheckbox InputKind = "checkbox"
	InputText     InputKind = "text"
)

// SelectOption is one choice of a select control.
type SelectOption struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Field describes one addressable input control. FieldID matches the form
// model field it commits into.
type Field struct {
	FieldID     string         `yaml:"field" json:"field"`
	Kind        InputKind      `yaml:"kind" json:"kind"`
	Label       string         `yaml:"label,omitempty" json:"label,omitempty"`
	Placeholder string         `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Default     string         `yaml:"default,omitempty" json:"default,omitempty"`
	Options     []SelectOption `yaml:"options,omitempty" json:"options,omitempty"`
}

// Step is one immutable catalog entry. Text may embed {name}, replaced with
// the session's display name at render time. A step carries zero fields
// (pure narration), one, or a fixed group of two to three.
type Step struct {
	Text     string  `yaml:"text" json:"text"`
	Fields   []Field `yaml:"fields,omitempty" json:"fields,omitempty"`
	Terminal bool    `yaml:"terminal,omitempty" json:"terminal,omitempty"`
}

// StepView is what the step endpoint renders: the narrative with the name
// substituted plus the declarative input descriptors.
type StepView struct {
	Index    int     `json:"index"`
	Total    int     `json:"total"`
	Text     string  `json:"text"`
	Fields   []Field `json:"fields,omitempty"`
	Terminal bool    `json:"terminal"`
}
