package discovery

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"

	"rzc-go/packages/compiler/errors"
	"rzc-go/packages/compiler/taghelpers"
)

// Annotation kinds understood by the factory.
const (
	AnnotationHtmlTargetElement     = "HtmlTargetElement"
	AnnotationHtmlAttributeName     = "HtmlAttributeName"
	AnnotationHtmlAttributeNotBound = "HtmlAttributeNotBound"
	AnnotationRestrictChildren      = "RestrictChildren"
	AnnotationOutputElementHint     = "OutputElementHint"
	AnnotationEditorBrowsable       = "EditorBrowsable"
)

const argDictionaryAttributePrefix = "dictionaryAttributePrefix"

// EditorBrowsableState controls whether design-time tooling shows a member.
type EditorBrowsableState int

const (
	EditorBrowsableAlways EditorBrowsableState = iota
	EditorBrowsableNever
	EditorBrowsableAdvanced
)

var editorBrowsableStates = map[string]EditorBrowsableState{
	"always":   EditorBrowsableAlways,
	"never":    EditorBrowsableNever,
	"advanced": EditorBrowsableAdvanced,
}

// HtmlTargetElement targets a tag, optionally constrained by parent, required
// attributes and structure. A nil Tag targets every element.
type HtmlTargetElement struct {
	Tag          *string                 `mapstructure:"tag"`
	Attributes   string                  `mapstructure:"attributes"`
	ParentTag    *string                 `mapstructure:"parentTag"`
	TagStructure taghelpers.TagStructure `mapstructure:"tagStructure"`
}

// HtmlAttributeName overrides the attribute name of a property, and for
// dictionary properties the prefix of their key-value attributes.
type HtmlAttributeName struct {
	Name                      string  `mapstructure:"name"`
	DictionaryAttributePrefix *string `mapstructure:"dictionaryAttributePrefix"`

	// DictionaryAttributePrefixSet is true when the prefix was given, even as null.
	DictionaryAttributePrefixSet bool `mapstructure:"-"`
}

// RestrictChildren limits the elements allowed as children.
type RestrictChildren struct {
	Tags []string `mapstructure:"tags"`
}

// OutputElementHint names the element a tag helper renders.
type OutputElementHint struct {
	Tag string `mapstructure:"tag"`
}

// EditorBrowsable controls design-time visibility.
type EditorBrowsable struct {
	State EditorBrowsableState `mapstructure:"state"`
}

var (
	tagStructureType         = reflect.TypeOf(taghelpers.TagStructure(0))
	editorBrowsableStateType = reflect.TypeOf(EditorBrowsableState(0))
)

// enumNameHook decodes enum names given as strings.
func enumNameHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	name := data.(string)

	switch to {
	case tagStructureType:
		structure, ok := taghelpers.ParseTagStructure(name)
		if !ok {
			return nil, errors.Errorf("unknown tag structure %q", name)
		}
		return structure, nil
	case editorBrowsableStateType:
		state, ok := editorBrowsableStates[strings.ToLower(name)]
		if !ok {
			return nil, errors.Errorf("unknown editor browsable state %q", name)
		}
		return state, nil
	}
	return data, nil
}

// decodeArgs decodes annotation arguments into out. Unknown arguments are errors.
func decodeArgs(annotation Annotation, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       enumNameHook,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return errors.WithStackTrace(err)
	}
	if err := decoder.Decode(annotation.Args); err != nil {
		return errors.WithStackTraceAndPrefix(err, "%s annotation", annotation.Kind)
	}
	return nil
}

// annotations gives typed access to the annotations of a type or property.
type annotations []Annotation

func (a annotations) find(kind string) (Annotation, bool) {
	for _, annotation := range a {
		if annotation.Kind == kind {
			return annotation, true
		}
	}
	return Annotation{}, false
}

func (a annotations) has(kind string) bool {
	_, ok := a.find(kind)
	return ok
}

func (a annotations) attributeName() (*HtmlAttributeName, error) {
	annotation, ok := a.find(AnnotationHtmlAttributeName)
	if !ok {
		return nil, nil
	}
	attributeName := &HtmlAttributeName{}
	if err := decodeArgs(annotation, attributeName); err != nil {
		return nil, err
	}
	_, attributeName.DictionaryAttributePrefixSet = annotation.Args[argDictionaryAttributePrefix]
	return attributeName, nil
}

func (a annotations) restrictChildren() (*RestrictChildren, error) {
	annotation, ok := a.find(AnnotationRestrictChildren)
	if !ok {
		return nil, nil
	}
	restrict := &RestrictChildren{}
	if err := decodeArgs(annotation, restrict); err != nil {
		return nil, err
	}
	return restrict, nil
}

func (a annotations) outputElementHint() (*OutputElementHint, error) {
	annotation, ok := a.find(AnnotationOutputElementHint)
	if !ok {
		return nil, nil
	}
	hint := &OutputElementHint{}
	if err := decodeArgs(annotation, hint); err != nil {
		return nil, err
	}
	return hint, nil
}

func (a annotations) editorBrowsableState() (EditorBrowsableState, error) {
	annotation, ok := a.find(AnnotationEditorBrowsable)
	if !ok {
		return EditorBrowsableAlways, nil
	}
	var browsable EditorBrowsable
	if err := decodeArgs(annotation, &browsable); err != nil {
		return EditorBrowsableAlways, err
	}
	return browsable.State, nil
}
