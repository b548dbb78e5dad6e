package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"rzc-go/packages/compiler/errors"
	"rzc-go/packages/compiler/taghelpers"
)

// element is an element to bind, as read from the elements file.
type element struct {
	Tag        string                  `yaml:"tag"`
	Parent     *string                 `yaml:"parent"`
	Structure  taghelpers.TagStructure `yaml:"structure"`
	Attributes []taghelpers.Attribute  `yaml:"attributes"`
	Children   []string                `yaml:"children"`
}

type elementsFile struct {
	Elements []element `yaml:"elements"`
}

type attributeResult struct {
	Name       string   `json:"name"`
	BoundTo    []string `json:"boundTo"`
	Dictionary bool     `json:"dictionary,omitempty"`
}

type matchResult struct {
	Tag                string            `json:"tag"`
	TagHelpers         []string          `json:"tagHelpers"`
	Attributes         []attributeResult `json:"attributes,omitempty"`
	DisallowedChildren []string          `json:"disallowedChildren,omitempty"`
}

func loadElements(path string) (*elementsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}
	var file elementsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WithStackTraceAndPrefix(err, "failed to parse elements %s", path)
	}
	return &file, nil
}

func newMatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Bind the elements of an elements file to the discovered tag helpers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			elementsPath, _ := cmd.Flags().GetString(flagElements)
			file, err := loadElements(elementsPath)
			if err != nil {
				return err
			}

			s, err := newSession(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			binder := taghelpers.NewTagHelperBinder(s.config.TagHelperPrefix, s.descriptors)
			results := make([]matchResult, 0, len(file.Elements))
			for _, el := range file.Elements {
				results = append(results, bindElement(binder, el))
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(results); err != nil {
				return err
			}
			return s.reportDiagnostics()
		},
	}

	cmd.Flags().StringP(flagElements, "e", "", "path to the YAML elements file")
	_ = cmd.MarkFlagRequired(flagElements)
	return cmd
}

func bindElement(binder *taghelpers.TagHelperBinder, el element) matchResult {
	result := matchResult{Tag: el.Tag, TagHelpers: []string{}}

	binding := binder.GetBinding(el.Tag, el.Attributes, el.Parent, el.Structure)
	if binding == nil {
		return result
	}

	for _, d := range binding.Descriptors() {
		result.TagHelpers = append(result.TagHelpers, d.DisplayName)
	}
	for _, attr := range el.Attributes {
		bindings := binding.BoundAttributes(attr.Name)
		if len(bindings) == 0 {
			continue
		}
		ar := attributeResult{Name: attr.Name}
		for _, b := range bindings {
			ar.BoundTo = append(ar.BoundTo, b.Attribute.DisplayName)
			ar.Dictionary = ar.Dictionary || b.Attribute.IsIndexer()
		}
		result.Attributes = append(result.Attributes, ar)
	}
	for _, child := range el.Children {
		if !binding.IsChildAllowed(child) {
			result.DisallowedChildren = append(result.DisallowedChildren, child)
		}
	}
	return result
}
