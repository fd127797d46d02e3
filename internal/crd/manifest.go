package crd

import (
	"strings"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	"crdgen/internal/schema"
)

const kindCustomResourceDefinition = "CustomResourceDefinition"

// CustomResourceDefinition is the generated manifest. It mirrors the shape of
// apiextensions.k8s.io/v1 CustomResourceDefinition but keeps the schema as a
// free-form tree, so keywords outside the typed JSONSchemaProps survive, and
// leaves out the server-populated status and metadata fields.
type CustomResourceDefinition struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        Metadata `json:"metadata"`
	Spec            Spec     `json:"spec"`
}

// Metadata is the object metadata of a generated manifest.
type Metadata struct {
	Name string `json:"name"`
}

// Spec is the CRD spec.
type Spec struct {
	Group    string                                        `json:"group"`
	Names    apiextensionsv1.CustomResourceDefinitionNames `json:"names"`
	Scope    apiextensionsv1.ResourceScope                 `json:"scope"`
	Versions []Version                                     `json:"versions"`
}

// Version is a single served version of the resource.
type Version struct {
	Name         string                                      `json:"name"`
	Served       bool                                        `json:"served"`
	Storage      bool                                        `json:"storage"`
	Subresources *apiextensionsv1.CustomResourceSubresources `json:"subresources,omitempty"`
	Schema       Validation                                  `json:"schema"`
}

// Validation holds the structural schema of a version.
type Validation struct {
	OpenAPIV3Schema schema.Schema `json:"openAPIV3Schema"`
}

// Assemble wraps a normalized schema in a namespaced CRD manifest with a
// single served and stored version and the status subresource enabled.
//
// Only the schema's description, properties and required list are carried
// over; the root is always typed as an object.
func Assemble(n Naming, s schema.Schema) *CustomResourceDefinition {
	props := s.Properties()
	if props == nil {
		props = schema.Schema{}
	}
	openAPI := schema.Schema{
		"type":       "object",
		"properties": props,
	}
	if d := s.Description(); d != "" {
		openAPI["description"] = d
	}
	if req := s.Required(); len(req) > 0 {
		openAPI["required"] = req
	}

	return &CustomResourceDefinition{
		TypeMeta: metav1.TypeMeta{
			APIVersion: apiextensionsv1.SchemeGroupVersion.String(),
			Kind:       kindCustomResourceDefinition,
		},
		Metadata: Metadata{Name: n.Name()},
		Spec: Spec{
			Group: n.Group,
			Names: apiextensionsv1.CustomResourceDefinitionNames{
				Kind:     n.Kind,
				ListKind: n.Kind + "List",
				Plural:   n.Plural,
				Singular: strings.ToLower(n.Kind),
			},
			Scope: apiextensionsv1.NamespaceScoped,
			Versions: []Version{
				{
					Name:    n.Version,
					Served:  true,
					Storage: true,
					Subresources: &apiextensionsv1.CustomResourceSubresources{
						Status: &apiextensionsv1.CustomResourceSubresourceStatus{},
					},
					Schema: Validation{OpenAPIV3Schema: openAPI},
				},
			},
		},
	}
}

// Marshal serializes the manifest to YAML. Mapping keys are emitted in
// sorted order and repeated sub-documents are written out in full, never as
// anchors and aliases, so the output is stable and diffable.
func Marshal(c *CustomResourceDefinition) ([]byte, error) {
	return yaml.Marshal(c)
}
