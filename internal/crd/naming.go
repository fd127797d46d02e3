package crd

import (
	"fmt"
	"path/filepath"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"
)

// Naming identifies the custom resource a schema file describes.
type Naming struct {
	Group   string
	Plural  string
	Kind    string
	Version string
}

// Name returns the CRD object name, "<plural>.<group>".
func (n Naming) Name() string {
	return n.Plural + "." + n.Group
}

// OutputFileName returns the manifest file name, "<group>_<plural>.yaml".
func (n Naming) OutputFileName() string {
	return fmt.Sprintf("%s_%s.yaml", n.Group, n.Plural)
}

// NamingConventionError is returned when a schema file path does not follow
// the "<version>/<group>_<plural>_<Kind>.json" convention.
type NamingConventionError struct {
	File   string
	Reason string
}

func (e *NamingConventionError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, e.Reason)
}

// NamingFromPath derives the naming tuple from a schema file path. The file
// name must split into exactly three non-empty underscore separated parts
// (group, plural, kind) and the version is the directory containing the file.
func NamingFromPath(path string) (Naming, error) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	parts := strings.Split(stem, "_")
	if len(parts) != 3 {
		return Naming{}, &NamingConventionError{
			File:   path,
			Reason: fmt.Sprintf("file name %q must have the form <group>_<plural>_<Kind>, found %d part(s)", stem, len(parts)),
		}
	}
	for _, p := range parts {
		if p == "" {
			return Naming{}, &NamingConventionError{
				File:   path,
				Reason: fmt.Sprintf("file name %q has an empty group, plural or kind", stem),
			}
		}
	}

	version := filepath.Base(filepath.Dir(path))
	if version == "." || version == string(filepath.Separator) {
		return Naming{}, &NamingConventionError{
			File:   path,
			Reason: "no version directory precedes the file name",
		}
	}

	return Naming{Group: parts[0], Plural: parts[1], Kind: parts[2], Version: version}, nil
}

// ValidateNaming checks that n can name a CRD object: the group must be a
// DNS-1123 subdomain and the plural a DNS-1123 label. path is only used for
// the error.
func ValidateNaming(path string, n Naming) error {
	if errs := validation.IsDNS1123Subdomain(n.Group); len(errs) > 0 {
		return &NamingConventionError{
			File:   path,
			Reason: fmt.Sprintf("group %q is invalid: %s", n.Group, strings.Join(errs, "; ")),
		}
	}
	if errs := validation.IsDNS1123Label(n.Plural); len(errs) > 0 {
		return &NamingConventionError{
			File:   path,
			Reason: fmt.Sprintf("plural %q is invalid: %s", n.Plural, strings.Join(errs, "; ")),
		}
	}
	return nil
}
