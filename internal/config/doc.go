// Package config locates and parses the group.yaml sidecar that names the
// API group of exported model schemas.
//
// The sidecar is a YAML document with a single top-level key:
//
//	group: apps.example.com
//
// LoadGroup looks for it in the given directory first and then in the
// directory's parent, so a shared group.yaml can sit above several version
// directories (v1/, v1beta1/, ...).
package config
