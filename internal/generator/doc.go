// Package generator turns a tree of JSON Schema files into Kubernetes
// CustomResourceDefinition manifests.
//
// Every "*.json" file below the input directory is processed in lexical path
// order: its definitions are inlined, generator metadata is stripped, the
// group, plural, kind and version are derived from its path and the manifest
// is written to "<outputDir>/<group>_<plural>.yaml". Files that map to the
// same output name overwrite each other; the last one processed wins.
package generator
