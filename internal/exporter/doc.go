// Package exporter writes the JSON Schema document of each model descriptor
// to disk, one file per model, named after the model's API group, plural
// resource name and model name:
//
//	<outputDir>/<group>_<plural>_<Model>.json
//
// The files are the input of the CRD generator. When no group is given it is
// read from a group.yaml sidecar next to the model's descriptor file (or the
// output directory, for models that were not loaded from a file).
package exporter
