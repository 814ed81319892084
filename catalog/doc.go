// Package catalog loads coded enumerations declared in YAML files, keeps
// them in a registry addressed by name, and exports them back to YAML.
package catalog
