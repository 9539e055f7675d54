// Package hclloader parses HCL formula files into the format-agnostic
// config model. It accepts a single file or a directory tree of .hcl files;
// multiple files are merged in discovery order, so cross-file references
// must point at earlier files.
//
// The package also owns the function table available inside node
// expressions (sin, pow, log, ...), built on cty's function machinery.
package hclloader
