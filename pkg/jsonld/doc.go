// Package jsonld assembles, cleans, validates and serializes schema.org
// JSON-LD documents.
//
// Nodes are plain maps. Graph members never carry @context; the only
// context is the fixed schema.org one at the document root.
package jsonld
