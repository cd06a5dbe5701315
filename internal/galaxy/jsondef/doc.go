// Package jsondef is the structured-document ingestion path for custom star
// systems.
//
// A document is a self-describing JSON object: system metadata, a star-type
// signature, and a flat ordered list of bodies whose child references are
// indices into that list. Loading resolves the indices into direct links and
// admits the finished record into the sector registry; saving emits the
// round-trippable subset, omitting fields that were never explicitly set so
// they reload as randomizable.
package jsondef
