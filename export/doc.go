// Package export turns sampled surfaces into indexed triangle meshes.
//
// The mesh layout (a flat point list, one normal per triangle and index
// triples into the point list) maps directly onto STL and OBJ writers.
package export
