// Package convert wires the edge-list → METIS pipeline together:
//
//	edgelist.Read  →  relabel.New  →  metis.Build  →  metis.Verify  →  metis.Encode / WriteFile
//
// Convert is the file-to-file entry point; Transform runs the same stages on
// an io.Reader/io.Writer pair. Both read the complete input before producing
// any output, so a parse error never leaves a partial result behind.
package convert
