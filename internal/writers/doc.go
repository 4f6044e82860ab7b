// Package writers turns filtered alignments and deletion lists into files.
//
// Design:
//   • Writers own all presentation knowledge (header line, delimiters).
//   • filter/dedupe stay domain-only; apps stay orchestration-only.
//   • File outputs are all-or-nothing: a failed write leaves no file behind.
package writers
