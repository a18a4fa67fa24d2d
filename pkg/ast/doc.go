// Package ast provides the token and document model for typscii sources.
// It defines:
// - SourcePos / SourceSpan: 1-based line/column positions with byte offsets
// - Token: the lexer's output unit
// - Document, Block and Inline nodes: the parser's output tree
// - Snapshot: a lossless view of one source with its tokens and document
package ast
