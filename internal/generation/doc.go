// Package generation defines the interfaces between the curriculum pipeline
// and its content sources. Each weekly content kind (videos, documentation,
// hands-on project, quiz) has its own single-method interface so transports
// can be swapped per kind: static lookup tables, the YouTube Data API, or a
// language model.
package generation
