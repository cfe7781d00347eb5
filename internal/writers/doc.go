// Package writers turns engine traces into serialized outputs.
//
// Design:
//   - Engines stay presentation-free; writers own every output format.
//   - A Run is a header plus one Record per trace step, converted once and
//     shared by all formats.
//   - Formats are looked up by name in a registry ("text", "jsonl").
//   - Any output can be wrapped in a zstd stream.
package writers
