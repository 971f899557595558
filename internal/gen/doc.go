// Package gen emits Go source for fixed-layout record codecs.
//
// Every record gets up to five methods, one per generator:
//   - TryDecode: checked conversion from bytes through an advancing cursor
//   - TryEncode: checked conversion to bytes through an advancing cursor
//   - FixedSize: the packed size of the record
//   - DecodeUnchecked and EncodeUnchecked: offset arithmetic without error checks
//
// The generators share no state. Each one walks a plan.RecordPlan and renders
// a method body; the file template stitches the methods together and the
// result goes through go/format.
package gen
