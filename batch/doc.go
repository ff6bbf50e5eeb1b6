// Package batch renders certificates for a list of recipients and packs
// them into a single ZIP archive.
//
// Recipients are independent: a failed recipient is logged, counted and
// skipped while the rest of the batch continues. Archive entries always
// follow the order of the input list, whether rendering ran sequentially
// or on several workers.
package batch
