// Package seed fills a volontulo.Storage with generated users,
// organizations and offers.
//
// Populate drives an existing factory. Run is the entry point used by the
// popdb command: it builds the factory from Config, runs Populate inside a
// transaction when the storage supports one and reports success on an
// io.Writer.
package seed
