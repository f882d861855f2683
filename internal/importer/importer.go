// Package importer defines the identification contract every statement
// importer exposes and an ordered registry to dispatch files over the known
// formats.
package importer

import (
	"time"

	"github.com/ArthurFDLR/beancount-ce/internal/ledger"
	"github.com/ArthurFDLR/beancount-ce/internal/logging"
)

// Importer is the contract shared by all statement importers. Identify is a
// cheap format sniff: returning false is the normal "this file is not mine"
// signal, never an error, and callers are expected to try other importers.
type Importer interface {
	// Name identifies the importer in logs.
	Name() string

	// Identify reports whether the file belongs to this importer.
	Identify(path string) bool

	// Extract returns the ledger transactions of the file. A file that
	// fails identification or whose extraction aborts fatally yields an
	// empty list, never a partial one.
	Extract(path string) ([]ledger.Transaction, error)

	// FileDate returns the statement's emission (latest) date.
	FileDate(path string) (time.Time, error)

	// FileAccount returns the target ledger account name.
	FileAccount(path string) string

	// FileName returns the canonical filename for archiving the statement.
	FileName(path string) string
}

// Registry dispatches files over an ordered list of importers.
type Registry struct {
	importers []Importer
	log       logging.Logger
}

// NewRegistry builds a registry trying importers in the given order.
func NewRegistry(logger logging.Logger, importers ...Importer) *Registry {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Registry{importers: importers, log: logger}
}

// FirstMatch returns the first importer that identifies the file.
func (r *Registry) FirstMatch(path string) (Importer, bool) {
	for _, imp := range r.importers {
		if imp.Identify(path) {
			return imp, true
		}
	}
	return nil, false
}

// Extract runs the first matching importer over the file. A file no importer
// claims yields an empty list and no error.
func (r *Registry) Extract(path string) ([]ledger.Transaction, error) {
	imp, ok := r.FirstMatch(path)
	if !ok {
		r.log.Info("no importer claims file",
			logging.Field{Key: logging.FieldFile, Value: path})
		return nil, nil
	}

	r.log.Info("extracting file",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldImporter, Value: imp.Name()})
	return imp.Extract(path)
}
