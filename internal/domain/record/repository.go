package record

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinicore/internal/platform/csvfile"
)

// Repository is an in-memory, load/save-backed collection of records of one
// entity type. It is the single owner of its entries: accessors hand out
// copies, never the internal slice. Mutations are in-memory only until an
// explicit SaveFile.
type Repository[T any] struct {
	schema   Schema[T]
	items    []T
	warnings []ParseWarning
	logger   zerolog.Logger
}

// NewRepository creates an empty repository for the given schema.
func NewRepository[T any](schema Schema[T], logger zerolog.Logger) *Repository[T] {
	return &Repository[T]{
		schema: schema,
		logger: logger.With().Str("entity", schema.Entity).Logger(),
	}
}

// Schema returns the repository's schema descriptor.
func (r *Repository[T]) Schema() Schema[T] { return r.schema }

// LoadFile replaces the collection with the decoded contents of the CSV
// file at path. Rows shorter than the schema minimum are dropped; cells
// that fail type conversion degrade to zero values. Both are recorded as
// parse warnings, retrievable via Warnings, and logged.
func (r *Repository[T]) LoadFile(codec csvfile.Codec, path string) error {
	rows, err := codec.ReadFile(path)
	if err != nil {
		return err
	}

	r.items = r.items[:0]
	r.warnings = nil

	for i, row := range rows {
		line := i + 2 // 1-based, after the header
		if len(row) < r.schema.MinFields {
			r.warnings = append(r.warnings, ParseWarning{
				Line:   line,
				Reason: "row dropped: too few fields",
			})
			continue
		}
		rec := r.schema.Decode(&Row{
			fields:  row,
			columns: r.schema.Columns,
			line:    line,
			warns:   &r.warnings,
		})
		r.items = append(r.items, rec)
	}

	for _, w := range r.warnings {
		r.logger.Warn().
			Str("file", path).
			Int("line", w.Line).
			Str("column", w.Column).
			Str("value", w.Value).
			Msg(w.Reason)
	}
	r.logger.Info().
		Str("file", path).
		Int("records", len(r.items)).
		Int("warnings", len(r.warnings)).
		Msg("loaded")

	return nil
}

// SaveFile encodes every record and overwrites the CSV file at path.
func (r *Repository[T]) SaveFile(path string) error {
	rows := make([][]string, 0, len(r.items))
	for _, rec := range r.items {
		rows = append(rows, r.schema.Encode(rec))
	}
	if err := csvfile.WriteFile(path, r.schema.Columns, rows); err != nil {
		return err
	}
	r.logger.Info().Str("file", path).Int("records", len(rows)).Msg("saved")
	return nil
}

// Warnings returns a copy of the parse warnings from the most recent load.
func (r *Repository[T]) Warnings() []ParseWarning {
	out := make([]ParseWarning, len(r.warnings))
	copy(out, r.warnings)
	return out
}

// All returns a copy of every record.
func (r *Repository[T]) All() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Get returns the first record whose ID matches exactly.
func (r *Repository[T]) Get(id string) (T, bool) {
	for _, rec := range r.items {
		if r.schema.ID(rec) == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Find returns every record matching the predicate.
func (r *Repository[T]) Find(pred func(T) bool) []T {
	var out []T
	for _, rec := range r.items {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// First returns the first record matching the predicate.
func (r *Repository[T]) First(pred func(T) bool) (T, bool) {
	for _, rec := range r.items {
		if pred(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Add appends a record. Uniqueness of the ID is the caller's concern; use
// NextID to generate one.
func (r *Repository[T]) Add(rec T) {
	r.items = append(r.items, rec)
}

// Update replaces the first record whose ID matches and reports whether a
// match was found.
func (r *Repository[T]) Update(rec T) bool {
	id := r.schema.ID(rec)
	for i := range r.items {
		if r.schema.ID(r.items[i]) == id {
			r.items[i] = rec
			return true
		}
	}
	return false
}

// Delete removes the first record whose ID matches and reports whether
// anything was removed.
func (r *Repository[T]) Delete(id string) bool {
	for i := range r.items {
		if r.schema.ID(r.items[i]) == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

// NextID returns the next sequential ID for this entity type.
func (r *Repository[T]) NextID() string {
	ids := make([]string, 0, len(r.items))
	for _, rec := range r.items {
		ids = append(ids, r.schema.ID(rec))
	}
	return NextID(ids, r.schema.IDPrefix, r.schema.IDWidth)
}

// Count returns the number of records.
func (r *Repository[T]) Count() int { return len(r.items) }

// SetAll replaces the collection with a copy of recs.
func (r *Repository[T]) SetAll(recs []T) {
	r.items = make([]T, len(recs))
	copy(r.items, recs)
}

// EqualFold reports case-insensitive string equality. Filters across the
// entity stores share this for status and category matching.
func EqualFold(a, b string) bool { return strings.EqualFold(a, b) }

// ContainsFold reports whether s contains substr, case-insensitively. Used
// by the free-text search helpers.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
