package cocoedit

import (
	"context"
	"os"

	"github.com/hupe1980/cocoedit/blobstore"
	"github.com/hupe1980/cocoedit/coco"
	"github.com/hupe1980/cocoedit/codec"
	"github.com/hupe1980/cocoedit/compress"
	"github.com/hupe1980/cocoedit/filter"
	"github.com/hupe1980/cocoedit/internal/idset"
	"github.com/hupe1980/cocoedit/internal/mmap"
)

// Editor owns one COCO dataset and the filters registered against it.
//
// An Editor is single-threaded: it owns its dataset and filter sets
// exclusively and must not be shared across goroutines. In-memory sources are
// deep-copied at construction, so the caller's document is never aliased or
// mutated.
type Editor struct {
	dataset       *coco.Dataset
	filters       map[filter.Target]*filter.Set
	filterApplied bool

	codec       codec.Codec
	logger      *Logger
	compression *compress.Type
}

func newEditor(optFns ...Option) *Editor {
	opts := options{
		codec:  codec.Default,
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Editor{
		codec:       opts.codec,
		logger:      opts.logger,
		compression: opts.compression,
	}
}

// compressionFor resolves the compression type for a file or blob name,
// honoring the WithCompression override.
func (e *Editor) compressionFor(name string) compress.Type {
	if e.compression != nil {
		return *e.compression
	}
	return compress.ByPath(name)
}

// New creates an Editor from the COCO JSON file at path. Files ending in
// .gz, .zst or .lz4 are decompressed transparently. The dataset is validated
// on load; a record lacking a required field fails with MissingFieldError.
func New(path string, optFns ...Option) (*Editor, error) {
	e := newEditor(optFns...)
	if err := e.Reset(path); err != nil {
		return nil, err
	}
	return e, nil
}

// NewFromDataset creates an Editor from an in-memory dataset. The dataset is
// deep-copied and validated.
func NewFromDataset(ds *coco.Dataset, optFns ...Option) (*Editor, error) {
	e := newEditor(optFns...)
	if err := e.ResetDataset(ds); err != nil {
		return nil, err
	}
	return e, nil
}

// NewFromStore creates an Editor from a blob in the given store. Compression
// is chosen by the blob name's extension, as with New.
func NewFromStore(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*Editor, error) {
	e := newEditor(optFns...)
	if err := e.ResetFromStore(ctx, store, name); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset reloads the dataset from a file, discards all registered filters and
// clears the applied flag. Reset and New share identical semantics; a failed
// Reset leaves the Editor's prior state untouched.
func (e *Editor) Reset(path string) error {
	m, err := mmap.Open(path)
	if err != nil {
		return err
	}
	defer m.Close()

	ds, err := e.decode(m.Bytes(), e.compressionFor(path))
	if err != nil {
		return err
	}

	e.install(ds, path)
	return nil
}

// ResetDataset reloads from an in-memory dataset, deep-copying it. Discards
// all registered filters and clears the applied flag.
func (e *Editor) ResetDataset(ds *coco.Dataset) error {
	clone := ds.Clone()
	clone.Normalize()
	if err := clone.Validate(); err != nil {
		return err
	}

	e.install(clone, "dataset")
	return nil
}

// ResetFromStore reloads the dataset from a blob in the given store.
func (e *Editor) ResetFromStore(ctx context.Context, store blobstore.BlobStore, name string) error {
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return err
	}

	ds, err := e.decode(data, e.compressionFor(name))
	if err != nil {
		return err
	}

	e.install(ds, name)
	return nil
}

func (e *Editor) decode(data []byte, ct compress.Type) (*coco.Dataset, error) {
	data, err := compress.Decode(data, ct)
	if err != nil {
		return nil, err
	}

	var ds coco.Dataset
	if err := e.codec.Unmarshal(data, &ds); err != nil {
		return nil, err
	}
	ds.Normalize()
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// install commits a validated dataset and fresh filter sets.
func (e *Editor) install(ds *coco.Dataset, source string) {
	e.dataset = ds
	e.filters = map[filter.Target]*filter.Set{
		filter.TargetImage:      {},
		filter.TargetCategory:   {},
		filter.TargetAnnotation: {},
		filter.TargetLicense:    {},
	}
	e.filterApplied = false
	e.logger.LogLoad(source, len(ds.Images), len(ds.Categories), len(ds.Annotations), len(ds.Licenses))
}

// Dataset returns the editor's current dataset. The returned aggregate shares
// the editor's collections; use Clone for an isolated copy.
func (e *Editor) Dataset() *coco.Dataset {
	return e.dataset
}

// AddFilter registers a filter against the collection its Target tag names.
// Registering against an unrecognized target fails with InvalidTargetError;
// registration never touches the dataset or the applied flag.
func (e *Editor) AddFilter(f filter.Filter) error {
	set, ok := e.filters[f.Target()]
	if !ok {
		return &InvalidTargetError{Target: f.Target()}
	}
	set.Add(f)
	return nil
}

// AddFileNameFilter registers image filters by file name: an inclusion filter
// for include and an exclusion filter for exclude. A nil slice registers no
// filter of that kind (an empty non-nil slice registers a filter matching
// nothing).
func (e *Editor) AddFileNameFilter(include, exclude []string) *Editor {
	if include != nil {
		e.filters[filter.TargetImage].Add(filter.NewFileName(filter.KindInclusion, include))
	}
	if exclude != nil {
		e.filters[filter.TargetImage].Add(filter.NewFileName(filter.KindExclusion, exclude))
	}
	return e
}

// AddCategoryFilter registers category filters by category name, with the
// same nil-slice convention as AddFileNameFilter.
func (e *Editor) AddCategoryFilter(include, exclude []string) *Editor {
	if include != nil {
		e.filters[filter.TargetCategory].Add(filter.NewCategoryName(filter.KindInclusion, include))
	}
	if exclude != nil {
		e.filters[filter.TargetCategory].Add(filter.NewCategoryName(filter.KindExclusion, exclude))
	}
	return e
}

// ApplyFilter applies the registered filters to each collection.
//
// Per collection, the inclusion stage runs first: with at least one inclusion
// filter registered, only records matched by AT LEAST ONE of them survive.
// The exclusion stage then narrows the result: a record is dropped only when
// EVERY registered exclusion filter matches it; one non-matching exclusion
// filter keeps the record. Note this is deliberately weaker than "drop on any
// match".
//
// Each new collection is buffered before any is committed. The applied flag
// is set unconditionally, even with no filters registered. Re-applying
// filters operates on the current, already filtered collections.
func (e *Editor) ApplyFilter() *Editor {
	images := applyToCollection(e.dataset.Images, e.filters[filter.TargetImage])
	categories := applyToCollection(e.dataset.Categories, e.filters[filter.TargetCategory])
	annotations := applyToCollection(e.dataset.Annotations, e.filters[filter.TargetAnnotation])
	licenses := applyToCollection(e.dataset.Licenses, e.filters[filter.TargetLicense])

	e.dataset.Images = images
	e.dataset.Categories = categories
	e.dataset.Annotations = annotations
	e.dataset.Licenses = licenses

	e.filterApplied = true
	e.logger.LogApply(len(images), len(categories), len(annotations), len(licenses))
	return e
}

func applyToCollection(records []coco.Record, set *filter.Set) []coco.Record {
	if inclusions := set.Inclusions(); len(inclusions) > 0 {
		kept := make([]coco.Record, 0, len(records))
		for _, r := range records {
			for _, f := range inclusions {
				if f.Matches(r) {
					kept = append(kept, r)
					break
				}
			}
		}
		records = kept
	}

	if exclusions := set.Exclusions(); len(exclusions) > 0 {
		kept := make([]coco.Record, 0, len(records))
		for _, r := range records {
			for _, f := range exclusions {
				if !f.Matches(r) {
					kept = append(kept, r)
					break
				}
			}
		}
		records = kept
	}

	return records
}

// Correct restores referential integrity after filtering. It applies the
// registered filters first if ApplyFilter has not run since the last load.
//
// Annotations whose category_id, then whose image_id, points at a removed
// record are dropped. With CorrectImage (the default), images no surviving
// annotation references are dropped too; CorrectCategory does the same for
// categories and defaults to off. Licenses are never corrected.
//
// The returned aggregate shares the editor's now-corrected collections.
func (e *Editor) Correct(optFns ...func(*CorrectOptions)) *coco.Dataset {
	opts := CorrectOptions{CorrectImage: true}
	for _, fn := range optFns {
		fn(&opts)
	}

	if !e.filterApplied {
		e.ApplyFilter()
	}

	annotationsBefore := len(e.dataset.Annotations)

	catIDs := idset.FromField(e.dataset.Categories, "id")
	kept := make([]coco.Record, 0, len(e.dataset.Annotations))
	for _, ann := range e.dataset.Annotations {
		if catIDs.Contains(ann["category_id"]) {
			kept = append(kept, ann)
		}
	}
	e.dataset.Annotations = kept

	imgIDs := idset.FromField(e.dataset.Images, "id")
	kept = make([]coco.Record, 0, len(e.dataset.Annotations))
	for _, ann := range e.dataset.Annotations {
		if imgIDs.Contains(ann["image_id"]) {
			kept = append(kept, ann)
		}
	}
	e.dataset.Annotations = kept

	droppedImages := 0
	if opts.CorrectImage {
		referenced := idset.FromField(e.dataset.Annotations, "image_id")
		images := make([]coco.Record, 0, len(e.dataset.Images))
		for _, img := range e.dataset.Images {
			if referenced.Contains(img["id"]) {
				images = append(images, img)
			}
		}
		droppedImages = len(e.dataset.Images) - len(images)
		e.dataset.Images = images
	}

	droppedCategories := 0
	if opts.CorrectCategory {
		referenced := idset.FromField(e.dataset.Annotations, "category_id")
		categories := make([]coco.Record, 0, len(e.dataset.Categories))
		for _, cat := range e.dataset.Categories {
			if referenced.Contains(cat["id"]) {
				categories = append(categories, cat)
			}
		}
		droppedCategories = len(e.dataset.Categories) - len(categories)
		e.dataset.Categories = categories
	}

	e.logger.LogCorrect(annotationsBefore-len(e.dataset.Annotations), droppedImages, droppedCategories)
	return e.dataset
}

// Export corrects the dataset and writes it as JSON to path. Files ending in
// .gz, .zst or .lz4 are compressed accordingly.
func (e *Editor) Export(path string, optFns ...func(*CorrectOptions)) error {
	ds := e.Correct(optFns...)

	data, err := e.codec.Marshal(ds)
	if err != nil {
		return err
	}

	err = writeFile(path, data, e.compressionFor(path))
	e.logger.LogExport(path, len(data), err)
	return err
}

// ExportTo corrects the dataset and writes it to a blob in the given store,
// compressing by the blob name's extension.
func (e *Editor) ExportTo(ctx context.Context, store blobstore.BlobStore, name string, optFns ...func(*CorrectOptions)) error {
	ds := e.Correct(optFns...)

	data, err := e.codec.Marshal(ds)
	if err != nil {
		return err
	}
	data, err = compress.Encode(data, e.compressionFor(name))
	if err != nil {
		return err
	}

	err = store.Put(ctx, name, data)
	e.logger.LogExport(name, len(data), err)
	return err
}

func writeFile(path string, data []byte, ct compress.Type) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w, err := compress.NewWriter(f, ct)
	if err != nil {
		f.Close()
		return err
	}

	if _, err := w.Write(data); err != nil {
		w.Close()
		f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
