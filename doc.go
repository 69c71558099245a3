// Package cocoedit edits datasets in the COCO annotation format.
//
// An Editor loads a COCO JSON document, accumulates inclusion/exclusion
// filters over its four record collections (images, annotations, categories,
// licenses), applies them, restores referential integrity and exports the
// corrected document:
//
//	editor, err := cocoedit.New("annotations.json")
//	if err != nil { ... }
//
//	editor.AddFileNameFilter([]string{"image0.jpg", "image1.jpg"}, nil).
//	    AddCategoryFilter(nil, []string{"person"}).
//	    ApplyFilter()
//
//	if err := editor.Export("pruned.json"); err != nil { ... }
//
// Filtering can leave annotations pointing at removed images or categories;
// Correct (run implicitly by Export) drops those orphans and, optionally,
// images and categories that no surviving annotation references.
//
// Datasets load from local files (transparently decompressing .gz/.zst/.lz4),
// from in-memory documents (deep-copied, the caller's copy is never mutated)
// or from a blobstore.BlobStore backend such as S3 or MinIO.
package cocoedit
