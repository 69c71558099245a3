// Package s3 implements blobstore.BlobStore for Amazon S3.
package s3
