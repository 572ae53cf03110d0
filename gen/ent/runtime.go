// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Volpestyle/paystub-extractor/db/ent/schema"
	"github.com/Volpestyle/paystub-extractor/gen/ent/extractjob"
	"github.com/Volpestyle/paystub-extractor/gen/ent/paystub"
	"github.com/Volpestyle/paystub-extractor/gen/ent/paystubfile"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[3].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[4].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[9].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	paystubFields := schema.Paystub{}.Fields()
	_ = paystubFields
	// paystubDescProvider is the schema descriptor for provider field.
	paystubDescProvider := paystubFields[2].Descriptor()
	// paystub.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	paystub.ProviderValidator = paystubDescProvider.Validators[0].(func(string) error)
	// paystubDescCurrencyCode is the schema descriptor for currency_code field.
	paystubDescCurrencyCode := paystubFields[7].Descriptor()
	// paystub.DefaultCurrencyCode holds the default value on creation for the currency_code field.
	paystub.DefaultCurrencyCode = paystubDescCurrencyCode.Default.(string)
	// paystubDescPayFrequency is the schema descriptor for pay_frequency field.
	paystubDescPayFrequency := paystubFields[11].Descriptor()
	// paystub.DefaultPayFrequency holds the default value on creation for the pay_frequency field.
	paystub.DefaultPayFrequency = paystubDescPayFrequency.Default.(string)
	// paystubDescCreatedAt is the schema descriptor for created_at field.
	paystubDescCreatedAt := paystubFields[18].Descriptor()
	// paystub.DefaultCreatedAt holds the default value on creation for the created_at field.
	paystub.DefaultCreatedAt = paystubDescCreatedAt.Default.(func() time.Time)
	// paystubDescID is the schema descriptor for id field.
	paystubDescID := paystubFields[0].Descriptor()
	// paystub.DefaultID holds the default value on creation for the id field.
	paystub.DefaultID = paystubDescID.Default.(func() uuid.UUID)
	paystubfileFields := schema.PaystubFile{}.Fields()
	_ = paystubfileFields
	// paystubfileDescSourcePath is the schema descriptor for source_path field.
	paystubfileDescSourcePath := paystubfileFields[1].Descriptor()
	// paystubfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	paystubfile.SourcePathValidator = paystubfileDescSourcePath.Validators[0].(func(string) error)
	// paystubfileDescContentHash is the schema descriptor for content_hash field.
	paystubfileDescContentHash := paystubfileFields[2].Descriptor()
	// paystubfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	paystubfile.ContentHashValidator = paystubfileDescContentHash.Validators[0].(func([]byte) error)
	// paystubfileDescFilename is the schema descriptor for filename field.
	paystubfileDescFilename := paystubfileFields[3].Descriptor()
	// paystubfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	paystubfile.FilenameValidator = paystubfileDescFilename.Validators[0].(func(string) error)
	// paystubfileDescFileExt is the schema descriptor for file_ext field.
	paystubfileDescFileExt := paystubfileFields[4].Descriptor()
	// paystubfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	paystubfile.FileExtValidator = paystubfileDescFileExt.Validators[0].(func(string) error)
	// paystubfileDescContentType is the schema descriptor for content_type field.
	paystubfileDescContentType := paystubfileFields[5].Descriptor()
	// paystubfile.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	paystubfile.ContentTypeValidator = paystubfileDescContentType.Validators[0].(func(string) error)
	// paystubfileDescFileSize is the schema descriptor for file_size field.
	paystubfileDescFileSize := paystubfileFields[6].Descriptor()
	// paystubfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	paystubfile.FileSizeValidator = paystubfileDescFileSize.Validators[0].(func(int) error)
	// paystubfileDescUploadedAt is the schema descriptor for uploaded_at field.
	paystubfileDescUploadedAt := paystubfileFields[7].Descriptor()
	// paystubfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	paystubfile.DefaultUploadedAt = paystubfileDescUploadedAt.Default.(func() time.Time)
	// paystubfileDescID is the schema descriptor for id field.
	paystubfileDescID := paystubfileFields[0].Descriptor()
	// paystubfile.DefaultID holds the default value on creation for the id field.
	paystubfile.DefaultID = paystubfileDescID.Default.(func() uuid.UUID)
}
