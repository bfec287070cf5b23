package codec

import (
	"errors"
	"fmt"
)

// ErrInvalidMagic is returned when a file's magic bytes don't match
// 0x425543C2.
var ErrInvalidMagic = errors.New("cub: invalid magic bytes")

// ErrEncrypted is returned for files with is_secured != 0. The encryption
// scheme is undocumented; such files cannot be read.
var ErrEncrypted = errors.New("cub: file is encrypted")

// UnexpectedEOFError indicates the byte stream ran out while decoding a
// structure whose framing could not otherwise be recovered.
type UnexpectedEOFError struct {
	Context string
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("cub: unexpected end of file while reading %s", e.Context)
}

// InvalidPointFlagError is returned for a point-stream flag byte whose
// shape cannot be interpreted enough to know how many bytes to skip.
type InvalidPointFlagError struct {
	Flag byte
}

func (e *InvalidPointFlagError) Error() string {
	return fmt.Sprintf("cub: invalid point record flag 0x%02X", e.Flag)
}

// Warning is a non-fatal deviation from the documented format observed
// while decoding. Warnings accumulate in the caller's result; decoding
// always continues past them.
type Warning interface {
	error
}

// InvalidEnumValueWarning reports a field whose raw value fell outside its
// documented domain. The decoder substitutes Fallback and continues.
type InvalidEnumValueWarning struct {
	Field    string
	Raw      uint32
	Fallback string
}

func (w *InvalidEnumValueWarning) Error() string {
	return fmt.Sprintf("cub: field %s has invalid value %d, using %s", w.Field, w.Raw, w.Fallback)
}

// OversizedRecordWarning reports a declared stride below the documented
// minimum. The decoder proceeds as if the stride equals Minimum.
type OversizedRecordWarning struct {
	Declared int32
	Minimum  int32
}

func (w *OversizedRecordWarning) Error() string {
	return fmt.Sprintf("cub: declared size %d below minimum %d, using minimum", w.Declared, w.Minimum)
}

// UnknownRecordWarning reports an unrecognized flag byte inside a point
// stream. The record is skipped using the header's declared point stride.
type UnknownRecordWarning struct {
	Flag byte
}

func (w *UnknownRecordWarning) Error() string {
	return fmt.Sprintf("cub: unknown point record flag 0x%02X, skipped", w.Flag)
}

// UnknownOptionalDataWarning reports an optional-data record whose data-id
// byte doesn't match any documented variant. The remainder of the
// optional-data run is abandoned conservatively.
type UnknownOptionalDataWarning struct {
	ID byte
}

func (w *UnknownOptionalDataWarning) Error() string {
	return fmt.Sprintf("cub: unknown optional-data id %d, abandoning run", w.ID)
}

// TruncatedDataWarning reports a declared length that overruns the
// available bytes, but from which the decoder could still recover.
type TruncatedDataWarning struct {
	Context string
}

func (w *TruncatedDataWarning) Error() string {
	return fmt.Sprintf("cub: truncated data while reading %s", w.Context)
}

// RepeatedAttributesWarning reports two attribute sequences appearing
// back-to-back with no intervening geometry record. Per the format's
// documentation this case is unspecified; the decoder overwrites the
// name/frequency and appends to the optional-data list.
type RepeatedAttributesWarning struct{}

func (w *RepeatedAttributesWarning) Error() string {
	return "cub: attribute sequence without intervening point, merging conservatively"
}
