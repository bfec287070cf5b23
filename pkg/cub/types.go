// Package cub provides a public API for reading and writing CUB airspace
// files: a binary format storing polygonal airspaces with altitude bands,
// classifications, schedules, and optional navigation attributes.
package cub

import "github.com/Turbo87/seeyou-cub/internal/codec"

// Bounds is a geographic bounding box in radians.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// Header exposes the file-level metadata of a CUB file.
type Header struct {
	Title      string
	CRC32      uint32
	Bounds     Bounds
	CoordScale float32
	ItemCount  int32
	MaxPoints  int32
}

// Style identifies an airspace's regulatory kind.
type Style = codec.Style

// Class is the ICAO airspace class A-G.
type Class = codec.Class

// AltStyle is an altitude reference (AGL, MSL, flight level, ...).
type AltStyle = codec.AltStyle

// ExtendedType refines an item's classification beyond Style/Class.
type ExtendedType = codec.ExtendedType

// NotamPayload is the decoded NOTAM sub-view of an item's extra_data
// field, present only when the discriminator bits permit it.
type NotamPayload = codec.NotamPayload

// NotamCodes is the four-letter subject/action code quartet of a NOTAM.
type NotamCodes = codec.NotamCodes

// DaysActive is the day-of-week/schedule flag set.
type DaysActive = codec.DaysActive

// Point is one geometry record of an item's point stream.
type Point = codec.Point

// Frequency is a radio frequency attribute attached to a point.
type Frequency = codec.Frequency

// OptionalData is the tagged-union family of optional-data records
// attached to a point (ICAO code, secondary frequency, NOTAM remarks, ...).
type OptionalData = codec.OptionalData

// Re-exported optional-data and enum constructors/constants so callers
// never need to import internal/codec directly.
type (
	ICAOCode           = codec.ICAOCode
	SecondaryFrequency = codec.SecondaryFrequency
	ExceptionRules     = codec.ExceptionRules
	NotamRemarks       = codec.NotamRemarks
	NotamIdentifier    = codec.NotamIdentifier
	NotamInsertTime    = codec.NotamInsertTime
)

const (
	StyleUnknown    = codec.StyleUnknown
	StyleCTR        = codec.StyleCTR
	StyleTMA        = codec.StyleTMA
	StyleRestricted = codec.StyleRestricted
	StyleProhibited = codec.StyleProhibited
	StyleDanger     = codec.StyleDanger
)

const (
	ClassUnknown = codec.ClassUnknown
	ClassA       = codec.ClassA
	ClassB       = codec.ClassB
	ClassC       = codec.ClassC
	ClassD       = codec.ClassD
	ClassE       = codec.ClassE
	ClassF       = codec.ClassF
	ClassG       = codec.ClassG
)

const (
	AltStyleUnknown   = codec.AltStyleUnknown
	AltStyleAGL       = codec.AltStyleAGL
	AltStyleMSL       = codec.AltStyleMSL
	AltStyleFL        = codec.AltStyleFL
	AltStyleUnlimited = codec.AltStyleUnlimited
	AltStyleNotam     = codec.AltStyleNotam
)

// Item is the ergonomic view of a decoded item-table record: the raw
// bit-packed fields projected into named accessors, plus everything needed
// to stream its point data.
type Item struct {
	inner *codec.Item

	Bounds           Bounds
	MinAlt, MaxAlt   int16
	TimeOut          int32
	ExtendedTypeByte byte
}

// Style returns the decoded regulatory style.
func (it *Item) Style() Style { return it.inner.Style() }

// Class returns the decoded ICAO airspace class.
func (it *Item) Class() Class { return it.inner.Class() }

// MinAltStyle returns the altitude reference for MinAlt, appending any
// InvalidEnumValue warning encountered to warnings.
func (it *Item) MinAltStyle(warnings *[]error) AltStyle {
	var w []codec.Warning
	style := it.inner.MinAltStyle(&w)
	appendWarnings(warnings, w)
	return style
}

// MaxAltStyle returns the altitude reference for MaxAlt, appending any
// InvalidEnumValue warning encountered to warnings.
func (it *Item) MaxAltStyle(warnings *[]error) AltStyle {
	var w []codec.Warning
	style := it.inner.MaxAltStyle(&w)
	appendWarnings(warnings, w)
	return style
}

// ExtendedType returns the decoded extended classification.
func (it *Item) ExtendedType() ExtendedType { return it.inner.ExtendedType() }

// Notam returns the NOTAM sub-view of extra_data, or nil when the
// discriminator bits mark the field as an opaque payload.
func (it *Item) Notam() *NotamPayload { return it.inner.ExtraData().Notam }

// DaysActive returns the schedule flag set packed into active_time.
func (it *Item) DaysActive() DaysActive { return it.inner.ActiveTime().Days }

// StartDate returns the raw encoded-minute start timestamp, or nil when
// active_time's sentinel marks "no start".
func (it *Item) StartDate() *uint32 { return it.inner.ActiveTime().StartDate }

// EndDate returns the raw encoded-minute end timestamp, or nil when
// active_time's sentinel marks "no end".
func (it *Item) EndDate() *uint32 { return it.inner.ActiveTime().EndDate }
