package codec

// Style identifies an airspace's regulatory kind, projected from the low
// nibble plus high bit of an item's type_byte.
type Style int

const (
	StyleUnknown Style = iota
	StyleRestricted
	StyleProhibited
	StyleDanger
	StyleNationalPark
	StyleModelFlyingArea
	StyleTMZ
	StyleTFR
	StyleWaveWindow
	StyleClassATrafficZone
	StyleClassBTrafficZone
	StyleClassCTrafficZone
	StyleClassDTrafficZone
	StyleNoGliderSite
	StyleWaveBox
	StyleOther
	StyleGliderProhibited
	StyleCTR
	StyleTMA
	StyleGsec
	StyleCTA
	StyleAirway
	StyleIntlBorder
	StyleVFRGliding
	StyleFIS
	StyleLowerATS
	StyleBufferFIR
	StyleASR
	StyleTIAFIR
	StyleReserved29
	StyleReserved30
	StyleReserved31
)

// styleTable maps the composite key — (type_byte & 0x0F) | (type_byte &
// 0x80) — to a Style. Keys 0x00..0x0F and 0x80..0x8F are both
// represented, so every one of the 32 values the key can take has an
// entry.
var styleTable = map[byte]Style{
	0x00: StyleUnknown,
	0x01: StyleRestricted,
	0x02: StyleProhibited,
	0x03: StyleDanger,
	0x04: StyleNationalPark,
	0x05: StyleModelFlyingArea,
	0x06: StyleTMZ,
	0x07: StyleTFR,
	0x08: StyleWaveWindow,
	0x09: StyleClassATrafficZone,
	0x0A: StyleClassBTrafficZone,
	0x0B: StyleClassCTrafficZone,
	0x0C: StyleClassDTrafficZone,
	0x0D: StyleNoGliderSite,
	0x0E: StyleWaveBox,
	0x0F: StyleOther,
	0x80: StyleGliderProhibited,
	0x81: StyleCTR,
	0x82: StyleTMA,
	0x83: StyleGsec,
	0x84: StyleCTA,
	0x85: StyleAirway,
	0x86: StyleIntlBorder,
	0x87: StyleVFRGliding,
	0x88: StyleFIS,
	0x89: StyleLowerATS,
	0x8A: StyleBufferFIR,
	0x8B: StyleASR,
	0x8C: StyleTIAFIR,
	0x8D: StyleReserved29,
	0x8E: StyleReserved30,
	0x8F: StyleReserved31,
}

// decodeStyle projects type_byte's style key. Key 0x00 decodes to
// StyleUnknown; the fallback for a key missing from styleTable also
// returns StyleUnknown, silently, without a warning.
func decodeStyle(typeByte byte) Style {
	key := (typeByte & 0x0F) | (typeByte & 0x80)
	if s, ok := styleTable[key]; ok {
		return s
	}
	return StyleUnknown
}

func encodeStyle(s Style) byte {
	for k, v := range styleTable {
		if v == s {
			return k
		}
	}
	return 0x00
}

// Class is the ICAO airspace class, projected from bits 4-6 of type_byte.
type Class int

const (
	ClassUnknown Class = iota
	ClassA
	ClassB
	ClassC
	ClassD
	ClassE
	ClassF
	ClassG
)

func decodeClass(typeByte byte) Class {
	c := Class((typeByte >> 4) & 0x07)
	if c > ClassG {
		return ClassUnknown
	}
	return c
}

func encodeClass(c Class) byte {
	return byte(c&0x07) << 4
}

// AltStyle is an altitude reference, decoded from one nibble of
// alt_style_byte.
type AltStyle int

const (
	AltStyleUnknown AltStyle = iota
	AltStyleAGL
	AltStyleMSL
	AltStyleFL
	AltStyleUnlimited
	AltStyleNotam
)

func decodeAltStyle(nibble byte, field string, warnings *[]Warning) AltStyle {
	switch nibble {
	case 0:
		return AltStyleUnknown
	case 1:
		return AltStyleAGL
	case 2:
		return AltStyleMSL
	case 3:
		return AltStyleFL
	case 4:
		return AltStyleUnlimited
	case 5:
		return AltStyleNotam
	default:
		*warnings = append(*warnings, &InvalidEnumValueWarning{Field: field, Raw: uint32(nibble), Fallback: "unknown"})
		return AltStyleUnknown
	}
}

func encodeAltStyle(a AltStyle) byte {
	switch a {
	case AltStyleAGL:
		return 1
	case AltStyleMSL:
		return 2
	case AltStyleFL:
		return 3
	case AltStyleUnlimited:
		return 4
	case AltStyleNotam:
		return 5
	default:
		return 0
	}
}

// ExtendedType refines an item's classification beyond Style/Class. Zero
// means "none"; any other byte maps to one of these values, defaulting to
// ExtendedTypeUnknown for unmapped bytes.
type ExtendedType int

const (
	ExtendedTypeNone ExtendedType = iota
	ExtendedTypeUnknown
	ExtendedTypeGliderSite
	ExtendedTypeMicrolightSite
	ExtendedTypeParaglidingSite
	ExtendedTypeHangGlidingSite
	ExtendedTypeBalloonSite
)

var extendedTypeTable = map[byte]ExtendedType{
	0x00: ExtendedTypeNone,
	0x01: ExtendedTypeGliderSite,
	0x02: ExtendedTypeMicrolightSite,
	0x03: ExtendedTypeParaglidingSite,
	0x04: ExtendedTypeHangGlidingSite,
	0x05: ExtendedTypeBalloonSite,
}

func decodeExtendedType(b byte) ExtendedType {
	if t, ok := extendedTypeTable[b]; ok {
		return t
	}
	return ExtendedTypeUnknown
}

func encodeExtendedType(t ExtendedType) byte {
	for k, v := range extendedTypeTable {
		if v == t {
			return k
		}
	}
	return 0x00
}

func (s Style) String() string {
	switch s {
	case StyleRestricted:
		return "restricted"
	case StyleProhibited:
		return "prohibited"
	case StyleDanger:
		return "danger"
	case StyleNationalPark:
		return "national-park"
	case StyleModelFlyingArea:
		return "model-flying-area"
	case StyleTMZ:
		return "tmz"
	case StyleTFR:
		return "tfr"
	case StyleWaveWindow:
		return "wave-window"
	case StyleClassATrafficZone:
		return "class-a-traffic-zone"
	case StyleClassBTrafficZone:
		return "class-b-traffic-zone"
	case StyleClassCTrafficZone:
		return "class-c-traffic-zone"
	case StyleClassDTrafficZone:
		return "class-d-traffic-zone"
	case StyleNoGliderSite:
		return "no-glider-site"
	case StyleWaveBox:
		return "wave-box"
	case StyleOther:
		return "other"
	case StyleGliderProhibited:
		return "glider-prohibited"
	case StyleCTR:
		return "ctr"
	case StyleTMA:
		return "tma"
	case StyleGsec:
		return "gsec"
	case StyleCTA:
		return "cta"
	case StyleAirway:
		return "airway"
	case StyleIntlBorder:
		return "international-border"
	case StyleVFRGliding:
		return "vfr-gliding-sector"
	case StyleFIS:
		return "fis"
	case StyleLowerATS:
		return "lower-ats"
	case StyleBufferFIR:
		return "buffer-fir"
	case StyleASR:
		return "asr"
	case StyleTIAFIR:
		return "tia-fir"
	default:
		return "unknown"
	}
}

func (c Class) String() string {
	switch c {
	case ClassA, ClassB, ClassC, ClassD, ClassE, ClassF, ClassG:
		return string(rune('A' - 1 + int(c)))
	default:
		return "unknown"
	}
}

func (a AltStyle) String() string {
	switch a {
	case AltStyleAGL:
		return "agl"
	case AltStyleMSL:
		return "msl"
	case AltStyleFL:
		return "flight-level"
	case AltStyleUnlimited:
		return "unlimited"
	case AltStyleNotam:
		return "notam"
	default:
		return "unknown"
	}
}

func (t ExtendedType) String() string {
	switch t {
	case ExtendedTypeNone:
		return "none"
	case ExtendedTypeGliderSite:
		return "glider-site"
	case ExtendedTypeMicrolightSite:
		return "microlight-site"
	case ExtendedTypeParaglidingSite:
		return "paragliding-site"
	case ExtendedTypeHangGlidingSite:
		return "hang-gliding-site"
	case ExtendedTypeBalloonSite:
		return "balloon-site"
	default:
		return "unknown"
	}
}
