package codec

// NotamAction is the action bits (28-29) of a NOTAM-carrying extra_data
// field.
type NotamAction int

const (
	NotamActionNone NotamAction = iota
	NotamActionCancel
	NotamActionNew
	NotamActionReplace
)

// NotamTraffic is the traffic-type bits (4-6).
type NotamTraffic int

const (
	NotamTrafficMisc NotamTraffic = iota
	NotamTrafficIFR
	NotamTrafficVFR
	NotamTrafficIFRVFR
	NotamTrafficChecklist
)

// NotamScope is the scope bits (0-3).
type NotamScope int

const (
	NotamScopeUnknown NotamScope = iota
	NotamScopeAerodrome
	NotamScopeEnRoute
	NotamScopeAeroEnRoute
	NotamScopeNavWarning
	NotamScopeAeroNavWarning
	NotamScopeChecklist
)

// NotamCodes is the four five-bit alphabetic subject/action codes packed
// into bits 8-27 of extra_data.
type NotamCodes struct {
	SubjectFirst byte
	SubjectLast  byte
	ActionFirst  byte
	ActionLast   byte
}

// NotamPayload is the decoded view of extra_data when its top two bits
// (30-31) are zero, i.e. the field carries NOTAM metadata rather than an
// opaque payload.
type NotamPayload struct {
	Action  NotamAction
	Codes   NotamCodes
	Traffic NotamTraffic
	Scope   NotamScope
}

// ExtraData is the tagged view of an item's extra_data field: exactly one
// of Notam or Opaque is meaningful, selected by the raw field's
// discriminator bits. Raw is always preserved for round-trip regardless of
// which view applies.
type ExtraData struct {
	Raw   uint32
	Notam *NotamPayload
	// Opaque holds the raw value when the discriminator bits (30-31) are
	// nonzero; this payload is not interpreted by this codec.
	Opaque uint32
}

// decodeExtraData projects a raw extra_data field. Per §4.3, bits 30-31
// form a discriminator: zero with a nonzero field selects the NOTAM view,
// anything else is opaque.
func decodeExtraData(raw uint32) ExtraData {
	discriminator := (raw >> 30) & 0x03
	if discriminator != 0 || raw == 0 {
		return ExtraData{Raw: raw, Opaque: raw}
	}
	return ExtraData{
		Raw:   raw,
		Notam: decodeNotamPayload(raw),
	}
}

func decodeNotamPayload(raw uint32) *NotamPayload {
	action := NotamAction((raw >> 28) & 0x03)
	codes := NotamCodes{
		SubjectFirst: byte((raw >> 8) & 0x1F),
		SubjectLast:  byte((raw >> 13) & 0x1F),
		ActionFirst:  byte((raw >> 18) & 0x1F),
		ActionLast:   byte((raw >> 23) & 0x1F),
	}
	traffic := NotamTraffic((raw >> 4) & 0x07)
	scope := NotamScope(raw & 0x0F)
	return &NotamPayload{
		Action:  action,
		Codes:   codes,
		Traffic: traffic,
		Scope:   scope,
	}
}

// encodeExtraData rebuilds a raw extra_data field from a NotamPayload.
func encodeExtraData(p *NotamPayload) uint32 {
	var raw uint32
	raw |= uint32(p.Action&0x03) << 28
	raw |= uint32(p.Codes.SubjectFirst&0x1F) << 8
	raw |= uint32(p.Codes.SubjectLast&0x1F) << 13
	raw |= uint32(p.Codes.ActionFirst&0x1F) << 18
	raw |= uint32(p.Codes.ActionLast&0x1F) << 23
	raw |= uint32(p.Traffic&0x07) << 4
	raw |= uint32(p.Scope & 0x0F)
	return raw
}

// Valid reports whether all four five-bit letter fields fall in
// {1..26}; outside that range invalidates the NOTAM-codes view per §4.3.
func (c NotamCodes) Valid() bool {
	for _, v := range []byte{c.SubjectFirst, c.SubjectLast, c.ActionFirst, c.ActionLast} {
		if v < 1 || v > 26 {
			return false
		}
	}
	return true
}

// DecodeNotamCodes converts a validated NotamCodes into its four letters.
func DecodeNotamCodes(c NotamCodes) (subjectFirst, subjectLast, actionFirst, actionLast byte) {
	return 'A' + c.SubjectFirst - 1, 'A' + c.SubjectLast - 1, 'A' + c.ActionFirst - 1, 'A' + c.ActionLast - 1
}

// EncodeNotamCodes packs four letters (A-Z) into a NotamCodes.
func EncodeNotamCodes(subjectFirst, subjectLast, actionFirst, actionLast byte) NotamCodes {
	return NotamCodes{
		SubjectFirst: subjectFirst - 'A' + 1,
		SubjectLast:  subjectLast - 'A' + 1,
		ActionFirst:  actionFirst - 'A' + 1,
		ActionLast:   actionLast - 'A' + 1,
	}
}

// DaysActive is the 12-bit day/schedule flag set packed into bits 52-63 of
// active_time.
type DaysActive uint16

const (
	DaySunday DaysActive = 1 << iota
	DayMonday
	DayTuesday
	DayWednesday
	DayThursday
	DayFriday
	DaySaturday
	DayHolidays
	DayAUP
	DayIrregular
	DayByNotam
)

// ActiveTime is the decoded view of an item's active_time field.
type ActiveTime struct {
	Raw       uint64
	Days      DaysActive
	StartDate *uint32 // nil means "no start" (sentinel 0)
	EndDate   *uint32 // nil means "no end" (sentinel 0x3FFFFFF)
}

const endDateSentinel = 0x3FFFFFF

func decodeActiveTime(raw uint64) ActiveTime {
	days := DaysActive((raw >> 52) & 0x0FFF)
	start := uint32((raw >> 26) & 0x3FFFFFF)
	end := uint32(raw & 0x3FFFFFF)

	at := ActiveTime{Raw: raw, Days: days}
	if start != 0 {
		at.StartDate = &start
	}
	if end != endDateSentinel {
		at.EndDate = &end
	}
	return at
}

func encodeActiveTime(at ActiveTime) uint64 {
	start := uint32(0)
	if at.StartDate != nil {
		start = *at.StartDate
	}
	end := uint32(endDateSentinel)
	if at.EndDate != nil {
		end = *at.EndDate
	}
	var raw uint64
	raw |= uint64(at.Days&0x0FFF) << 52
	raw |= uint64(start&0x3FFFFFF) << 26
	raw |= uint64(end & 0x3FFFFFF)
	return raw
}
