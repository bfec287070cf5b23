package codec

// EncodedMinute is the 26-bit mixed-radix timestamp used by active_time's
// start/end fields and by the NOTAM insert-time optional-data record. It
// decomposes as minute(60)·hour(24)·day(31)·month(12)·year(+2000); day and
// month are stored zero-based on the wire.
type EncodedMinute uint32

// DecodeEncodedMinute peels the mixed-radix value apart in wire order,
// returning 1-based day/month and a full (2000+) year.
func DecodeEncodedMinute(v EncodedMinute) (year, month, day, hour, minute int) {
	x := uint32(v)
	minute = int(x % 60)
	x /= 60
	hour = int(x % 24)
	x /= 24
	day = int(x%31) + 1
	x /= 31
	month = int(x%12) + 1
	x /= 12
	year = int(x) + 2000
	return
}

// EncodeEncodedMinute composes the mixed-radix value from civil fields.
// year must be >= 2000; month in [1,12]; day in [1,31]; hour in [0,23];
// minute in [0,59].
func EncodeEncodedMinute(year, month, day, hour, minute int) EncodedMinute {
	x := uint32(year - 2000)
	x = x*12 + uint32(month-1)
	x = x*31 + uint32(day-1)
	x = x*24 + uint32(hour)
	x = x*60 + uint32(minute)
	return EncodedMinute(x)
}
