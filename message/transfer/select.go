package transfer

// Select picks a Content-transfer-encoding for the given payload.
//
// Payloads made only of printable ASCII, tabs, and line breaks need no
// encoding at all. Payloads that are otherwise textual but contain bytes
// outside that range (say, UTF-8 text) are best served by quoted-printable.
// Anything containing NUL or other control bytes is treated as binary and
// gets base64.
func Select(payload []byte) string {
	var high int
	for _, b := range payload {
		switch {
		case b == '\t' || b == '\r' || b == '\n':
			// fine anywhere
		case b < 0x20 || b == 0x7f:
			return Base64
		case b > 0x7e:
			high++
		}
	}

	if high == 0 {
		return None
	}
	return QuotedPrintable
}
