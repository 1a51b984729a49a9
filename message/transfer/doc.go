// Package transfer contains utilities for applying Content-transfer-encoding
// to message bodies being written out. Only the quoted-printable and base64
// encodings actually transform the bytes. Other settings such as 7bit, 8bit,
// or binary leave the bytes as-is.
//
// The Select function implements the encoding policy used when resolving
// attachments and body parts: payloads that are already 7bit-safe are left
// alone, mostly-textual payloads get quoted-printable, and everything else
// gets base64.
package transfer
