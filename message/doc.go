// Package message provides the MIME part tree used to build outgoing email
// messages. A message is either an Opaque, which pairs a header with a body
// treated as a plain io.Reader, or a Multipart, which pairs a header with a
// list of sub-parts. Multiparts nest, so a complete message with alternative
// bodies, inline resources, and attachments is just a tree of these two
// objects.
//
// Messages serialize with WriteTo. An Opaque applies the header's
// Content-transfer-encoding to its body as it writes. A Multipart writes each
// sub-part delimited by its boundary. WriteTo may only be called once per
// message because it consumes the body readers.
package message
