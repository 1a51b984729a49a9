// Package compose turns the logical pieces of an email, such as body text,
// HTML with inline images, embedded tables, and attachments, into a MIME part
// tree ready for delivery.
//
// The pieces collect on an Assembly: body variants (TextBody, HTMLBody)
// render their content through a templates.Store and attach the finished
// parts, inline images register on a Registry that hands out stable content
// identifiers, and attachment sources resolve into encoded payloads. The
// Assembly then builds the tree: multipart/mixed around the attachments,
// multipart/alternative around the text and HTML renditions, and
// multipart/related around the HTML and its inline resources, nesting only
// the layers the message actually needs.
//
// All composition is eager: any failed render or resolution aborts the whole
// assembly before anything touches a transport.
package compose
