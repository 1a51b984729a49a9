// Package courier composes and delivers email. It is built around a Sender,
// which holds the delivery transport, the template stores, and a set of
// defaults, and composes each outgoing Message into a full MIME tree.
//
// A Message describes content logically: a subject, addresses, text and HTML
// bodies (inline or named templates), tables to render into both bodies,
// images to embed inline in the HTML rendition, and attachments. Compose
// turns that description into a message.Generic ready to be written out or
// handed to a transport; Send does both.
//
// The supporting packages are usable on their own: message models the MIME
// tree itself, table renders grouped tabular data, templates abstracts over
// template engines, compose holds the assembly machinery, and transport
// holds the delivery backends.
package courier
