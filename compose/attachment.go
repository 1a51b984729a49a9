package compose

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/zostay/go-courier/message"
	"github.com/zostay/go-courier/message/transfer"
	"github.com/zostay/go-courier/table"
)

// Attachment is a fully resolved attachment: a payload, the content type
// inferred for it, and the transfer encoding it will be written with. It is
// derived once per composed message from a Source and is not shared.
type Attachment struct {
	Filename  string
	MediaType string
	Encoding  string
	Payload   []byte
}

// Source is a logical attachment input. The concrete types are Bytes, Text,
// File, and TableData.
type Source interface {
	resolve(filename string) (*Attachment, error)
}

// Resolve turns a logical attachment input into an Attachment carrying the
// payload bytes, the media type inferred from the target filename, and a
// transfer encoding chosen from the payload content.
func Resolve(filename string, src Source) (*Attachment, error) {
	return src.resolve(filename)
}

// Bytes attaches a raw byte payload.
type Bytes []byte

func (b Bytes) resolve(filename string) (*Attachment, error) {
	return &Attachment{
		Filename:  filename,
		MediaType: MediaTypeFor(filename),
		Encoding:  transfer.Select(b),
		Payload:   b,
	}, nil
}

// Text attaches a text payload.
type Text string

func (t Text) resolve(filename string) (*Attachment, error) {
	return Bytes(t).resolve(filename)
}

// File attaches the contents of the referenced file. The file is read in
// full when the attachment is resolved; an unreadable file fails the whole
// composition with a ReadError.
type File string

func (f File) resolve(filename string) (*Attachment, error) {
	payload, err := os.ReadFile(string(f))
	if err != nil {
		return nil, &ReadError{Filename: filename, Path: string(f), Err: err}
	}
	return Bytes(payload).resolve(filename)
}

// TableData attaches tabular data serialized according to the target
// filename's extension. Extensions with no defined tabular serialization
// fail with UnsupportedFormatError.
type TableData struct {
	Table *table.Table
}

func (td TableData) resolve(filename string) (*Attachment, error) {
	var buf bytes.Buffer

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		if err := table.WriteCSV(&buf, td.Table); err != nil {
			return nil, err
		}
	case ".tsv":
		if err := table.WriteTSV(&buf, td.Table); err != nil {
			return nil, err
		}
	case ".json":
		if err := table.WriteJSON(&buf, td.Table); err != nil {
			return nil, err
		}
	case ".md":
		if err := table.WriteMarkdown(&buf, td.Table); err != nil {
			return nil, err
		}
	case ".html", ".htm":
		r := table.HTMLRenderer{Theme: table.Modest}
		frag, err := r.Render(td.Table, nil)
		if err != nil {
			return nil, err
		}
		buf.WriteString(frag)
	case ".txt":
		r := table.TextRenderer{}
		text, err := r.Render(td.Table, nil)
		if err != nil {
			return nil, err
		}
		buf.WriteString(text)
	default:
		return nil, &UnsupportedFormatError{Filename: filename, Ext: ext}
	}

	return Bytes(buf.Bytes()).resolve(filename)
}

// Part builds the MIME leaf for this attachment.
func (a *Attachment) Part() *message.Opaque {
	m := &message.Opaque{Reader: bytes.NewReader(a.Payload)}
	m.SetMediaType(a.MediaType)
	m.SetPresentation("attachment")
	m.SetFilename(a.Filename)
	if a.Encoding != transfer.None {
		m.SetTransferEncoding(a.Encoding)
	}
	return m
}
