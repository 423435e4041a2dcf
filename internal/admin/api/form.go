package api

import (
	"bytes"
	"io"
	"mime/multipart"
)

type formField struct {
	name  string
	value string
}

type formFile struct {
	field    string
	fileName string
	reader   io.Reader
}

// Form builds a multipart request body: ordered text fields plus at most
// one binary file part. Multipart is used for every create/update carrying
// a thumbnail, and the API accepts it for plain-field writes too.
type Form struct {
	fields []formField
	file   *formFile
}

func NewForm() *Form {
	return &Form{}
}

// Set appends a text field.
func (f *Form) Set(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// File attaches the binary part under the given field name.
func (f *Form) File(field, fileName string, r io.Reader) *Form {
	f.file = &formFile{field: field, fileName: fileName, reader: r}
	return f
}

// Encode renders the multipart body and its Content-Type header value.
func (f *Form) Encode() (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, fld := range f.fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return nil, "", err
		}
	}
	if f.file != nil {
		part, err := w.CreateFormFile(f.file.field, f.file.fileName)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.file.reader); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
