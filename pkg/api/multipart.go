package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sort"
	"strings"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

type File struct {
	Field    string
	FileName string
	Mime     string
	Data     []byte
}

// Multipart is a multipart/form-data body. Fields are written in key order
// so that the encoded body is stable.
type Multipart struct {
	Fields map[string]string
	Files  []File
}

func (m Multipart) ToReader() (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	keys := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := w.WriteField(k, m.Fields[k]); err != nil {
			return nil, "", err
		}
	}

	for _, f := range m.Files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(f.Field), quoteEscaper.Replace(f.FileName)))
		if f.Mime != "" {
			header.Set("Content-Type", f.Mime)
		} else {
			header.Set("Content-Type", "application/octet-stream")
		}

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", err
		}

		if _, err := part.Write(f.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf, w.FormDataContentType(), nil
}
