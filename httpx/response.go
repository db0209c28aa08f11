package httpx

import (
	"bytes"
	"html/template"
	"net/http"
)

type ResponseBuffer interface {
	http.ResponseWriter
	Status() int
	Body() []byte
	Flush(w http.ResponseWriter) error
}

type responseBuffer struct {
	status int
	header http.Header
	body   bytes.Buffer
}

func NewResponseBuffer() ResponseBuffer {
	return &responseBuffer{}
}

func (resp *responseBuffer) Status() int {
	if resp.status == 0 {
		return http.StatusOK
	}
	return resp.status
}

func (resp *responseBuffer) Header() http.Header {
	if resp.header == nil {
		resp.header = http.Header{}
	}
	return resp.header
}

func (resp *responseBuffer) Body() []byte {
	return resp.body.Bytes()
}

func (resp *responseBuffer) Write(body []byte) (int, error) {
	return resp.body.Write(body)
}

func (resp *responseBuffer) WriteHeader(statusCode int) {
	resp.status = statusCode
}

func (resp *responseBuffer) Flush(w http.ResponseWriter) error {
	header := w.Header()
	for key, value := range resp.header {
		header[key] = value
	}
	w.WriteHeader(resp.Status())
	_, err := w.Write(resp.body.Bytes())
	return err
}

// Will execute the named template into a buffer and send it with the given status.
// A failing template never leaves a half-written page behind.
func Render(w http.ResponseWriter, status int, t *template.Template, name string, data any) {
	buf := NewResponseBuffer()
	buf.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteHeader(status)
	if err := t.ExecuteTemplate(buf, name, data); err != nil {
		LogInternalError(w, "httpx.render."+name, err)
		return
	}
	buf.Flush(w)
}
