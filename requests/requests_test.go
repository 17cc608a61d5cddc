package requests

import (
	"compress/gzip"
	"crypto/x509"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/onsi/gomega"
)

func TestNewClient_ShouldSendKeyAndHeaders(t *testing.T) {
	g := gomega.NewWithT(t)
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write([]byte(`{"ok":true}`))
		_ = gz.Close()
	}))
	defer srv.Close()

	client := NewClient("secret", 5*time.Second)
	res, err := client.Get(srv.URL + "/v4/spreadsheets/id?fields=sheets.properties")
	g.Expect(err).To(gomega.BeNil())
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)

	g.Expect(string(body)).To(gomega.Equal(`{"ok":true}`))
	g.Expect(got.URL.Query().Get("key")).To(gomega.Equal("secret"))
	g.Expect(got.URL.Query().Get("fields")).To(gomega.Equal("sheets.properties"))
	g.Expect(got.Header.Get("User-Agent")).To(gomega.Equal(userAgent))
	g.Expect(got.Header.Get("Accept-Encoding")).To(gomega.ContainSubstring("gzip"))
}

func TestNewClient_WithoutKey(t *testing.T) {
	g := gomega.NewWithT(t)
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
	}))
	defer srv.Close()

	res, err := NewClient("", time.Second).Get(srv.URL)
	g.Expect(err).To(gomega.BeNil())
	_ = res.Body.Close()
	g.Expect(query).To(gomega.BeEmpty())
}

func TestNewTransport_ShouldNegotiateHTTP2(t *testing.T) {
	g := gomega.NewWithT(t)
	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Proto))
	}))
	srv.EnableHTTP2 = true
	srv.StartTLS()
	defer srv.Close()

	tr := newTransport().(*http.Transport)
	pool := x509.NewCertPool()
	pool.AddCert(srv.Certificate())
	tr.TLSClientConfig.RootCAs = pool

	res, err := (&http.Client{Transport: tr}).Get(srv.URL)
	g.Expect(err).To(gomega.BeNil())
	defer res.Body.Close()
	g.Expect(res.ProtoMajor).To(gomega.Equal(2))
}
