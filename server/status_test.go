package server

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/onsi/gomega"

	"github.com/sp0x/certd/cache"
)

func TestServer_Status(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	s, searcher := newTestServer(t, Params{})
	searcher.EXPECT().Status().Return(cache.Status{
		Valid:     true,
		FetchedAt: time.Now().Add(-2 * time.Minute),
		TTL:       5 * time.Minute,
		Tables:    1,
		Records:   10,
		PerTable:  []cache.TableStatus{{Table: "Sheet1", Records: 10}},
	})
	searcher.EXPECT().LastError().Return(nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	s.Status(c)

	g.Expect(w.Code).To(gomega.BeEquivalentTo(200))
	var got statusResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	if err != nil {
		t.Fatal(err)
	}
	g.Expect(got.Valid).To(gomega.BeTrue())
	g.Expect(got.Age).To(gomega.Equal("2 minutes ago"))
	g.Expect(got.TTL).To(gomega.Equal("5m0s"))
	g.Expect(got.PerTable).To(gomega.HaveLen(1))
	g.Expect(got.LastError).To(gomega.BeEmpty())
}

func TestServer_StatusEmpty(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	s, searcher := newTestServer(t, Params{})
	searcher.EXPECT().Status().Return(cache.Status{TTL: time.Minute})
	searcher.EXPECT().LastError().Return(nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	s.Status(c)

	var got statusResponse
	g.Expect(json.Unmarshal(w.Body.Bytes(), &got)).To(gomega.Succeed())
	g.Expect(got.Valid).To(gomega.BeFalse())
	g.Expect(got.FetchedAt).To(gomega.BeNil())
	g.Expect(got.Age).To(gomega.BeEmpty())
}
