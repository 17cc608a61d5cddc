package verifier

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	sheetsapi "google.golang.org/api/sheets/v4"
	"google.golang.org/api/googleapi"

	"github.com/sp0x/certd/search"
	"github.com/sp0x/certd/sheets/mocks"
	"github.com/sp0x/certd/table"
)

var (
	sheet1 = table.ID{Resource: "sheet-id", Name: "Sheet1"}
	sheet2 = table.ID{Resource: "sheet-id", Name: "Sheet2"}
	sheet3 = table.ID{Resource: "sheet-id", Name: "Sheet3"}
	other1 = table.ID{Resource: "other-id", Name: "Sheet1"}
)

var asha = table.NewRow("A100", "Asha", "Rahim", "Karima", "City College", "Web Design", "A+")

var _ = Describe("Verifier", func() {
	var (
		ctx     context.Context
		lister  *fakeLister
		fetcher *fakeFetcher
		v       *Verifier
		pauses  *[]time.Duration
	)

	BeforeEach(func() {
		ctx = context.Background()
		lister = &fakeLister{tables: map[string][]table.Info{
			"sheet-id": {{ID: sheet1}, {ID: sheet2}, {ID: sheet3}},
		}}
		fetcher = &fakeFetcher{rows: map[table.ID][]table.Row{
			sheet1: {table.NewRow("A099", "Babul"), asha},
			sheet2: {table.NewRow("A100", "Someone else")},
		}}
		opts := testOptions()
		opts.TablePause = 200 * time.Millisecond
		v, pauses = newTestVerifier(opts, lister, fetcher)
	})

	Context("searching", func() {
		It("should find a record case-insensitively", func() {
			record, err := v.Search(ctx, "  a100 ")
			Expect(err).ToNot(HaveOccurred())
			Expect(record.StudentName).To(Equal("Asha"))
			Expect(record.SourceTable).To(Equal("Sheet1"))
			Expect(record.Result).To(Equal("A+"))
		})

		It("should prefer the earlier table", func() {
			record, err := v.Search(ctx, "A100")
			Expect(err).ToNot(HaveOccurred())
			Expect(record.SourceTable).To(Equal(sheet1.Name))
		})

		It("should not match other cases when case sensitive", func() {
			opts := testOptions()
			opts.CaseSensitive = true
			v, _ = newTestVerifier(opts, lister, fetcher)
			_, err := v.Search(ctx, "a100")
			Expect(search.IsNotFound(err)).To(BeTrue())
		})

		It("should report how much was searched when nothing matches", func() {
			_, err := v.Search(ctx, "Z999")
			var notFound *search.NotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(notFound.Tables).To(Equal(2))
			Expect(notFound.Records).To(Equal(3))
		})

		It("should reject invalid keys without fetching", func() {
			_, err := v.Search(ctx, "   ")
			Expect(search.IsValidation(err)).To(BeTrue())
			Expect(fetcher.calls).To(BeEmpty())
		})

		It("should reject keys that are too short", func() {
			opts := testOptions()
			opts.MinKeyLength = 3
			v, _ = newTestVerifier(opts, lister, fetcher)
			_, err := v.Search(ctx, "A1")
			Expect(ErrorKind(err)).To(Equal(KindKeyTooShort))
			Expect(fetcher.calls).To(BeEmpty())
		})

		It("should fail on an empty dataset", func() {
			fetcher.rows = map[table.ID][]table.Row{}
			_, err := v.Search(ctx, "A100")
			Expect(err).To(MatchError(search.ErrEmptyDataset))
		})

		It("should use the cache between searches", func() {
			_, err := v.Search(ctx, "A100")
			Expect(err).ToNot(HaveOccurred())
			_, err = v.Search(ctx, "A099")
			Expect(err).ToNot(HaveOccurred())
			Expect(fetcher.calls).To(HaveLen(3))
		})

		It("should fetch again after invalidation", func() {
			_, _ = v.Search(ctx, "A100")
			v.Invalidate()
			_, _ = v.Search(ctx, "A100")
			Expect(fetcher.calls).To(HaveLen(6))
		})
	})

	Context("fetching", func() {
		It("should leave empty tables out and pause between tables", func() {
			set, err := v.FetchAll(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(set.Len()).To(Equal(2))
			_, found := set.Get(sheet3)
			Expect(found).To(BeFalse())
			Expect(*pauses).To(Equal([]time.Duration{200 * time.Millisecond, 200 * time.Millisecond}))
		})

		It("should read the resources in order", func() {
			opts := testOptions()
			opts.Resources = []string{"other-id", "sheet-id"}
			lister.tables["other-id"] = []table.Info{{ID: other1}}
			fetcher.rows[other1] = []table.Row{table.NewRow("A100", "From the other sheet")}
			v, _ = newTestVerifier(opts, lister, fetcher)

			record, err := v.Search(ctx, "A100")
			Expect(err).ToNot(HaveOccurred())
			Expect(record.StudentName).To(Equal("From the other sheet"))
			Expect(record.SourceResource).To(Equal("other-id"))
		})

		It("should fail as a whole and keep the error", func() {
			boom := errors.New("boom")
			fetcher.fail = map[table.ID]error{sheet2: boom}
			set, err := v.FetchAll(ctx)
			Expect(set).To(BeNil())
			Expect(errors.Is(err, boom)).To(BeTrue())
			Expect(v.LastError()).To(MatchError(err))
			Expect(fetcher.calls).To(Equal([]table.ID{sheet1, sheet2}))

			delete(fetcher.fail, sheet2)
			_, err = v.FetchAll(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(v.LastError()).To(BeNil())
		})

		It("should list the tables of all resources", func() {
			Expect(v.ListTables(ctx)).To(HaveLen(3))
		})

		It("should refresh the cache", func() {
			_, err := v.Refresh(ctx)
			Expect(err).ToNot(HaveOccurred())
			status := v.Status()
			Expect(status.Valid).To(BeTrue())
			Expect(status.Records).To(Equal(3))
			Expect(status.Tables).To(Equal(2))
		})
	})

	Context("over the sheets api", func() {
		var (
			ctrl *gomock.Controller
			api  *mocks.MockAPI
		)

		BeforeEach(func() {
			ctrl = gomock.NewController(GinkgoT())
			api = mocks.NewMockAPI(ctrl)
		})

		AfterEach(func() {
			ctrl.Finish()
		})

		It("should discover, page and search the tables", func() {
			api.EXPECT().Spreadsheet(gomock.Any(), "sheet-id").Return(&sheetsapi.Spreadsheet{
				Sheets: []*sheetsapi.Sheet{
					{Properties: &sheetsapi.SheetProperties{
						Title:          "Sheet1",
						GridProperties: &sheetsapi.GridProperties{RowCount: 3},
					}},
				},
			}, nil)
			api.EXPECT().Values(gomock.Any(), "sheet-id", "Sheet1!A2:G3").Return(&sheetsapi.ValueRange{
				Values: [][]interface{}{
					{"A099", "Babul"},
					{"A100", "Asha", "Rahim", "Karima", "City College", "Web Design", 4.5},
				},
			}, nil)

			v := NewWithAPI(testOptions(), api)
			record, err := v.Search(ctx, "a100")
			Expect(err).ToNot(HaveOccurred())
			Expect(record.StudentName).To(Equal("Asha"))
			Expect(record.Result).To(Equal("4.5"))
		})

		It("should report access problems", func() {
			api.EXPECT().Spreadsheet(gomock.Any(), "sheet-id").Return(nil, errors.New("offline"))
			api.EXPECT().Values(gomock.Any(), "sheet-id", "Sheet1!A2:G1001").
				Return(nil, &googleapi.Error{Code: http.StatusForbidden, Message: "The caller does not have permission"})

			v := NewWithAPI(testOptions(), api)
			_, err := v.Search(ctx, "A100")
			Expect(err).To(HaveOccurred())
			Expect(ErrorKind(err)).To(Equal(KindAccessDenied))
		})
	})
})
