package search

import (
	"testing"

	"github.com/onsi/gomega"

	"github.com/sp0x/certd/table"
)

func singleTableSet() *table.Set {
	set := table.NewSet()
	set.Put(&table.Table{
		ID: table.ID{Resource: "res", Name: "Sheet1"},
		Rows: []table.Row{
			table.NewRow("A100", "Asha", "Father A", "Mother A", "Inst", "Course", "Pass"),
			table.NewRow("A101", "Bimal", "Father B", "Mother B", "Inst", "Course", "Fail"),
		},
	})
	return set
}

func TestFindByKey_CaseInsensitive(t *testing.T) {
	g := gomega.NewWithT(t)
	m, found := FindByKey(singleTableSet(), "a100", Matcher{CaseSensitive: false})
	g.Expect(found).To(gomega.BeTrue())
	g.Expect(m.Row[table.ColumnName]).To(gomega.Equal("Asha"))
	g.Expect(m.Table.Name).To(gomega.Equal("Sheet1"))
}

func TestFindByKey_CaseSensitive(t *testing.T) {
	g := gomega.NewWithT(t)
	m, found := FindByKey(singleTableSet(), "a100", Matcher{CaseSensitive: true})
	g.Expect(found).To(gomega.BeFalse())
	g.Expect(m).To(gomega.BeNil())

	m, found = FindByKey(singleTableSet(), " A101 ", Matcher{CaseSensitive: true})
	g.Expect(found).To(gomega.BeTrue())
	g.Expect(m.Row[table.ColumnResult]).To(gomega.Equal("Fail"))
}

func TestFindByKey_FirstTableWins(t *testing.T) {
	g := gomega.NewWithT(t)
	set := table.NewSet()
	set.Put(&table.Table{ID: table.ID{Name: "table1"}, Rows: []table.Row{table.NewRow("A100", "First")}})
	set.Put(&table.Table{ID: table.ID{Name: "table2"}, Rows: []table.Row{table.NewRow("A100", "Other")}})

	m, found := FindByKey(set, "A100", Matcher{})
	g.Expect(found).To(gomega.BeTrue())
	g.Expect(m.Table.Name).To(gomega.Equal("table1"))
	g.Expect(m.Row[table.ColumnName]).To(gomega.Equal("First"))
}

func TestFindByKey_FirstRowWinsWithinTable(t *testing.T) {
	g := gomega.NewWithT(t)
	set := table.NewSet()
	set.Put(&table.Table{ID: table.ID{Name: "t"}, Rows: []table.Row{
		table.NewRow("X1", "one"),
		table.NewRow("x1", "two"),
	}})
	m, found := FindByKey(set, "X1", Matcher{})
	g.Expect(found).To(gomega.BeTrue())
	g.Expect(m.Row[table.ColumnName]).To(gomega.Equal("one"))
}

func TestFindByKey_AbsentKeys(t *testing.T) {
	g := gomega.NewWithT(t)
	set := singleTableSet()
	for _, key := range []string{"A102", "A10", "A1000", "Asha"} {
		_, found := FindByKey(set, key, Matcher{})
		g.Expect(found).To(gomega.BeFalse(), key)
	}
}

func TestFindByKey_EmptySet(t *testing.T) {
	g := gomega.NewWithT(t)
	_, found := FindByKey(table.NewSet(), "A100", Matcher{})
	g.Expect(found).To(gomega.BeFalse())
	_, found = FindByKey(nil, "A100", Matcher{})
	g.Expect(found).To(gomega.BeFalse())
}

func TestFindByKey_BlankKeyCellsNeverMatch(t *testing.T) {
	g := gomega.NewWithT(t)
	set := table.NewSet()
	set.Put(&table.Table{ID: table.ID{Name: "t"}, Rows: []table.Row{table.NewRow("", "nobody")}})
	_, found := FindByKey(set, "", Matcher{})
	g.Expect(found).To(gomega.BeFalse())
}

func TestValidateKey(t *testing.T) {
	g := gomega.NewWithT(t)

	key, err := ValidateKey("  A100 ", 3)
	g.Expect(err).To(gomega.BeNil())
	g.Expect(key).To(gomega.Equal("A100"))

	_, err = ValidateKey("   ", 1)
	g.Expect(IsValidation(err)).To(gomega.BeTrue())
	g.Expect(err.(*ValidationError).Reason).To(gomega.Equal(KeyEmpty))

	_, err = ValidateKey("A1", 3)
	g.Expect(err).To(gomega.HaveOccurred())
	g.Expect(err.(*ValidationError).Reason).To(gomega.Equal(KeyTooShort))

	// Multi-byte characters count once.
	_, err = ValidateKey("১২৩", 3)
	g.Expect(err).To(gomega.BeNil())
}
