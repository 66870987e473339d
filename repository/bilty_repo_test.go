package repository

import (
	"strings"
	"testing"
)

func TestFieldWhitelists(t *testing.T) {
	for _, f := range []string{"city_code", "consignor_name", "consignee_name", "gr_no"} {
		if !IsSuggestField(f) {
			t.Errorf("IsSuggestField(%q) = false", f)
		}
	}
	for _, f := range []string{"", "id; DROP TABLE transport_bilty", "created_at", "total_amount"} {
		if IsSuggestField(f) {
			t.Errorf("IsSuggestField(%q) = true", f)
		}
	}

	for _, f := range []string{"bilty_date", "total_amount", "created_at"} {
		if !IsSortField(f) {
			t.Errorf("IsSortField(%q) = false", f)
		}
	}
	if IsSortField("weight; --") {
		t.Error("IsSortField accepted an injection attempt")
	}
}

func TestOrderClause(t *testing.T) {
	cases := []struct {
		field     string
		ascending bool
		want      string
	}{
		{"bilty_date", false, "ORDER BY bilty_date DESC, id DESC"},
		{"bilty_date", true, "ORDER BY bilty_date ASC, id ASC"},
		{"total_amount", false, "ORDER BY total_amount DESC, id DESC"},
	}
	for _, c := range cases {
		if got := orderClause(c.field, c.ascending); got != c.want {
			t.Errorf("orderClause(%q, %v) = %q, want %q", c.field, c.ascending, got, c.want)
		}
	}
}

func TestSearchClause(t *testing.T) {
	clause := searchClause(1)
	for _, col := range searchFields {
		if !strings.Contains(clause, col+" ILIKE $1") {
			t.Errorf("search clause missing %s: %s", col, clause)
		}
	}
	if got := strings.Count(clause, " OR "); got != len(searchFields)-1 {
		t.Errorf("search clause has %d ORs, want %d", got, len(searchFields)-1)
	}
}

func TestSortDoc(t *testing.T) {
	d := sortDoc("created_at", false)
	if len(d) != 2 || d[0].Key != "created_at" || d[0].Value != -1 || d[1].Key != "_id" || d[1].Value != -1 {
		t.Fatalf("sortDoc descending = %+v", d)
	}
	d = sortDoc("city", true)
	if d[0].Value != 1 || d[1].Value != 1 {
		t.Fatalf("sortDoc ascending = %+v", d)
	}
}
