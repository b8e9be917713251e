package service

import (
	"testing"

	"github.com/octobees/leadscout/internal/entity"
)

func TestFilterLeads(t *testing.T) {
	leads := []entity.Lead{
		{Name: "Crumbs", Address: "1 Kirkgate, Leeds", Rating: 4.6, ReviewCount: 20, Website: "crumbs.co.uk"},
		{Name: "Old Oven", Address: "4 Boar Lane, York", Rating: 3.5, ReviewCount: 400, Website: "oldoven.com"},
		{Name: "Dough Bros", Address: "5 Vicar Lane, Leeds", Rating: 4.1, ReviewCount: 120, Website: "dough.com"},
		{Name: "No Site", Address: "6 Park Row, Leeds", Rating: 4.0, ReviewCount: 60},
	}

	cases := []struct {
		name   string
		filter LeadFilter
		want   []string
	}{
		{"empty filter", LeadFilter{}, []string{"Crumbs", "Old Oven", "Dough Bros", "No Site"}},
		{"text matches address", LeadFilter{Text: "LEEDS"}, []string{"Crumbs", "Dough Bros", "No Site"}},
		{"critical rating", LeadFilter{Rating: "critical"}, []string{"Old Oven"}},
		{"target rating", LeadFilter{Rating: "target"}, []string{"Dough Bros", "No Site"}},
		{"good rating", LeadFilter{Rating: "good"}, []string{"Crumbs"}},
		{"best reviews", LeadFilter{Reviews: "best"}, []string{"Dough Bros", "No Site"}},
		{"big reviews", LeadFilter{Reviews: "big"}, []string{"Old Oven"}},
		{"new reviews", LeadFilter{Reviews: "new"}, []string{"Crumbs"}},
		{"tier", LeadFilter{Tier: "prime target"}, []string{"Dough Bros"}},
		{"urgent tier", LeadFilter{Tier: "Urgent"}, []string{"No Site"}},
		{"unknown band", LeadFilter{Rating: "stellar", Tier: "all"}, []string{"Crumbs", "Old Oven", "Dough Bros", "No Site"}},
		{"combined", LeadFilter{Text: "leeds", Reviews: "best", Rating: "target"}, []string{"Dough Bros", "No Site"}},
	}

	for _, tc := range cases {
		got := FilterLeads(leads, tc.filter)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: expected %d leads, got %d", tc.name, len(tc.want), len(got))
		}
		for i := range got {
			if got[i].Name != tc.want[i] {
				t.Fatalf("%s: position %d got %s want %s", tc.name, i, got[i].Name, tc.want[i])
			}
		}
	}
}
